package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/diegoclair/daily-commit-bot/internal/line"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const maxWebhookBody = 1 << 20

// HandleWebhook runs one check for the batch and replies to every event with
// its own reply token. Reply failures are logged per event and never change
// the acknowledgment.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBody)

	events, skipped, err := line.ParseWebhook(h.channelSecret, r)
	if errors.Is(err, line.ErrInvalidSignature) {
		h.log.Warn("rejected webhook with invalid signature")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.log.WithError(err).Warn("rejected malformed webhook")
		h.respondJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "INVALID_PAYLOAD",
			Message: "webhook body is not a valid event batch",
		})
		return
	}
	if skipped > 0 {
		h.log.WithField("skipped", skipped).Debug("skipping events without reply token or message")
	}

	if len(events) == 0 {
		h.respondJSON(w, http.StatusOK, struct{}{})
		return
	}

	cycleID := uuid.NewString()
	log := h.log.WithFields(logrus.Fields{"cycle_id": cycleID, "events": len(events)})

	// Replies must go out even if the provider hangs up early
	ctx := context.WithoutCancel(r.Context())

	result, err := h.checker.CheckToday(ctx)
	if err != nil {
		log.WithError(err).Error("webhook check failed")
		h.respondWithError(w, err)
		return
	}

	failed := 0
	for _, outcome := range h.dispatcher.ReplyAll(ctx, cycleID, events, result) {
		if outcome != nil {
			failed++
		}
	}
	log.WithField("failed", failed).Info("webhook replies dispatched")

	h.respondJSON(w, http.StatusOK, struct{}{})
}

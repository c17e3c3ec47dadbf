package handlers

import (
	"net/http"
	"strconv"

	"github.com/diegoclair/daily-commit-bot/internal/domain/entity"
)

const (
	defaultDeliveryLimit = 20
	maxDeliveryLimit     = 100
)

type deliveriesResponse struct {
	Deliveries []*entity.Delivery `json:"deliveries"`
}

func (h *Handler) HandleDeliveries(w http.ResponseWriter, r *http.Request) {
	if h.deliveries == nil {
		h.respondJSON(w, http.StatusOK, deliveriesResponse{Deliveries: []*entity.Delivery{}})
		return
	}

	limit := defaultDeliveryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.respondJSON(w, http.StatusBadRequest, errorResponse{
				Error:   "INVALID_LIMIT",
				Message: "limit must be a positive integer",
			})
			return
		}
		limit = min(n, maxDeliveryLimit)
	}

	deliveries, err := h.deliveries.ListRecent(limit)
	if err != nil {
		h.log.WithError(err).Error("failed to list deliveries")
		h.respondWithError(w, err)
		return
	}
	if deliveries == nil {
		deliveries = []*entity.Delivery{}
	}

	h.respondJSON(w, http.StatusOK, deliveriesResponse{Deliveries: deliveries})
}

package handlers

import (
	"net/http"
)

type pullResponse struct {
	Date        string `json:"date"`
	Contributed bool   `json:"contributed"`
}

// HandlePull answers whether the tracked user has contributed today. No
// notification is sent.
func (h *Handler) HandlePull(w http.ResponseWriter, r *http.Request) {
	result, err := h.checker.CheckToday(r.Context())
	if err != nil {
		h.log.WithError(err).Error("pull check failed")
		h.respondWithError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, pullResponse{
		Date:        result.Date,
		Contributed: result.Contributed,
	})
}

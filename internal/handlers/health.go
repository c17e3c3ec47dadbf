package handlers

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status      string `json:"status"`
	Scheduler   string `json:"scheduler"`
	NextTrigger string `json:"next_trigger,omitempty"`
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Scheduler: "disabled"}

	if h.scheduler != nil {
		state, next := h.scheduler.State()
		resp.Scheduler = state
		if !next.IsZero() {
			resp.NextTrigger = next.Format(time.RFC3339)
		}
	}

	h.respondJSON(w, http.StatusOK, resp)
}

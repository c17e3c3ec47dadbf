package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diegoclair/daily-commit-bot/internal/domain/apperr"
	"github.com/diegoclair/daily-commit-bot/internal/domain/contract"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	checker       contract.Checker
	dispatcher    contract.Dispatcher
	deliveries    contract.DeliveryRepo
	scheduler     contract.SchedulerStatus
	channelSecret string
	log           *logrus.Entry
}

// New builds the HTTP handlers. deliveries and scheduler may be nil when the
// history store or the daily loop is not running; channelSecret empty
// disables webhook signature verification.
func New(checker contract.Checker, dispatcher contract.Dispatcher, deliveries contract.DeliveryRepo,
	scheduler contract.SchedulerStatus, channelSecret string, log *logrus.Entry) *Handler {
	return &Handler{
		checker:       checker,
		dispatcher:    dispatcher,
		deliveries:    deliveries,
		scheduler:     scheduler,
		channelSecret: channelSecret,
		log:           log,
	}
}

// Register mounts every route on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.HandlePull)
	mux.HandleFunc("GET /contributed", h.HandlePull)
	mux.HandleFunc("POST /webhook", h.HandleWebhook)
	mux.HandleFunc("GET /deliveries", h.HandleDeliveries)
	mux.HandleFunc("GET /health", h.HandleHealth)
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (h *Handler) respondWithError(w http.ResponseWriter, err error) {
	h.respondJSON(w, apperr.StatusCode(err), errorResponse{
		Error:   apperr.TextCode(err),
		Message: err.Error(),
	})
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.WithError(err).Warn("failed to write response")
	}
}

package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"orbit-ads/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP, consumed by the host application's REST layer. It holds the
// delivery and interaction usecases and a logger for structured logging.
// Routes are registered on a chi.Router for convenient method handling.
type Handler struct {
	delivery     port.DeliveryUseCase
	interactions port.InteractionUseCase
	logger       *slog.Logger
	router       chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(delivery port.DeliveryUseCase, interactions port.InteractionUseCase, logger *slog.Logger) *Handler {
	h := &Handler{delivery: delivery, interactions: interactions, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/ads/request", h.handleAdRequest)
		r.Post("/interactions", h.handleRecordInteraction)
		r.Post("/interactions/batch", h.handleBatchInteractions)
		r.Patch("/ads/{id}/status", h.handleUpdateAdStatus)
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeError maps the engine's error taxonomy onto HTTP statuses.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, port.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, port.ErrInvalidState):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, port.ErrPersistence):
		h.logger.Error("persistence failure", slog.Any("error", err))
		http.Error(w, "persistence failure", http.StatusBadGateway)
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

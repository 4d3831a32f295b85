package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bazaar-promo/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the campaign usecase to execute business logic and a
// logger for structured logging. Routes are registered on a chi.Router
// for convenient method handling.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// usecase implementation and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleLaunchCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Post("/estimate", h.handleEstimate)
			r.Post("/{id}/pause", h.handlePauseCampaign)
			r.Post("/{id}/resume", h.handleResumeCampaign)
			r.Post("/{id}/approve", h.handleApproveCampaign)
			r.Post("/{id}/reject", h.handleRejectCampaign)
			r.Delete("/{id}", h.handleArchiveCampaign)
		})
		r.Get("/listings", h.handleListListings)
		r.Get("/wallet", h.handleGetWallet)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

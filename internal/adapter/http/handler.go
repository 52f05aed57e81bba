package httpadapter

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"donation-campaign/internal/core/port"
)

// Handler serves the campaign API: totals and barometer for the progress
// display, and the donation log plus form submissions under
// /api/v1/campaign/donations.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(requestID, h.accessLog, middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1/campaign", func(r chi.Router) {
		r.Get("/", h.handleSummary)
		r.Get("/barometer", h.handleBarometer)
		r.Get("/donations", h.handleListDonations)
		r.Post("/donations", h.handleSubmitDonation)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// writeJSON encodes v before touching the response, so an encoding failure
// turns into a 500 rather than a success status with an empty body.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		h.logger.Error("encode response error",
			slog.String("request_id", RequestIDFromContext(r.Context())),
			slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

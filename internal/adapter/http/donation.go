package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"donation-campaign/internal/core/port"
)

// maxFormBytes bounds the donation form body.
const maxFormBytes = 1 << 14

type donationRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Amount     float64 `json:"amount"`
	Newsletter bool    `json:"newsletter"`
}

// donationResponse omits the donor email, which is only kept for receipts.
type donationResponse struct {
	Name        string    `json:"name"`
	Amount      float64   `json:"amount"`
	Newsletter  bool      `json:"newsletter"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// handleSubmitDonation records a donation from the form body. Malformed JSON
// and failed validation result in HTTP 400. On success it returns HTTP 201
// with the updated totals.
func (h *Handler) handleSubmitDonation(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFormBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	sum, err := h.svc.SubmitDonation(r.Context(), port.DonationForm{
		Name:            req.Name,
		Email:           req.Email,
		Amount:          req.Amount,
		NewsletterOptIn: req.Newsletter,
	})
	if errors.Is(err, port.ErrInvalidDonation) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("submit donation error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("donation recorded",
		slog.Float64("amount", req.Amount),
		slog.Int("donation_count", sum.DonationCount),
		slog.Float64("progress_percent", sum.ProgressPercent))
	h.writeJSON(w, r, http.StatusCreated, sum)
}

// handleListDonations returns the donation log in insertion order.
func (h *Handler) handleListDonations(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListDonations(r.Context())
	if err != nil {
		h.logger.Error("list donations error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	items := make([]donationResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, donationResponse{
			Name:        e.Name,
			Amount:      e.Amount,
			Newsletter:  e.NewsletterOptIn,
			SubmittedAt: e.SubmittedAt,
		})
	}
	h.writeJSON(w, r, http.StatusOK, map[string]any{"items": items})
}

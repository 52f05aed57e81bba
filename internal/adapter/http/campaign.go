package httpadapter

import (
	"log/slog"
	"net/http"
)

// handleSummary returns the campaign totals and derived metrics as JSON.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Summary(r.Context())
	if err != nil {
		h.logger.Error("summary error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, r, http.StatusOK, sum)
}

// handleBarometer returns localized display strings for the progress
// barometer. The language is taken from the `lang` query parameter, then from
// the Accept-Language header; anything unsupported uses the campaign locale.
func (h *Handler) handleBarometer(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = r.Header.Get("Accept-Language")
	}
	b, err := h.svc.Barometer(r.Context(), lang)
	if err != nil {
		h.logger.Error("barometer error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, r, http.StatusOK, b)
}

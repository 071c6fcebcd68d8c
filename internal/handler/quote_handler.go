package handler

import (
	"net/http"

	"oss-kar/internal/model"
	"oss-kar/internal/service"

	"github.com/rs/zerolog"
)

// QuoteHandler handles price calculation requests.
type QuoteHandler struct {
	service service.QuoteService
	logger  zerolog.Logger
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service service.QuoteService, logger zerolog.Logger) *QuoteHandler {
	return &QuoteHandler{
		service: service,
		logger:  logger.With().Str("handler", "quote").Logger(),
	}
}

// Calculate handles POST /api/calculate requests.
func (h *QuoteHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost, h.logger) {
		return
	}

	var sel model.Selection
	if err := decodeJSON(w, r, &sel); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	quote, err := h.service.Calculate(r.Context(), sel)
	if err != nil {
		writeServiceError(w, err, "failed to calculate price", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, quote)
}

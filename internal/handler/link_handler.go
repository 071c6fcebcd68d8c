package handler

import (
	"net/http"

	"oss-kar/internal/model"
	"oss-kar/internal/service"

	"github.com/rs/zerolog"
)

// LinkHandler handles shareable configuration links.
type LinkHandler struct {
	service service.LinkService
	logger  zerolog.Logger
}

// NewLinkHandler creates a new link handler.
func NewLinkHandler(service service.LinkService, logger zerolog.Logger) *LinkHandler {
	return &LinkHandler{
		service: service,
		logger:  logger.With().Str("handler", "link").Logger(),
	}
}

// Generate handles POST /api/generate requests.
func (h *LinkHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost, h.logger) {
		return
	}

	var sel model.Selection
	if err := decodeJSON(w, r, &sel); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	link, err := h.service.Generate(r.Context(), sel)
	if err != nil {
		writeServiceError(w, err, "failed to generate link", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, link)
}

// Resolve handles GET /api/config requests. The query string carries the
// shareable link parameters.
func (h *LinkHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	resolved, err := h.service.Resolve(r.Context(), r.URL.RawQuery)
	if err != nil {
		writeServiceError(w, err, "failed to resolve configuration", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resolved)
}

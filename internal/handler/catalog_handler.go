package handler

import (
	"net/http"

	"oss-kar/internal/service"

	"github.com/rs/zerolog"
)

// CatalogHandler serves the option catalog.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// List handles GET /api/options requests.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	catalog, err := h.service.ListOptions(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to load options", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, catalog)
}

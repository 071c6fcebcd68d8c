package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler serves liveness and health endpoints.
type SystemHandler struct {
	db     Pinger
	logger zerolog.Logger
	now    func() time.Time
}

// NewSystemHandler creates a new system handler.
func NewSystemHandler(db Pinger, logger zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		db:     db,
		logger: logger.With().Str("handler", "system").Logger(),
		now:    time.Now,
	}
}

// Test handles GET /api/test requests.
func (h *SystemHandler) Test(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "OSS-KAR backend is alive!",
		"timestamp": h.now().UTC().Format(time.RFC3339Nano),
	})
}

// Health handles GET /health requests.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("database ping failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

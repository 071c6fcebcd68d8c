package router

import (
	"net/http"

	"oss-kar/internal/handler"
	"oss-kar/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	Catalog *handler.CatalogHandler
	Quote   *handler.QuoteHandler
	Link    *handler.LinkHandler
	Order   *handler.OrderHandler
	System  *handler.SystemHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, apiKey string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// No authentication required
	mux.HandleFunc("/health", h.System.Health)
	mux.HandleFunc("/api/test", h.System.Test)

	mux.HandleFunc("/api/options", h.Catalog.List)
	mux.HandleFunc("/api/calculate", h.Quote.Calculate)
	mux.HandleFunc("/api/generate", h.Link.Generate)
	mux.HandleFunc("/api/config", h.Link.Resolve)
	mux.HandleFunc("/api/order", h.Order.Create)
	mux.HandleFunc("/api/orders/{id}", h.Order.GetByID)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> APIKeyAuth
	var handler http.Handler = mux
	handler = middleware.APIKeyAuth(apiKey, logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}

package http

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/jsamuelsen11/menu-cms/internal/platform/config"
)

// NewCORS returns middleware answering browser preflight requests for the
// admin front end and the public site. With no allowed origins configured,
// cross-origin requests are refused.
func NewCORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID", "X-Correlation-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-Correlation-ID", "Retry-After"},
		MaxAge:         cfg.MaxAge,
	}
	if len(cfg.AllowedOrigins) == 0 {
		// rs/cors treats an empty list as "*".
		opts.AllowOriginFunc = func(string) bool { return false }
	}
	return cors.New(opts).Handler
}

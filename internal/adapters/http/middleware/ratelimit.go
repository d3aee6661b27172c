package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/menu-cms/internal/adapters/http/dto"
	"github.com/jsamuelsen11/menu-cms/internal/domain"
	"github.com/jsamuelsen11/menu-cms/internal/platform/config"
)

// RateLimit returns middleware backed by one token bucket shared by every
// caller of the wrapped routes. Requests over the limit get 429 with a
// Retry-After hint. A zero rate disables limiting.
func RateLimit(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	if cfg.RequestsPerSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	burst := max(cfg.BurstSize, 1)
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	retryAfter := strconv.Itoa(int(math.Ceil(1 / cfg.RequestsPerSecond)))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", retryAfter)
				dto.WriteErrorResponse(w, r, fmt.Errorf("%s %s: %w", r.Method, r.URL.Path, domain.ErrRateLimited))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

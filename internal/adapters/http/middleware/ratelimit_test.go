package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/menu-cms/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/menu-cms/internal/platform/config"
)

func serveN(t *testing.T, h http.Handler, n int) []*httptest.ResponseRecorder {
	t.Helper()
	recs := make([]*httptest.ResponseRecorder, n)
	for i := range recs {
		recs[i] = httptest.NewRecorder()
		h.ServeHTTP(recs[i], httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", http.NoBody))
	}
	return recs
}

func TestRateLimit_BurstThenReject(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	handler := middleware.RateLimit(config.RateLimitConfig{RequestsPerSecond: 0.2, BurstSize: 2})(ok)

	recs := serveN(t, handler, 3)

	for i := range 2 {
		if recs[i].Code != http.StatusOK {
			t.Errorf("request %d status = %d, want %d", i, recs[i].Code, http.StatusOK)
		}
	}
	if recs[2].Code != http.StatusTooManyRequests {
		t.Errorf("request 2 status = %d, want %d", recs[2].Code, http.StatusTooManyRequests)
	}
	if got := recs[2].Header().Get("Retry-After"); got != "5" {
		t.Errorf("Retry-After = %q, want %q", got, "5")
	}
	if ct := recs[2].Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want problem+json", ct)
	}
}

func TestRateLimit_ZeroRateDisabled(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	handler := middleware.RateLimit(config.RateLimitConfig{})(ok)

	for i, rec := range serveN(t, handler, 20) {
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want %d", i, rec.Code, http.StatusOK)
		}
	}
}

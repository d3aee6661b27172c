package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/menu-cms/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/menu-cms/internal/domain"
	"github.com/jsamuelsen11/menu-cms/mocks"
)

func TestRequireAdmin_ValidToken(t *testing.T) {
	t.Parallel()

	auth := mocks.NewMockAuthService(t)
	auth.EXPECT().Verify(mock.Anything, "good-token").Return("admin", nil)

	var subject string
	handler := middleware.RequireAdmin(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject = middleware.SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/offers/1", http.NoBody)
	req.Header.Set("Authorization", "bearer good-token")
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if subject != "admin" {
		t.Errorf("SubjectFromContext = %q, want admin", subject)
	}
}

func TestRequireAdmin_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		verify bool
	}{
		{name: "no header"},
		{name: "basic scheme", header: "Basic YWRtaW46cGFzcw=="},
		{name: "empty bearer", header: "Bearer  "},
		{name: "invalid token", header: "Bearer expired", verify: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			auth := mocks.NewMockAuthService(t)
			if tt.verify {
				auth.EXPECT().Verify(mock.Anything, "expired").
					Return("", fmt.Errorf("token is expired: %w", domain.ErrUnauthorized))
			}

			called := false
			handler := middleware.RequireAdmin(auth)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				called = true
			}))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			handler.ServeHTTP(rec, req)

			if called {
				t.Error("next handler must not run without a valid token")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			if rec.Header().Get("WWW-Authenticate") == "" {
				t.Error("missing WWW-Authenticate header")
			}
		})
	}
}

func TestSubjectFromContext_Empty(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if got := middleware.SubjectFromContext(req.Context()); got != "" {
		t.Errorf("SubjectFromContext = %q, want empty", got)
	}
}

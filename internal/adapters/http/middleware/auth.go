package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/menu-cms/internal/adapters/http/dto"
	"github.com/jsamuelsen11/menu-cms/internal/domain"
	"github.com/jsamuelsen11/menu-cms/internal/ports"
	"github.com/jsamuelsen11/menu-cms/internal/platform/logging"
)

type subjectKey struct{}

// SubjectFromContext returns the authenticated subject, or "" outside an
// admin route.
func SubjectFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(subjectKey{}).(string); ok {
		return s
	}
	return ""
}

// RequireAdmin returns middleware that rejects requests without a valid
// "Authorization: Bearer <token>" header with 401.
func RequireAdmin(auth ports.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w, r, fmt.Errorf("missing bearer token: %w", domain.ErrUnauthorized))
				return
			}

			subject, err := auth.Verify(r.Context(), token)
			if err != nil {
				logging.FromContext(r.Context()).WarnContext(r.Context(), "rejected admin token",
					slog.String("path", r.URL.Path),
					slog.Any("error", err),
				)
				unauthorized(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey{}, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
	dto.WriteErrorResponse(w, r, err)
}

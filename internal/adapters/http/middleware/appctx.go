package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/menu-cms/internal/app/context"
)

// AppContext gives every request its own RequestContext. Catalog reads are
// memoised in it and a save stages its uploads and persist actions on it.
//
// Register it after CorrelationID so the wrapped context carries the
// request and correlation IDs.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			ctx := appctx.WithRequestContext(r.Context(), rc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

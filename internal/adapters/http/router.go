// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/menu-cms/internal/adapters/http/dto"
	"github.com/jsamuelsen11/menu-cms/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/menu-cms/internal/domain/category"
	"github.com/jsamuelsen11/menu-cms/internal/domain/menuitem"
	"github.com/jsamuelsen11/menu-cms/internal/domain/offer"
)

// Handlers groups every handler mounted by NewRouter.
type Handlers struct {
	Categories *handlers.CatalogHandler[category.Category, dto.CategoryResponse]
	MenuItems  *handlers.CatalogHandler[menuitem.MenuItem, dto.MenuItemResponse]
	Offers     *handlers.CatalogHandler[offer.Offer, dto.OfferResponse]
	Menu       *handlers.MenuHandler
	Auth       *handlers.AuthHandler
	Health     *handlers.HealthHandler
}

// Guards are applied to route groups rather than globally. Admin protects
// every write route and the dashboard; Login throttles password attempts.
type Guards struct {
	Admin func(http.Handler) http.Handler
	Login func(http.Handler) http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, guards Guards, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		// Public site.
		r.Get("/menu", h.Menu.Menu)
		r.Get("/offers/active", h.Menu.ActiveOffers)
		r.With(guards.Login).Post("/auth/login", h.Auth.Login)

		r.With(guards.Admin).Get("/dashboard", h.Menu.Dashboard)

		mountCatalog(r, "/categories", h.Categories, guards.Admin)
		mountCatalog(r, "/menu-items", h.MenuItems, guards.Admin)
		mountCatalog(r, "/offers", h.Offers, guards.Admin)
	})

	return r
}

// mountCatalog registers the read routes of one collection publicly and
// its write routes behind admin.
func mountCatalog[T, R any](r chi.Router, prefix string, h *handlers.CatalogHandler[T, R], admin func(http.Handler) http.Handler) {
	r.Route(prefix, func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Post("/", h.Create)
			r.Put("/order", h.Reorder)
			r.Post("/move", h.Move)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

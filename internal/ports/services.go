package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/menu-cms/internal/domain"
	"github.com/jsamuelsen11/menu-cms/internal/domain/category"
	"github.com/jsamuelsen11/menu-cms/internal/domain/menuitem"
	"github.com/jsamuelsen11/menu-cms/internal/domain/offer"
	"github.com/jsamuelsen11/menu-cms/internal/domain/ordering"
)

// CatalogService defines the service port for one manually ordered entity
// kind (categories, menu items or offers). Implemented by app.Catalog;
// called by the catalog handlers.
type CatalogService[T any] interface {
	// Kind describes the collection served.
	Kind() domain.Kind

	// List returns all entities in display order.
	List(ctx context.Context) ([]T, error)

	// Get returns a single entity by ID.
	// Returns domain.ErrNotFound if the entity does not exist.
	Get(ctx context.Context, id string) (T, error)

	// Save creates the entity when id is empty and updates it otherwise.
	// Image uploads are attached by slot. A failed upload is logged and the
	// entity keeps its previous reference.
	// Returns domain.ErrValidation if the entity fails validation.
	Save(ctx context.Context, id string, entity T, uploads map[domain.ImageSlot]Upload) (T, error)

	// Delete removes an entity without renumbering the rest.
	Delete(ctx context.Context, id string) error

	// Reorder persists an explicit order assignment synchronously.
	// Returns domain.ErrBatchRejected if the batch could not be applied.
	Reorder(ctx context.Context, pairs []ordering.Pair) error

	// Move relocates sourceID to the position of destinationID and returns
	// the resulting sequence immediately. Persistence happens in the
	// background.
	Move(ctx context.Context, sourceID, destinationID string) ([]T, error)
}

// Menu is the public view of the catalog.
type Menu struct {
	Categories []category.Category
	Items      []menuitem.MenuItem
}

// Dashboard summarises collection sizes for the admin landing page.
type Dashboard struct {
	Categories   int
	MenuItems    int
	Offers       int
	ActiveOffers int
}

// MenuService defines the read-only public operations.
type MenuService interface {
	// Menu returns categories and items, each in display order.
	Menu(ctx context.Context) (*Menu, error)

	// ActiveOffers returns at most limit active offers. A limit of zero or
	// less uses offer.DefaultActiveLimit.
	ActiveOffers(ctx context.Context, limit int) ([]offer.Offer, error)

	// Dashboard counts the entities in every collection.
	Dashboard(ctx context.Context) (*Dashboard, error)
}

// Token is a signed admin session token.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// AuthService implements the admin access gate.
type AuthService interface {
	// Login exchanges the shared admin password for a token.
	// Returns domain.ErrUnauthorized on a wrong password.
	Login(ctx context.Context, password string) (*Token, error)

	// Verify checks a token and returns its subject.
	// Returns domain.ErrUnauthorized if the token is invalid or expired.
	Verify(ctx context.Context, token string) (string, error)
}

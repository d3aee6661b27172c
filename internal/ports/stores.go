package ports

import (
	"context"
	"io"

	"github.com/jsamuelsen11/menu-cms/internal/domain/ordering"
)

// OrderedStore persists one manually sorted collection. Implemented by the
// sqlite, postgres and mongo adapters; called by the application layer.
type OrderedStore[T any] interface {
	// ListOrdered returns every entity sorted ascending by order.
	// Returns domain.ErrUnavailable if the backend cannot be reached.
	ListOrdered(ctx context.Context) ([]T, error)

	// Get returns a single entity by ID.
	// Returns domain.ErrNotFound if the entity does not exist.
	Get(ctx context.Context, id string) (T, error)

	// Append assigns a new ID, the creation time and max(order)+1 (1 for an
	// empty collection), persists the entity and returns the stored form.
	Append(ctx context.Context, entity T) (T, error)

	// Update replaces the stored body of an existing entity. The persisted
	// order is never changed by Update.
	// Returns domain.ErrNotFound if the entity does not exist.
	Update(ctx context.Context, entity T) (T, error)

	// ReassignOrder applies every pair as one all-or-nothing write.
	// Returns domain.ErrBatchRejected, with nothing applied, if any pair
	// names a missing entity.
	ReassignOrder(ctx context.Context, pairs []ordering.Pair) error

	// Remove deletes an entity. Remaining order values are not renumbered.
	// Returns domain.ErrNotFound if the entity does not exist.
	Remove(ctx context.Context, id string) error
}

// Upload is an image file received with a save request.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// AssetStore uploads binary assets to object storage.
type AssetStore interface {
	// Upload stores the file under folder and returns an opaque reference
	// (public URL or object key) to be kept on the entity.
	// Returns an error wrapping domain.ErrUploadFailed on failure.
	Upload(ctx context.Context, folder string, file Upload) (string, error)

	// Delete removes the object behind ref. Used to undo uploads made by a
	// save that could not be persisted.
	Delete(ctx context.Context, ref string) error
}

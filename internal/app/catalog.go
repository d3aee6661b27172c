// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/metric"

	appctx "github.com/jsamuelsen11/menu-cms/internal/app/context"
	"github.com/jsamuelsen11/menu-cms/internal/domain"
	"github.com/jsamuelsen11/menu-cms/internal/domain/category"
	"github.com/jsamuelsen11/menu-cms/internal/domain/menuitem"
	"github.com/jsamuelsen11/menu-cms/internal/domain/offer"
	"github.com/jsamuelsen11/menu-cms/internal/domain/ordering"
	"github.com/jsamuelsen11/menu-cms/internal/platform/telemetry"
	"github.com/jsamuelsen11/menu-cms/internal/ports"
)

// Compile-time checks that Catalog implements ports.CatalogService.
var (
	_ ports.CatalogService[category.Category] = (*Catalog[category.Category])(nil)
	_ ports.CatalogService[menuitem.MenuItem] = (*Catalog[menuitem.MenuItem])(nil)
	_ ports.CatalogService[offer.Offer]       = (*Catalog[offer.Offer])(nil)
)

// Mover computes a move and persists it in the background.
// Implemented by reorder.Controller.
type Mover[T any] interface {
	HandleMove(ctx context.Context, current []T, sourceID, destinationID string) []T
}

// CatalogOption configures a Catalog.
type CatalogOption[T domain.Record[T]] func(*Catalog[T])

// WithReferenceCheck adds a check run after validation on every save, for
// rules that need other collections (a menu item's category must exist).
func WithReferenceCheck[T domain.Record[T]](fn func(ctx context.Context, entity T) error) CatalogOption[T] {
	return func(c *Catalog[T]) { c.check = fn }
}

// WithMetrics records menu.upload.total for image uploads.
func WithMetrics[T domain.Record[T]](m *telemetry.Metrics) CatalogOption[T] {
	return func(c *Catalog[T]) { c.metrics = m }
}

// Catalog implements ports.CatalogService for one record kind. Writes made
// by Save are staged on the request's appctx.RequestContext: image uploads
// run as one parallel group, followed by the persist step. When persisting
// fails, every image uploaded by that save is deleted again.
type Catalog[T domain.Record[T]] struct {
	kind    domain.Kind
	store   ports.OrderedStore[T]
	assets  ports.AssetStore
	mover   Mover[T]
	check   func(ctx context.Context, entity T) error
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewCatalog creates a Catalog. A nil logger discards output.
func NewCatalog[T domain.Record[T]](
	kind domain.Kind,
	store ports.OrderedStore[T],
	assets ports.AssetStore,
	mover Mover[T],
	logger *slog.Logger,
	opts ...CatalogOption[T],
) *Catalog[T] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Catalog[T]{
		kind:   kind,
		store:  store,
		assets: assets,
		mover:  mover,
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Kind returns the collection this catalog serves.
func (c *Catalog[T]) Kind() domain.Kind { return c.kind }

// List returns every record in display order.
func (c *Catalog[T]) List(ctx context.Context) ([]T, error) {
	all, err := c.store.ListOrdered(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to list "+c.kind.Collection,
			slog.String("operation", "List"),
			slog.String("kind", c.kind.Name),
			slog.Any("error", err),
		)
		return nil, err
	}
	return all, nil
}

// Get returns a single record. Lookups are memoised for the request.
func (c *Catalog[T]) Get(ctx context.Context, id string) (T, error) {
	rc := appctx.FromContext(ctx)

	e, err := c.fetch(rc, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			c.logger.ErrorContext(ctx, "failed to fetch "+c.kind.Name,
				slog.String("operation", "Get"),
				slog.String("id", id),
				slog.Any("error", err),
			)
		}
		return e, err
	}
	return e, nil
}

// Save validates entity and persists it, creating it when id is empty.
//
// On update the stored order and creation time are kept, as are image
// references for slots that receive neither an upload nor a new reference.
// A failed upload is logged and the slot keeps its previous reference.
func (c *Catalog[T]) Save(ctx context.Context, id string, entity T, uploads map[domain.ImageSlot]ports.Upload) (T, error) {
	var zero T
	creating := id == ""

	c.logger.InfoContext(ctx, "saving "+c.kind.Name,
		slog.String("id", id),
		slog.Bool("create", creating),
		slog.Int("uploads", len(uploads)),
	)

	rc := appctx.FromContext(ctx)
	ctx = appctx.WithRequestContext(ctx, rc)

	if err := entity.Validate(); err != nil {
		return zero, err
	}
	if c.check != nil {
		if err := c.check(ctx, entity); err != nil {
			return zero, err
		}
	}

	var previous T
	if creating {
		entity = entity.WithEntityID("")
	} else {
		prev, err := c.fetch(rc, id)
		if err != nil {
			c.logger.ErrorContext(ctx, "failed to load "+c.kind.Name+" for update",
				slog.String("operation", "Save"),
				slog.String("id", id),
				slog.Any("error", err),
			)
			return zero, err
		}
		previous = prev
		entity = entity.WithEntityID(id).WithSortOrder(prev.SortOrder()).WithCreated(prev.Created())
		for _, slot := range entity.ImageSlots() {
			if entity.ImageRef(slot) == "" {
				entity = entity.WithImageRef(slot, prev.ImageRef(slot))
			}
		}
	}

	refs := appctx.NewRef(map[domain.ImageSlot]string{})

	var uploadActions []domain.Action
	for _, slot := range entity.ImageSlots() {
		if file, ok := uploads[slot]; ok {
			uploadActions = append(uploadActions, &uploadAction[T]{catalog: c, slot: slot, file: file, refs: refs})
		}
	}
	if len(uploadActions) > 0 {
		if err := rc.AddGroup(uploadActions...); err != nil {
			return zero, err
		}
	}

	persist := &persistAction[T]{catalog: c, entity: entity, previous: previous, creating: creating, refs: refs}
	var err error
	if creating {
		err = rc.AddAction(persist)
	} else {
		err = rc.Stage(c.cacheKey(id), entity, persist)
	}
	if err != nil {
		return zero, err
	}

	if err := rc.Commit(ctx); err != nil {
		c.logger.ErrorContext(ctx, "failed to save "+c.kind.Name,
			slog.String("operation", "Save"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return zero, err
	}

	return persist.saved, nil
}

// Delete removes a record. The remaining records keep their order values.
func (c *Catalog[T]) Delete(ctx context.Context, id string) error {
	c.logger.InfoContext(ctx, "deleting "+c.kind.Name, slog.String("id", id))

	if err := c.store.Remove(ctx, id); err != nil {
		c.logger.ErrorContext(ctx, "failed to delete "+c.kind.Name,
			slog.String("operation", "Delete"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// Reorder validates pairs and applies them synchronously as one batch.
func (c *Catalog[T]) Reorder(ctx context.Context, pairs []ordering.Pair) error {
	c.logger.InfoContext(ctx, "reordering "+c.kind.Collection, slog.Int("pairs", len(pairs)))

	if err := validatePairs(pairs); err != nil {
		return err
	}

	if err := c.store.ReassignOrder(ctx, pairs); err != nil {
		c.logger.ErrorContext(ctx, "failed to reorder "+c.kind.Collection,
			slog.String("operation", "Reorder"),
			slog.Int("pairs", len(pairs)),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// Move relocates sourceID to destinationID's position in the current
// sequence and returns the result without waiting for it to be persisted.
func (c *Catalog[T]) Move(ctx context.Context, sourceID, destinationID string) ([]T, error) {
	current, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	return c.mover.HandleMove(ctx, current, sourceID, destinationID), nil
}

func (c *Catalog[T]) fetch(rc *appctx.RequestContext, id string) (T, error) {
	return appctx.GetOrFetch(rc, c.cacheKey(id), func(ctx context.Context) (T, error) {
		return c.store.Get(ctx, id)
	})
}

func (c *Catalog[T]) cacheKey(id string) string {
	return c.kind.Name + ":" + id
}

func (c *Catalog[T]) recordUpload(ctx context.Context, slot domain.ImageSlot, err error) {
	if c.metrics == nil {
		return
	}
	result := telemetry.ResultSuccess
	if err != nil {
		result = telemetry.ResultError
	}
	c.metrics.UploadTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrKind.String(c.kind.Name),
		telemetry.AttrImageSlot.String(slot.String()),
		telemetry.AttrResult.String(result),
	))
}

func validatePairs(pairs []ordering.Pair) error {
	fields := domain.Fields{}

	if len(pairs) == 0 {
		fields.Add("items", domain.MsgRequired)
	}

	seen := make(map[string]bool, len(pairs))
	for i, p := range pairs {
		prefix := fmt.Sprintf("items[%d]", i)
		switch {
		case strings.TrimSpace(p.ID) == "":
			fields.Add(prefix+".id", domain.MsgRequired)
		case seen[p.ID]:
			fields.Add(prefix+".id", fmt.Sprintf("duplicate id %q", p.ID))
		}
		seen[p.ID] = true
		if p.Order < 0 {
			fields.Add(prefix+".order", domain.MsgNonNegative)
		}
	}

	return fields.Err()
}

// uploadAction stores one image. Upload failures are swallowed so the rest
// of the save proceeds; Rollback deletes the object if one was written.
type uploadAction[T domain.Record[T]] struct {
	catalog *Catalog[T]
	slot    domain.ImageSlot
	file    ports.Upload
	refs    *appctx.SafeRef[map[domain.ImageSlot]string]
	ref     string
}

func (a *uploadAction[T]) Execute(ctx context.Context) error {
	c := a.catalog

	ref, err := c.assets.Upload(ctx, c.kind.AssetFolder, a.file)
	c.recordUpload(ctx, a.slot, err)
	if err != nil {
		c.logger.WarnContext(ctx, "image upload failed, keeping previous reference",
			slog.String("operation", "Save"),
			slog.String("kind", c.kind.Name),
			slog.String("slot", a.slot.String()),
			slog.String("filename", a.file.Filename),
			slog.Any("error", err),
		)
		return nil
	}

	a.ref = ref
	a.refs.Update(func(m *map[domain.ImageSlot]string) {
		(*m)[a.slot] = ref
	})
	return nil
}

func (a *uploadAction[T]) Rollback(ctx context.Context) error {
	if a.ref == "" {
		return nil
	}
	return a.catalog.assets.Delete(ctx, a.ref)
}

func (a *uploadAction[T]) Description() string {
	return fmt.Sprintf("upload %s %s", a.catalog.kind.Name, a.slot)
}

// persistAction appends or updates the record with the references produced
// by the upload group.
type persistAction[T domain.Record[T]] struct {
	catalog  *Catalog[T]
	entity   T
	previous T
	creating bool
	refs     *appctx.SafeRef[map[domain.ImageSlot]string]
	saved    T
}

func (a *persistAction[T]) Execute(ctx context.Context) error {
	e := a.entity
	for slot, ref := range a.refs.Get() {
		e = e.WithImageRef(slot, ref)
	}

	var err error
	if a.creating {
		a.saved, err = a.catalog.store.Append(ctx, e)
	} else {
		a.saved, err = a.catalog.store.Update(ctx, e)
	}
	return err
}

func (a *persistAction[T]) Rollback(ctx context.Context) error {
	if a.creating {
		return a.catalog.store.Remove(ctx, a.saved.EntityID())
	}
	_, err := a.catalog.store.Update(ctx, a.previous)
	return err
}

func (a *persistAction[T]) Description() string {
	if a.creating {
		return "append " + a.catalog.kind.Name
	}
	return fmt.Sprintf("persist %s %s", a.catalog.kind.Name, a.entity.EntityID())
}

// CategoryExists returns a reference check rejecting menu items whose
// category cannot be found. Lookups share the request's memo.
func CategoryExists(categories ports.OrderedStore[category.Category]) func(context.Context, menuitem.MenuItem) error {
	return func(ctx context.Context, item menuitem.MenuItem) error {
		rc := appctx.FromContext(ctx)
		_, err := appctx.GetOrFetch(rc, category.Kind.Name+":"+item.CategoryID, func(ctx context.Context) (category.Category, error) {
			return categories.Get(ctx, item.CategoryID)
		})
		switch {
		case err == nil:
			return nil
		case errors.Is(err, domain.ErrNotFound):
			return &domain.ValidationError{Fields: map[string]string{"category_id": domain.MsgUnknownParent}}
		default:
			return fmt.Errorf("checking category %s: %w", item.CategoryID, err)
		}
	}
}

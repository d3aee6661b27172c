// Package category defines the menu category entity.
package category

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/menu-cms/internal/domain"
)

// Kind identifies the categories collection.
var Kind = domain.Kind{
	Name:        "category",
	Collection:  "categories",
	AssetFolder: "categories",
}

// Compile-time check that Category satisfies the record capability set.
var _ domain.Record[Category] = Category{}

// Category groups menu items on the public menu.
type Category struct {
	ID          string
	Name        string
	Description string
	HeroImage   string
	SquareImage string
	IsFeatured  bool
	Order       int
	CreatedAt   time.Time
}

// Validate checks business rules for the Category entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (c Category) Validate() error {
	fields := domain.Fields{}

	if strings.TrimSpace(c.Name) == "" {
		fields.Add("name", domain.MsgRequired)
	}
	if c.Order < 0 {
		fields.Add("order", domain.MsgNonNegative)
	}

	return fields.Err()
}

func (c Category) EntityID() string { return c.ID }
func (c Category) SortOrder() int   { return c.Order }

func (c Category) WithEntityID(id string) Category {
	c.ID = id
	return c
}

func (c Category) WithSortOrder(order int) Category {
	c.Order = order
	return c
}

func (c Category) Created() time.Time { return c.CreatedAt }

func (c Category) WithCreated(at time.Time) Category {
	c.CreatedAt = at
	return c
}

// ImageSlots returns the hero and square image fields.
func (Category) ImageSlots() []domain.ImageSlot {
	return []domain.ImageSlot{domain.ImageHero, domain.ImageSquare}
}

// ImageRef returns the reference stored in slot, or "" for unknown slots.
func (c Category) ImageRef(slot domain.ImageSlot) string {
	switch slot {
	case domain.ImageHero:
		return c.HeroImage
	case domain.ImageSquare:
		return c.SquareImage
	default:
		return ""
	}
}

// WithImageRef returns a copy with slot set to ref. Unknown slots are ignored.
func (c Category) WithImageRef(slot domain.ImageSlot, ref string) Category {
	switch slot {
	case domain.ImageHero:
		c.HeroImage = ref
	case domain.ImageSquare:
		c.SquareImage = ref
	}
	return c
}

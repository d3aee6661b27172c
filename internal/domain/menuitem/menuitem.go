// Package menuitem defines the menu item entity together with its size
// variations, add-ons and serving details.
package menuitem

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/menu-cms/internal/domain"
)

// Kind identifies the menu items collection.
var Kind = domain.Kind{
	Name:        "menu_item",
	Collection:  "menu_items",
	AssetFolder: "menu-items",
}

// Compile-time check that MenuItem satisfies the record capability set.
var _ domain.Record[MenuItem] = MenuItem{}

// ServingDetails describes a portion. Every field is optional; nil means
// the detail is not shown.
type ServingDetails struct {
	WeightGrams *int
	PieceCount  *int
	SkewerCount *int
}

// IsZero reports whether no detail is set.
func (d ServingDetails) IsZero() bool {
	return d.WeightGrams == nil && d.PieceCount == nil && d.SkewerCount == nil
}

// Size is a priced variation of an item, e.g. "Half" and "Full".
type Size struct {
	Name           string
	Price          float64
	ServingDetails ServingDetails
}

// Addon is an optional extra that can be ordered with an item.
type Addon struct {
	Name  string
	Price float64
}

// MenuItem is a dish or drink listed under a category.
type MenuItem struct {
	ID             string
	Name           string
	CategoryID     string
	Description    string
	Price          float64
	IsFeatured     bool
	HeroImage      string
	SquareImage    string
	ServingDetails ServingDetails
	Sizes          []Size
	Addons         []Addon
	Order          int
	CreatedAt      time.Time
}

// DisplayPrice is the price shown on the menu: the cheapest size when sizes
// exist, otherwise the base price.
func (m MenuItem) DisplayPrice() float64 {
	if len(m.Sizes) == 0 {
		return m.Price
	}
	lowest := m.Sizes[0].Price
	for _, s := range m.Sizes[1:] {
		lowest = min(lowest, s.Price)
	}
	return lowest
}

// Validate checks business rules for the MenuItem entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass. Whether CategoryID references an existing
// category is checked by the application layer.
func (m MenuItem) Validate() error {
	fields := domain.Fields{}

	if strings.TrimSpace(m.Name) == "" {
		fields.Add("name", domain.MsgRequired)
	}
	if strings.TrimSpace(m.CategoryID) == "" {
		fields.Add("category_id", domain.MsgRequired)
	}
	if m.Price < 0 {
		fields.Add("price", domain.MsgNonNegative)
	}
	if len(m.Sizes) == 0 && m.Price == 0 {
		fields.Add("price", "is required when no sizes are given")
	}
	if m.Order < 0 {
		fields.Add("order", domain.MsgNonNegative)
	}
	validateServing(fields, "serving_details", m.ServingDetails)

	seen := make(map[string]bool, len(m.Sizes))
	for i, s := range m.Sizes {
		prefix := fmt.Sprintf("sizes[%d]", i)
		name := strings.ToLower(strings.TrimSpace(s.Name))
		switch {
		case name == "":
			fields.Add(prefix+".name", domain.MsgRequired)
		case seen[name]:
			fields.Add(prefix+".name", fmt.Sprintf("duplicate size %q", s.Name))
		}
		seen[name] = true
		if s.Price < 0 {
			fields.Add(prefix+".price", domain.MsgNonNegative)
		}
		validateServing(fields, prefix+".serving_details", s.ServingDetails)
	}

	for i, a := range m.Addons {
		prefix := fmt.Sprintf("addons[%d]", i)
		if strings.TrimSpace(a.Name) == "" {
			fields.Add(prefix+".name", domain.MsgRequired)
		}
		if a.Price < 0 {
			fields.Add(prefix+".price", domain.MsgNonNegative)
		}
	}

	return fields.Err()
}

func validateServing(fields domain.Fields, prefix string, d ServingDetails) {
	check := func(name string, v *int) {
		if v != nil && *v < 0 {
			fields.Add(prefix+"."+name, domain.MsgNonNegative)
		}
	}
	check("weight_grams", d.WeightGrams)
	check("piece_count", d.PieceCount)
	check("skewer_count", d.SkewerCount)
}

func (m MenuItem) EntityID() string { return m.ID }
func (m MenuItem) SortOrder() int   { return m.Order }

func (m MenuItem) WithEntityID(id string) MenuItem {
	m.ID = id
	return m
}

func (m MenuItem) WithSortOrder(order int) MenuItem {
	m.Order = order
	return m
}

func (m MenuItem) Created() time.Time { return m.CreatedAt }

func (m MenuItem) WithCreated(at time.Time) MenuItem {
	m.CreatedAt = at
	return m
}

func (MenuItem) ImageSlots() []domain.ImageSlot {
	return []domain.ImageSlot{domain.ImageHero, domain.ImageSquare}
}

func (m MenuItem) ImageRef(slot domain.ImageSlot) string {
	switch slot {
	case domain.ImageHero:
		return m.HeroImage
	case domain.ImageSquare:
		return m.SquareImage
	default:
		return ""
	}
}

func (m MenuItem) WithImageRef(slot domain.ImageSlot, ref string) MenuItem {
	switch slot {
	case domain.ImageHero:
		m.HeroImage = ref
	case domain.ImageSquare:
		m.SquareImage = ref
	}
	return m
}

// InCategory returns the items that belong to categoryID, keeping their
// relative order.
func InCategory(items []MenuItem, categoryID string) []MenuItem {
	out := make([]MenuItem, 0, len(items))
	for _, it := range items {
		if it.CategoryID == categoryID {
			out = append(out, it)
		}
	}
	return out
}

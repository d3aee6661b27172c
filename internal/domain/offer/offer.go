// Package offer defines promotional special offers.
package offer

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/menu-cms/internal/domain"
	"github.com/jsamuelsen11/menu-cms/internal/domain/ordering"
)

// DefaultActiveLimit is the number of offers shown when no limit is given.
const DefaultActiveLimit = 3

// Kind identifies the special offers collection.
var Kind = domain.Kind{
	Name:        "offer",
	Collection:  "special_offers",
	AssetFolder: "special-offers",
}

// Compile-time check that Offer satisfies the record capability set.
var _ domain.Record[Offer] = Offer{}

// Offer is a time-limited promotion shown on the public site.
type Offer struct {
	ID          string
	Headline    string
	Text        string
	PriceBefore float64
	PriceAfter  float64
	SquareImage string
	IsActive    bool
	Order       int
	CreatedAt   time.Time
}

// Validate checks business rules for the Offer entity.
func (o Offer) Validate() error {
	fields := domain.Fields{}

	if strings.TrimSpace(o.Headline) == "" {
		fields.Add("headline", domain.MsgRequired)
	}
	if o.PriceBefore < 0 {
		fields.Add("price_before", domain.MsgNonNegative)
	}
	if o.PriceAfter < 0 {
		fields.Add("price_after", domain.MsgNonNegative)
	}
	if o.Order < 0 {
		fields.Add("order", domain.MsgNonNegative)
	}

	return fields.Err()
}

// Active returns at most limit active offers in ascending order. A limit of
// zero or less falls back to DefaultActiveLimit. The input is not modified.
func Active(offers []Offer, limit int) []Offer {
	if limit <= 0 {
		limit = DefaultActiveLimit
	}

	active := make([]Offer, 0, len(offers))
	for _, o := range offers {
		if o.IsActive {
			active = append(active, o)
		}
	}
	ordering.Sort(active)

	if len(active) > limit {
		active = active[:limit]
	}
	return active
}

func (o Offer) EntityID() string { return o.ID }
func (o Offer) SortOrder() int   { return o.Order }

func (o Offer) WithEntityID(id string) Offer {
	o.ID = id
	return o
}

func (o Offer) WithSortOrder(order int) Offer {
	o.Order = order
	return o
}

func (o Offer) Created() time.Time { return o.CreatedAt }

func (o Offer) WithCreated(at time.Time) Offer {
	o.CreatedAt = at
	return o
}

// ImageSlots returns only the square image; offers have no hero image.
func (Offer) ImageSlots() []domain.ImageSlot {
	return []domain.ImageSlot{domain.ImageSquare}
}

func (o Offer) ImageRef(slot domain.ImageSlot) string {
	if slot == domain.ImageSquare {
		return o.SquareImage
	}
	return ""
}

func (o Offer) WithImageRef(slot domain.ImageSlot, ref string) Offer {
	if slot == domain.ImageSquare {
		o.SquareImage = ref
	}
	return o
}

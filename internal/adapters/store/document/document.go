// Package document defines the persisted JSON form of each entity kind.
//
// Every store keeps the identifier, order and creation time in dedicated
// columns (or fields) so it can sort and renumber without decoding. The rest
// of the entity travels as a self-contained JSON body whose field names are
// stable across drivers. Keeping these shapes separate from the domain types
// lets the domain evolve without silently changing what is on disk.
package document

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/jsamuelsen11/menu-cms/internal/domain"
	"github.com/jsamuelsen11/menu-cms/internal/domain/category"
	"github.com/jsamuelsen11/menu-cms/internal/domain/menuitem"
	"github.com/jsamuelsen11/menu-cms/internal/domain/offer"
)

// Codec converts an entity body to and from its JSON document.
type Codec[T any] struct {
	Kind      domain.Kind
	Marshal   func(T) ([]byte, error)
	Unmarshal func([]byte) (T, error)
}

// jsonCodec builds a Codec from a pair of mapping functions.
func jsonCodec[T, D any](kind domain.Kind, toDoc func(T) D, fromDoc func(D) T) Codec[T] {
	return Codec[T]{
		Kind: kind,
		Marshal: func(v T) ([]byte, error) {
			b, err := json.Marshal(toDoc(v))
			if err != nil {
				return nil, fmt.Errorf("encoding %s document: %w", kind.Name, err)
			}
			return b, nil
		},
		Unmarshal: func(b []byte) (T, error) {
			var d D
			if err := json.Unmarshal(b, &d); err != nil {
				var zero T
				return zero, fmt.Errorf("decoding %s document: %w", kind.Name, err)
			}
			return fromDoc(d), nil
		},
	}
}

// Categories returns the codec for category.Category.
func Categories() Codec[category.Category] {
	return jsonCodec(category.Kind, toCategoryDoc, fromCategoryDoc)
}

// MenuItems returns the codec for menuitem.MenuItem.
func MenuItems() Codec[menuitem.MenuItem] {
	return jsonCodec(menuitem.Kind, toMenuItemDoc, fromMenuItemDoc)
}

// Offers returns the codec for offer.Offer.
func Offers() Codec[offer.Offer] {
	return jsonCodec(offer.Kind, toOfferDoc, fromOfferDoc)
}

// --- categories ---

type categoryDoc struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	HeroImage   string `json:"hero_image,omitempty"`
	SquareImage string `json:"square_image,omitempty"`
	IsFeatured  bool   `json:"is_featured"`
}

func toCategoryDoc(c category.Category) categoryDoc {
	return categoryDoc{
		Name:        c.Name,
		Description: c.Description,
		HeroImage:   c.HeroImage,
		SquareImage: c.SquareImage,
		IsFeatured:  c.IsFeatured,
	}
}

func fromCategoryDoc(d categoryDoc) category.Category {
	return category.Category{
		Name:        d.Name,
		Description: d.Description,
		HeroImage:   d.HeroImage,
		SquareImage: d.SquareImage,
		IsFeatured:  d.IsFeatured,
	}
}

// --- menu items ---

type servingDoc struct {
	WeightGrams *int `json:"weight_grams,omitempty"`
	PieceCount  *int `json:"piece_count,omitempty"`
	SkewerCount *int `json:"skewer_count,omitempty"`
}

type sizeDoc struct {
	Name           string      `json:"name"`
	Price          float64     `json:"price"`
	ServingDetails *servingDoc `json:"serving_details,omitempty"`
}

type addonDoc struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type menuItemDoc struct {
	Name           string      `json:"name"`
	CategoryID     string      `json:"category_id"`
	Description    string      `json:"description,omitempty"`
	Price          float64     `json:"price"`
	IsFeatured     bool        `json:"is_featured"`
	HeroImage      string      `json:"hero_image,omitempty"`
	SquareImage    string      `json:"square_image,omitempty"`
	ServingDetails *servingDoc `json:"serving_details,omitempty"`
	Sizes          []sizeDoc   `json:"sizes,omitempty"`
	Addons         []addonDoc  `json:"addons,omitempty"`
}

func toServingDoc(s menuitem.ServingDetails) *servingDoc {
	if s.IsZero() {
		return nil
	}
	return &servingDoc{WeightGrams: s.WeightGrams, PieceCount: s.PieceCount, SkewerCount: s.SkewerCount}
}

func fromServingDoc(d *servingDoc) menuitem.ServingDetails {
	if d == nil {
		return menuitem.ServingDetails{}
	}
	return menuitem.ServingDetails{WeightGrams: d.WeightGrams, PieceCount: d.PieceCount, SkewerCount: d.SkewerCount}
}

func toMenuItemDoc(m menuitem.MenuItem) menuItemDoc {
	d := menuItemDoc{
		Name:           m.Name,
		CategoryID:     m.CategoryID,
		Description:    m.Description,
		Price:          m.Price,
		IsFeatured:     m.IsFeatured,
		HeroImage:      m.HeroImage,
		SquareImage:    m.SquareImage,
		ServingDetails: toServingDoc(m.ServingDetails),
	}
	for _, s := range m.Sizes {
		d.Sizes = append(d.Sizes, sizeDoc{Name: s.Name, Price: s.Price, ServingDetails: toServingDoc(s.ServingDetails)})
	}
	for _, a := range m.Addons {
		d.Addons = append(d.Addons, addonDoc(a))
	}
	return d
}

func fromMenuItemDoc(d menuItemDoc) menuitem.MenuItem {
	m := menuitem.MenuItem{
		Name:           d.Name,
		CategoryID:     d.CategoryID,
		Description:    d.Description,
		Price:          d.Price,
		IsFeatured:     d.IsFeatured,
		HeroImage:      d.HeroImage,
		SquareImage:    d.SquareImage,
		ServingDetails: fromServingDoc(d.ServingDetails),
	}
	for _, s := range d.Sizes {
		m.Sizes = append(m.Sizes, menuitem.Size{Name: s.Name, Price: s.Price, ServingDetails: fromServingDoc(s.ServingDetails)})
	}
	for _, a := range d.Addons {
		m.Addons = append(m.Addons, menuitem.Addon(a))
	}
	return m
}

// --- offers ---

type offerDoc struct {
	Headline    string  `json:"headline"`
	Text        string  `json:"text,omitempty"`
	PriceBefore float64 `json:"price_before"`
	PriceAfter  float64 `json:"price_after"`
	SquareImage string  `json:"square_image,omitempty"`
	IsActive    bool    `json:"is_active"`
}

func toOfferDoc(o offer.Offer) offerDoc {
	return offerDoc{
		Headline:    o.Headline,
		Text:        o.Text,
		PriceBefore: o.PriceBefore,
		PriceAfter:  o.PriceAfter,
		SquareImage: o.SquareImage,
		IsActive:    o.IsActive,
	}
}

func fromOfferDoc(d offerDoc) offer.Offer {
	return offer.Offer{
		Headline:    d.Headline,
		Text:        d.Text,
		PriceBefore: d.PriceBefore,
		PriceAfter:  d.PriceAfter,
		SquareImage: d.SquareImage,
		IsActive:    d.IsActive,
	}
}

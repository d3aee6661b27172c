package dto

import (
	"strings"

	"github.com/jsamuelsen11/menu-cms/internal/domain"
	"github.com/jsamuelsen11/menu-cms/internal/domain/category"
	"github.com/jsamuelsen11/menu-cms/internal/domain/menuitem"
	"github.com/jsamuelsen11/menu-cms/internal/domain/offer"
	"github.com/jsamuelsen11/menu-cms/internal/domain/ordering"
)

// Request is implemented by the body of a create or update call for one
// entity kind. Business rules are checked by the entity itself once the
// request has been mapped.
type Request[T any] interface {
	ToDomain() T
}

// CategoryRequest represents the JSON body for saving a category.
// Image fields are kept as sent; a multipart upload for the same slot wins.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	HeroImage   string `json:"hero_image,omitempty"`
	SquareImage string `json:"square_image,omitempty"`
	IsFeatured  bool   `json:"is_featured"`
}

// ToDomain maps the request onto a Category without ID or order.
func (r *CategoryRequest) ToDomain() category.Category {
	return category.Category{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		HeroImage:   r.HeroImage,
		SquareImage: r.SquareImage,
		IsFeatured:  r.IsFeatured,
	}
}

// ServingDetailsDTO carries optional portion details.
type ServingDetailsDTO struct {
	WeightGrams *int `json:"weight_grams,omitempty"`
	PieceCount  *int `json:"piece_count,omitempty"`
	SkewerCount *int `json:"skewer_count,omitempty"`
}

func (d *ServingDetailsDTO) toDomain() menuitem.ServingDetails {
	if d == nil {
		return menuitem.ServingDetails{}
	}
	return menuitem.ServingDetails{
		WeightGrams: d.WeightGrams,
		PieceCount:  d.PieceCount,
		SkewerCount: d.SkewerCount,
	}
}

// SizeDTO is a priced variation of a menu item.
type SizeDTO struct {
	Name           string             `json:"name"`
	Price          float64            `json:"price"`
	ServingDetails *ServingDetailsDTO `json:"serving_details,omitempty"`
}

// AddonDTO is an optional extra for a menu item.
type AddonDTO struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// MenuItemRequest represents the JSON body for saving a menu item.
type MenuItemRequest struct {
	Name           string             `json:"name"`
	CategoryID     string             `json:"category_id"`
	Description    string             `json:"description"`
	Price          float64            `json:"price"`
	IsFeatured     bool               `json:"is_featured"`
	HeroImage      string             `json:"hero_image,omitempty"`
	SquareImage    string             `json:"square_image,omitempty"`
	ServingDetails *ServingDetailsDTO `json:"serving_details,omitempty"`
	Sizes          []SizeDTO          `json:"sizes,omitempty"`
	Addons         []AddonDTO         `json:"addons,omitempty"`
}

// ToDomain maps the request onto a MenuItem without ID or order.
func (r *MenuItemRequest) ToDomain() menuitem.MenuItem {
	m := menuitem.MenuItem{
		Name:           strings.TrimSpace(r.Name),
		CategoryID:     strings.TrimSpace(r.CategoryID),
		Description:    r.Description,
		Price:          r.Price,
		IsFeatured:     r.IsFeatured,
		HeroImage:      r.HeroImage,
		SquareImage:    r.SquareImage,
		ServingDetails: r.ServingDetails.toDomain(),
	}
	if len(r.Sizes) > 0 {
		m.Sizes = make([]menuitem.Size, len(r.Sizes))
		for i, s := range r.Sizes {
			m.Sizes[i] = menuitem.Size{
				Name:           strings.TrimSpace(s.Name),
				Price:          s.Price,
				ServingDetails: s.ServingDetails.toDomain(),
			}
		}
	}
	if len(r.Addons) > 0 {
		m.Addons = make([]menuitem.Addon, len(r.Addons))
		for i, a := range r.Addons {
			m.Addons[i] = menuitem.Addon{Name: strings.TrimSpace(a.Name), Price: a.Price}
		}
	}
	return m
}

// OfferRequest represents the JSON body for saving a special offer.
type OfferRequest struct {
	Headline    string  `json:"headline"`
	Text        string  `json:"text"`
	PriceBefore float64 `json:"price_before"`
	PriceAfter  float64 `json:"price_after"`
	SquareImage string  `json:"square_image,omitempty"`
	IsActive    bool    `json:"is_active"`
}

// ToDomain maps the request onto an Offer without ID or order.
func (r *OfferRequest) ToDomain() offer.Offer {
	return offer.Offer{
		Headline:    strings.TrimSpace(r.Headline),
		Text:        r.Text,
		PriceBefore: r.PriceBefore,
		PriceAfter:  r.PriceAfter,
		SquareImage: r.SquareImage,
		IsActive:    r.IsActive,
	}
}

// OrderItem assigns an order value to one entity.
type OrderItem struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// ReorderRequest represents the JSON body of PUT /{kind}/order.
type ReorderRequest struct {
	Items []OrderItem `json:"items"`
}

// Validate checks that at least one item is given. Per-item rules are
// enforced by the catalog service.
func (r *ReorderRequest) Validate() error {
	if len(r.Items) == 0 {
		return &domain.ValidationError{Fields: map[string]string{"items": domain.MsgRequired}}
	}
	return nil
}

// Pairs converts the items into order pairs, keeping their sequence.
func (r *ReorderRequest) Pairs() []ordering.Pair {
	pairs := make([]ordering.Pair, len(r.Items))
	for i, it := range r.Items {
		pairs[i] = ordering.Pair{ID: it.ID, Order: it.Order}
	}
	return pairs
}

// MoveRequest represents the JSON body of POST /{kind}/move: a drag of
// SourceID onto the position held by DestinationID.
type MoveRequest struct {
	SourceID      string `json:"source_id"`
	DestinationID string `json:"destination_id"`
}

// Validate checks that both ids are present.
func (r *MoveRequest) Validate() error {
	fields := domain.Fields{}
	if strings.TrimSpace(r.SourceID) == "" {
		fields.Add("source_id", domain.MsgRequired)
	}
	if strings.TrimSpace(r.DestinationID) == "" {
		fields.Add("destination_id", domain.MsgRequired)
	}
	return fields.Err()
}

// LoginRequest represents the JSON body of POST /auth/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// Validate checks that a password was sent.
func (r *LoginRequest) Validate() error {
	if r.Password == "" {
		return &domain.ValidationError{Fields: map[string]string{"password": domain.MsgRequired}}
	}
	return nil
}

// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/menu-cms/internal/domain/category"
	"github.com/jsamuelsen11/menu-cms/internal/domain/menuitem"
	"github.com/jsamuelsen11/menu-cms/internal/domain/offer"
	"github.com/jsamuelsen11/menu-cms/internal/ports"
)

// ListResponse wraps a collection in display order.
type ListResponse[R any] struct {
	Items []R `json:"items"`
	Count int `json:"count"`
}

// ToListResponse converts entities with the given mapper.
func ToListResponse[T, R any](entities []T, toResponse func(T) R) ListResponse[R] {
	items := make([]R, len(entities))
	for i, e := range entities {
		items[i] = toResponse(e)
	}
	return ListResponse[R]{Items: items, Count: len(items)}
}

// CategoryResponse represents a single category in HTTP responses.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	HeroImage   string `json:"hero_image,omitempty"`
	SquareImage string `json:"square_image,omitempty"`
	IsFeatured  bool   `json:"is_featured"`
	Order       int    `json:"order"`
	CreatedAt   string `json:"created_at"`
}

// ToCategoryResponse converts a domain Category to an HTTP response DTO.
func ToCategoryResponse(c category.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		HeroImage:   c.HeroImage,
		SquareImage: c.SquareImage,
		IsFeatured:  c.IsFeatured,
		Order:       c.Order,
		CreatedAt:   formatTime(c.CreatedAt),
	}
}

// SizeResponse is a priced variation in HTTP responses.
type SizeResponse struct {
	Name           string             `json:"name"`
	Price          float64            `json:"price"`
	ServingDetails *ServingDetailsDTO `json:"serving_details,omitempty"`
}

// MenuItemResponse represents a single menu item in HTTP responses.
// DisplayPrice is the cheapest size, or the base price without sizes.
type MenuItemResponse struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	CategoryID     string             `json:"category_id"`
	Description    string             `json:"description"`
	Price          float64            `json:"price"`
	DisplayPrice   float64            `json:"display_price"`
	IsFeatured     bool               `json:"is_featured"`
	HeroImage      string             `json:"hero_image,omitempty"`
	SquareImage    string             `json:"square_image,omitempty"`
	ServingDetails *ServingDetailsDTO `json:"serving_details,omitempty"`
	Sizes          []SizeResponse     `json:"sizes"`
	Addons         []AddonDTO         `json:"addons"`
	Order          int                `json:"order"`
	CreatedAt      string             `json:"created_at"`
}

// ToMenuItemResponse converts a domain MenuItem to an HTTP response DTO.
func ToMenuItemResponse(m menuitem.MenuItem) MenuItemResponse {
	resp := MenuItemResponse{
		ID:             m.ID,
		Name:           m.Name,
		CategoryID:     m.CategoryID,
		Description:    m.Description,
		Price:          m.Price,
		DisplayPrice:   m.DisplayPrice(),
		IsFeatured:     m.IsFeatured,
		HeroImage:      m.HeroImage,
		SquareImage:    m.SquareImage,
		ServingDetails: toServingDetails(m.ServingDetails),
		Sizes:          make([]SizeResponse, len(m.Sizes)),
		Addons:         make([]AddonDTO, len(m.Addons)),
		Order:          m.Order,
		CreatedAt:      formatTime(m.CreatedAt),
	}
	for i, s := range m.Sizes {
		resp.Sizes[i] = SizeResponse{
			Name:           s.Name,
			Price:          s.Price,
			ServingDetails: toServingDetails(s.ServingDetails),
		}
	}
	for i, a := range m.Addons {
		resp.Addons[i] = AddonDTO{Name: a.Name, Price: a.Price}
	}
	return resp
}

func toServingDetails(d menuitem.ServingDetails) *ServingDetailsDTO {
	if d.IsZero() {
		return nil
	}
	return &ServingDetailsDTO{
		WeightGrams: d.WeightGrams,
		PieceCount:  d.PieceCount,
		SkewerCount: d.SkewerCount,
	}
}

// OfferResponse represents a single special offer in HTTP responses.
type OfferResponse struct {
	ID          string  `json:"id"`
	Headline    string  `json:"headline"`
	Text        string  `json:"text"`
	PriceBefore float64 `json:"price_before"`
	PriceAfter  float64 `json:"price_after"`
	SquareImage string  `json:"square_image,omitempty"`
	IsActive    bool    `json:"is_active"`
	Order       int     `json:"order"`
	CreatedAt   string  `json:"created_at"`
}

// ToOfferResponse converts a domain Offer to an HTTP response DTO.
func ToOfferResponse(o offer.Offer) OfferResponse {
	return OfferResponse{
		ID:          o.ID,
		Headline:    o.Headline,
		Text:        o.Text,
		PriceBefore: o.PriceBefore,
		PriceAfter:  o.PriceAfter,
		SquareImage: o.SquareImage,
		IsActive:    o.IsActive,
		Order:       o.Order,
		CreatedAt:   formatTime(o.CreatedAt),
	}
}

// MenuSectionResponse is a category together with its items.
type MenuSectionResponse struct {
	CategoryResponse
	Items []MenuItemResponse `json:"items"`
}

// MenuResponse is the public menu grouped by category. Items whose
// category no longer exists are left out.
type MenuResponse struct {
	Categories []MenuSectionResponse `json:"categories"`
}

// ToMenuResponse groups items under their categories, keeping both in
// display order.
func ToMenuResponse(m *ports.Menu) MenuResponse {
	sections := make([]MenuSectionResponse, len(m.Categories))
	for i, c := range m.Categories {
		items := menuitem.InCategory(m.Items, c.ID)
		sections[i] = MenuSectionResponse{
			CategoryResponse: ToCategoryResponse(c),
			Items:            make([]MenuItemResponse, len(items)),
		}
		for j, it := range items {
			sections[i].Items[j] = ToMenuItemResponse(it)
		}
	}
	return MenuResponse{Categories: sections}
}

// DashboardResponse carries collection sizes for the admin landing page.
type DashboardResponse struct {
	Categories   int `json:"categories"`
	MenuItems    int `json:"menu_items"`
	Offers       int `json:"offers"`
	ActiveOffers int `json:"active_offers"`
}

// ToDashboardResponse converts the service dashboard.
func ToDashboardResponse(d *ports.Dashboard) DashboardResponse {
	return DashboardResponse{
		Categories:   d.Categories,
		MenuItems:    d.MenuItems,
		Offers:       d.Offers,
		ActiveOffers: d.ActiveOffers,
	}
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   string `json:"expires_at"`
}

// ToTokenResponse converts an issued token.
func ToTokenResponse(t *ports.Token) TokenResponse {
	return TokenResponse{
		AccessToken: t.Value,
		TokenType:   "Bearer",
		ExpiresAt:   formatTime(t.ExpiresAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/menu-cms/internal/adapters/store/document"
	"github.com/jsamuelsen11/menu-cms/internal/domain/category"
	"github.com/jsamuelsen11/menu-cms/internal/domain/menuitem"
	"github.com/jsamuelsen11/menu-cms/internal/domain/offer"
)

func intPtr(v int) *int { return &v }

func TestMenuItems_BodyExcludesStoreColumns(t *testing.T) {
	t.Parallel()

	codec := document.MenuItems()
	item := menuitem.MenuItem{
		ID:             "01J0000000000000000000000",
		Name:           "Chicken Tikka",
		CategoryID:     "01J0000000000000000000001",
		Price:          0,
		ServingDetails: menuitem.ServingDetails{SkewerCount: intPtr(2)},
		Sizes: []menuitem.Size{
			{Name: "Half", Price: 7.5, ServingDetails: menuitem.ServingDetails{PieceCount: intPtr(4)}},
			{Name: "Full", Price: 12},
		},
		Addons: []menuitem.Addon{{Name: "Mint sauce", Price: 0.5}},
		Order:  4,
	}

	body, err := codec.Marshal(item)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"name": "Chicken Tikka",
		"category_id": "01J0000000000000000000001",
		"price": 0,
		"is_featured": false,
		"serving_details": {"skewer_count": 2},
		"sizes": [
			{"name": "Half", "price": 7.5, "serving_details": {"piece_count": 4}},
			{"name": "Full", "price": 12}
		],
		"addons": [{"name": "Mint sauce", "price": 0.5}]
	}`, string(body))

	got, err := codec.Unmarshal(body)
	require.NoError(t, err)

	want := item
	want.ID, want.Order = "", 0
	assert.Equal(t, want, got)
}

func TestCategories_OmitsEmptyImages(t *testing.T) {
	t.Parallel()

	body, err := document.Categories().Marshal(category.Category{Name: "Starters", IsFeatured: true})
	require.NoError(t, err)

	assert.JSONEq(t, `{"name":"Starters","is_featured":true}`, string(body))
}

func TestOffers_IgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	got, err := document.Offers().Unmarshal([]byte(`{"headline":"Lunch deal","price_before":15,"price_after":9.9,"is_active":true,"unknown":"ignored"}`))
	require.NoError(t, err)

	assert.Equal(t, offer.Offer{Headline: "Lunch deal", PriceBefore: 15, PriceAfter: 9.9, IsActive: true}, got)
}

func TestUnmarshal_InvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := document.Categories().Unmarshal([]byte(`{"name":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding category document")
}

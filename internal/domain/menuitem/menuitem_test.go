package menuitem

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/menu-cms/internal/domain"
)

func intPtr(v int) *int { return &v }

func validItem() MenuItem {
	return MenuItem{
		ID:         "01HZX",
		Name:       "Chicken skewers",
		CategoryID: "grill",
		Price:      12.5,
		ServingDetails: ServingDetails{
			SkewerCount: intPtr(3),
		},
	}
}

// requireValidationField asserts err wraps domain.ErrValidation and names field.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestMenuItem_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*MenuItem)
		field  string
	}{
		{name: "blank name", mutate: func(m *MenuItem) { m.Name = "  " }, field: "name"},
		{name: "missing category", mutate: func(m *MenuItem) { m.CategoryID = "" }, field: "category_id"},
		{name: "negative price", mutate: func(m *MenuItem) { m.Price = -1 }, field: "price"},
		{name: "no price and no sizes", mutate: func(m *MenuItem) { m.Price = 0 }, field: "price"},
		{
			name:   "negative weight",
			mutate: func(m *MenuItem) { m.ServingDetails.WeightGrams = intPtr(-100) },
			field:  "serving_details.weight_grams",
		},
		{
			name:   "size without name",
			mutate: func(m *MenuItem) { m.Sizes = []Size{{Price: 4}} },
			field:  "sizes[0].name",
		},
		{
			name: "duplicate size names",
			mutate: func(m *MenuItem) {
				m.Sizes = []Size{{Name: "Full", Price: 10}, {Name: "full", Price: 11}}
			},
			field: "sizes[1].name",
		},
		{
			name: "size with negative piece count",
			mutate: func(m *MenuItem) {
				m.Sizes = []Size{{Name: "Half", Price: 6, ServingDetails: ServingDetails{PieceCount: intPtr(-2)}}}
			},
			field: "sizes[0].serving_details.piece_count",
		},
		{
			name:   "addon with negative price",
			mutate: func(m *MenuItem) { m.Addons = []Addon{{Name: "Garlic sauce", Price: -0.5}} },
			field:  "addons[0].price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := validItem()
			tt.mutate(&m)
			requireValidationField(t, m.Validate(), tt.field)
		})
	}
}

func TestMenuItem_Validate_Valid(t *testing.T) {
	t.Parallel()

	m := validItem()
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	m.Price = 0
	m.Sizes = []Size{{Name: "Half", Price: 7}, {Name: "Full", Price: 12}}
	m.Addons = []Addon{{Name: "Extra cheese", Price: 1.5}}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() with sizes = %v, want nil", err)
	}
}

func TestMenuItem_DisplayPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		item  MenuItem
		price float64
	}{
		{name: "base price without sizes", item: MenuItem{Price: 9.9}, price: 9.9},
		{
			name:  "cheapest size wins",
			item:  MenuItem{Price: 20, Sizes: []Size{{Name: "L", Price: 14}, {Name: "S", Price: 8}, {Name: "M", Price: 11}}},
			price: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.item.DisplayPrice(); got != tt.price {
				t.Errorf("DisplayPrice() = %v, want %v", got, tt.price)
			}
		})
	}
}

func TestMenuItem_ImageRefs(t *testing.T) {
	t.Parallel()

	m := validItem().
		WithImageRef(domain.ImageHero, "menu-items/hero.png").
		WithImageRef(domain.ImageSquare, "menu-items/square.png").
		WithImageRef("banner", "ignored")

	if m.ImageRef(domain.ImageHero) != "menu-items/hero.png" {
		t.Errorf("ImageRef(hero) = %q", m.ImageRef(domain.ImageHero))
	}
	if m.ImageRef(domain.ImageSquare) != "menu-items/square.png" {
		t.Errorf("ImageRef(square) = %q", m.ImageRef(domain.ImageSquare))
	}
	if m.ImageRef("banner") != "" {
		t.Errorf("ImageRef(banner) = %q, want empty", m.ImageRef("banner"))
	}
}

func TestInCategory(t *testing.T) {
	t.Parallel()

	items := []MenuItem{
		{ID: "1", CategoryID: "grill"},
		{ID: "2", CategoryID: "drinks"},
		{ID: "3", CategoryID: "grill"},
	}

	got := InCategory(items, "grill")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("InCategory(grill) = %+v, want items 1 and 3", got)
	}
}

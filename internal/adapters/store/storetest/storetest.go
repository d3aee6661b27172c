// Package storetest is a conformance suite for ports.OrderedStore
// implementations. Each driver package runs it against a fresh backend.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/menu-cms/internal/domain"
	"github.com/jsamuelsen11/menu-cms/internal/domain/category"
	"github.com/jsamuelsen11/menu-cms/internal/domain/menuitem"
	"github.com/jsamuelsen11/menu-cms/internal/domain/ordering"
	"github.com/jsamuelsen11/menu-cms/internal/ports"
)

// Stores is the set of stores under test, backed by one empty database.
type Stores struct {
	Categories ports.OrderedStore[category.Category]
	MenuItems  ports.OrderedStore[menuitem.MenuItem]
}

// Factory returns empty stores. It registers its own cleanup on t.
type Factory func(t *testing.T) Stores

// Run executes every conformance check. Each check gets fresh stores.
func Run(t *testing.T, newStores Factory) {
	t.Helper()

	checks := map[string]func(*testing.T, Stores){
		"append assigns id, order and creation time": testAppend,
		"list is sorted by order":                    testListSorted,
		"ties break on creation order":               testTieBreak,
		"get unknown id":                             testGetNotFound,
		"update keeps order and creation time":       testUpdate,
		"update unknown id":                          testUpdateNotFound,
		"reassign applies all pairs":                 testReassign,
		"reassign twice equals reassign once":        testReassignIdempotent,
		"reassign with unknown id applies nothing":   testReassignRejected,
		"append after reassign uses max plus one":    testAppendAfterReassign,
		"remove leaves gaps":                         testRemove,
		"concurrent appends get distinct orders":     testConcurrentAppend,
		"menu item body round trips":                 testMenuItemRoundTrip,
	}

	for name, check := range checks {
		t.Run(name, func(t *testing.T) {
			check(t, newStores(t))
		})
	}
}

func seed(t *testing.T, s ports.OrderedStore[category.Category], names ...string) []category.Category {
	t.Helper()

	out := make([]category.Category, 0, len(names))
	for _, n := range names {
		c, err := s.Append(context.Background(), category.Category{Name: n})
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func names(cats []category.Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.Name
	}
	return out
}

func testAppend(t *testing.T, s Stores) {
	cats := seed(t, s.Categories, "Starters", "Mains", "Desserts")

	seen := map[string]bool{}
	for i, c := range cats {
		assert.NotEmpty(t, c.ID)
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
		assert.Equal(t, i+1, c.Order, "order of %s", c.Name)
		assert.False(t, c.CreatedAt.IsZero())
	}

	got, err := s.Categories.Get(context.Background(), cats[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Mains", got.Name)
	assert.Equal(t, 2, got.Order)
	assert.WithinDuration(t, cats[1].CreatedAt, got.CreatedAt, 0)
}

func testListSorted(t *testing.T, s Stores) {
	ctx := context.Background()
	cats := seed(t, s.Categories, "A", "B", "C")

	require.NoError(t, s.Categories.ReassignOrder(ctx, []ordering.Pair{
		{ID: cats[0].ID, Order: 2},
		{ID: cats[1].ID, Order: 0},
		{ID: cats[2].ID, Order: 1},
	}))

	got, err := s.Categories.ListOrdered(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, names(got))
	assert.Equal(t, ordering.Pairs(got), []ordering.Pair{
		{ID: cats[1].ID, Order: 0},
		{ID: cats[2].ID, Order: 1},
		{ID: cats[0].ID, Order: 2},
	})
}

func testTieBreak(t *testing.T, s Stores) {
	ctx := context.Background()
	cats := seed(t, s.Categories, "first", "second", "third")

	require.NoError(t, s.Categories.ReassignOrder(ctx, []ordering.Pair{
		{ID: cats[2].ID, Order: 5},
		{ID: cats[0].ID, Order: 5},
		{ID: cats[1].ID, Order: 5},
	}))

	got, err := s.Categories.ListOrdered(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, names(got))
}

func testGetNotFound(t *testing.T, s Stores) {
	_, err := s.Categories.Get(context.Background(), "01HZZZZZZZZZZZZZZZZZZZZZZZ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func testUpdate(t *testing.T, s Stores) {
	ctx := context.Background()
	cats := seed(t, s.Categories, "Starters", "Mains")

	changed := cats[1]
	changed.Name = "Main courses"
	changed.Order = 99
	changed.HeroImage = "categories/hero.png"

	got, err := s.Categories.Update(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Order, "Update must not change order")
	assert.WithinDuration(t, cats[1].CreatedAt, got.CreatedAt, 0)

	stored, err := s.Categories.Get(ctx, cats[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Main courses", stored.Name)
	assert.Equal(t, "categories/hero.png", stored.HeroImage)
	assert.Equal(t, 2, stored.Order)
}

func testUpdateNotFound(t *testing.T, s Stores) {
	_, err := s.Categories.Update(context.Background(), category.Category{ID: "missing", Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func testReassign(t *testing.T, s Stores) {
	ctx := context.Background()
	cats := seed(t, s.Categories, "A", "B", "C", "D")

	moved, ok := ordering.MoveByID(cats, cats[3].ID, cats[0].ID)
	require.True(t, ok)
	require.NoError(t, s.Categories.ReassignOrder(ctx, ordering.Pairs(moved)))

	got, err := s.Categories.ListOrdered(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "A", "B", "C"}, names(got))
	for i, c := range got {
		assert.Equal(t, i, c.Order)
	}

	require.NoError(t, s.Categories.ReassignOrder(ctx, nil), "empty batch is a no-op")
}

func testReassignIdempotent(t *testing.T, s Stores) {
	ctx := context.Background()
	cats := seed(t, s.Categories, "A", "B", "C")

	pairs := []ordering.Pair{
		{ID: cats[2].ID, Order: 0},
		{ID: cats[0].ID, Order: 1},
		{ID: cats[1].ID, Order: 2},
	}

	require.NoError(t, s.Categories.ReassignOrder(ctx, pairs))
	once, err := s.Categories.ListOrdered(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Categories.ReassignOrder(ctx, pairs))
	twice, err := s.Categories.ListOrdered(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"C", "A", "B"}, names(once))
	assert.Equal(t, once, twice)
}

func testReassignRejected(t *testing.T, s Stores) {
	ctx := context.Background()
	cats := seed(t, s.Categories, "A", "B")

	err := s.Categories.ReassignOrder(ctx, []ordering.Pair{
		{ID: cats[0].ID, Order: 7},
		{ID: "deleted-elsewhere", Order: 0},
		{ID: cats[1].ID, Order: 8},
	})
	require.ErrorIs(t, err, domain.ErrBatchRejected)
	assert.True(t, errors.Is(err, domain.ErrConflict))

	got, err := s.Categories.ListOrdered(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, got[0].Order)
	assert.Equal(t, 2, got[1].Order)
}

func testAppendAfterReassign(t *testing.T, s Stores) {
	ctx := context.Background()
	cats := seed(t, s.Categories, "A", "B", "C")
	require.NoError(t, s.Categories.ReassignOrder(ctx, ordering.Pairs(cats)))

	added, err := s.Categories.Append(ctx, category.Category{Name: "D"})
	require.NoError(t, err)
	assert.Equal(t, 3, added.Order)
}

func testRemove(t *testing.T, s Stores) {
	ctx := context.Background()
	cats := seed(t, s.Categories, "A", "B", "C")

	require.NoError(t, s.Categories.Remove(ctx, cats[1].ID))

	_, err := s.Categories.Get(ctx, cats[1].ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, s.Categories.Remove(ctx, cats[1].ID), domain.ErrNotFound)

	got, err := s.Categories.ListOrdered(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Order)
	assert.Equal(t, 3, got[1].Order)
}

func testConcurrentAppend(t *testing.T, s Stores) {
	const n = 8

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := range n {
		wg.Go(func() {
			_, errs[i] = s.Categories.Append(context.Background(), category.Category{Name: fmt.Sprintf("c%d", i)})
		})
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	got, err := s.Categories.ListOrdered(context.Background())
	require.NoError(t, err)
	require.Len(t, got, n)

	orders := map[int]bool{}
	for _, c := range got {
		assert.False(t, orders[c.Order], "order %d assigned twice", c.Order)
		orders[c.Order] = true
	}
}

func testMenuItemRoundTrip(t *testing.T, s Stores) {
	ctx := context.Background()
	weight := 250

	item := menuitem.MenuItem{
		Name:           "Lamb Biryani",
		CategoryID:     "01J00000000000000000000000",
		Description:    "Slow cooked",
		ServingDetails: menuitem.ServingDetails{WeightGrams: &weight},
		Sizes:          []menuitem.Size{{Name: "Regular", Price: 11.5}, {Name: "Large", Price: 14}},
		Addons:         []menuitem.Addon{{Name: "Raita", Price: 1.25}},
		IsFeatured:     true,
	}

	added, err := s.MenuItems.Append(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, 1, added.Order)

	got, err := s.MenuItems.Get(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, item.Name, got.Name)
	assert.Equal(t, item.Sizes, got.Sizes)
	assert.Equal(t, item.Addons, got.Addons)
	require.NotNil(t, got.ServingDetails.WeightGrams)
	assert.Equal(t, 250, *got.ServingDetails.WeightGrams)
	assert.InDelta(t, 11.5, got.DisplayPrice(), 0.001)
}

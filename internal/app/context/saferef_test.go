package appctx_test

import (
	"sync"
	"testing"

	appctx "github.com/jsamuelsen11/menu-cms/internal/app/context"
)

func TestSafeRef_GetSet(t *testing.T) {
	t.Parallel()

	ref := appctx.NewRef("initial")
	ref.Set("updated")

	if got := ref.Get(); got != "updated" {
		t.Fatalf("Get() = %q, want %q", got, "updated")
	}
}

func TestSafeRef_ConcurrentMapUpdates(t *testing.T) {
	t.Parallel()

	// Mirrors parallel uploads recording their object references.
	refs := appctx.NewRef(map[string]string{})
	slots := []string{"hero_image", "square_image", "banner", "thumb"}

	var wg sync.WaitGroup
	for _, slot := range slots {
		wg.Go(func() {
			refs.Update(func(m *map[string]string) { (*m)[slot] = "images/" + slot + ".png" })
		})
		wg.Go(func() { _ = refs.Get() })
	}
	wg.Wait()

	got := refs.Get()
	if len(got) != len(slots) {
		t.Fatalf("len = %d, want %d", len(got), len(slots))
	}
	for _, slot := range slots {
		if got[slot] != "images/"+slot+".png" {
			t.Errorf("ref[%s] = %q", slot, got[slot])
		}
	}
}

func TestSafeRef_ConcurrentIncrements(t *testing.T) {
	t.Parallel()

	ref := appctx.NewRef(0)

	const goroutines = 100
	var wg sync.WaitGroup
	for range goroutines {
		wg.Go(func() { ref.Update(func(v *int) { *v++ }) })
	}
	wg.Wait()

	if got := ref.Get(); got != goroutines {
		t.Errorf("final value = %d, want %d", got, goroutines)
	}
}

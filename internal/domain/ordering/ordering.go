// Package ordering holds the pure sequence logic shared by every manually
// sorted collection: locating entities, single-element moves and the
// renumbering that turns a visible sequence into persisted order values.
//
// Nothing here performs I/O. The store and the reorder controller build on
// these functions.
package ordering

import (
	"cmp"
	"slices"
)

// Entity is a record with a stable identifier and an explicit sort key.
// The With* methods return modified copies so that sequences held by a
// caller are never mutated in place.
type Entity[T any] interface {
	EntityID() string
	SortOrder() int
	WithEntityID(id string) T
	WithSortOrder(order int) T
}

// Pair assigns a sort key to a single entity.
type Pair struct {
	ID    string
	Order int
}

// IndexOf returns the position of id in seq, or -1.
func IndexOf[T Entity[T]](seq []T, id string) int {
	return slices.IndexFunc(seq, func(e T) bool { return e.EntityID() == id })
}

// Move removes the element at from and reinserts it at to, shifting the
// elements in between by one. It returns a new slice; seq is left untouched.
// Indices outside seq, or from == to, yield a copy of seq and false.
func Move[T any](seq []T, from, to int) ([]T, bool) {
	n := len(seq)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return slices.Clone(seq), false
	}

	out := make([]T, 0, n)
	moved := seq[from]
	for i, e := range seq {
		if i == from {
			continue
		}
		if i == to && from > to {
			out = append(out, moved)
		}
		out = append(out, e)
		if i == to && from < to {
			out = append(out, moved)
		}
	}
	return out, true
}

// MoveByID resolves both identifiers in seq and applies Move. A missing
// identifier is treated as a stale reference and reported as no change.
func MoveByID[T Entity[T]](seq []T, sourceID, destinationID string) ([]T, bool) {
	from := IndexOf(seq, sourceID)
	to := IndexOf(seq, destinationID)
	if from < 0 || to < 0 {
		return seq, false
	}
	if from == to {
		return seq, false
	}
	return Move(seq, from, to)
}

// Pairs renumbers seq with 0-based contiguous positions. Existing gaps are
// discarded.
func Pairs[T Entity[T]](seq []T) []Pair {
	pairs := make([]Pair, len(seq))
	for i, e := range seq {
		pairs[i] = Pair{ID: e.EntityID(), Order: i}
	}
	return pairs
}

// Renumber returns a copy of seq where every element carries its index as
// its sort key, matching the pairs produced by Pairs.
func Renumber[T Entity[T]](seq []T) []T {
	out := make([]T, len(seq))
	for i, e := range seq {
		out[i] = e.WithSortOrder(i)
	}
	return out
}

// Sort orders seq ascending by sort key. Ties keep their relative order.
func Sort[T Entity[T]](seq []T) {
	slices.SortStableFunc(seq, func(a, b T) int {
		return cmp.Compare(a.SortOrder(), b.SortOrder())
	})
}

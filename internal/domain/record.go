package domain

import (
	"time"

	"github.com/jsamuelsen11/menu-cms/internal/domain/ordering"
)

// ImageSlot names an image reference field on a record.
type ImageSlot string

const (
	ImageHero   ImageSlot = "hero_image"
	ImageSquare ImageSlot = "square_image"
)

// IsValid returns true if the slot is one of the defined constants.
func (s ImageSlot) IsValid() bool {
	switch s {
	case ImageHero, ImageSquare:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s ImageSlot) String() string {
	return string(s)
}

// Kind describes one manually ordered collection: the name used in logs
// and metrics, the persistent collection it lives in and the folder its
// images are uploaded to.
type Kind struct {
	Name        string
	Collection  string
	AssetFolder string
}

// Record is the capability set shared by categories, menu items and offers.
// Stores persist any Record; the catalog service validates and decorates it
// with uploaded image references.
type Record[T any] interface {
	ordering.Entity[T]

	// Created returns the creation timestamp assigned by the store.
	Created() time.Time
	WithCreated(at time.Time) T

	// ImageSlots lists the image fields this record kind carries.
	ImageSlots() []ImageSlot
	ImageRef(slot ImageSlot) string
	WithImageRef(slot ImageSlot, ref string) T

	Validate() error
}

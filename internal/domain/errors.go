package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("unavailable")
	ErrRateLimited  = errors.New("too many requests")

	// ErrBatchRejected means an order reassignment could not be applied as a
	// whole. None of its pairs were written.
	ErrBatchRejected = fmt.Errorf("%w: batch write rejected", ErrConflict)

	// ErrUploadFailed marks an asset upload failure. Callers treat it as
	// non-fatal: the entity is saved with its previous image reference.
	ErrUploadFailed = errors.New("upload failed")
)

// Validation messages shared by entity validators.
const (
	MsgRequired      = "is required"
	MsgNonNegative   = "must not be negative"
	MsgUnknownParent = "does not reference an existing record"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Fields collects per-field validation messages and converts them into a
// *ValidationError once all checks have run.
type Fields map[string]string

// Add records msg for field unless a message is already present.
func (f Fields) Add(field, msg string) {
	if _, ok := f[field]; !ok {
		f[field] = msg
	}
}

// Err returns nil when no messages were recorded.
func (f Fields) Err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

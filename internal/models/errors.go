package models

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks across the error taxonomy
var (
	// ErrValidation marks input rejected before it reaches the store
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an operation that referenced an id that does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvariant marks an index or scope mismatch that correct callers never produce
	ErrInvariant = errors.New("invariant violation")
)

// ValidationError reports a creation or update payload that must not be committed
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports a module or item id that is not in the store
type NotFoundError struct {
	Kind string // "module" or "item"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InvariantViolation reports a structurally impossible request, such as a
// reorder index taken from a stale render
type InvariantViolation struct {
	Op     string
	Detail string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

func (e *InvariantViolation) Is(target error) bool {
	return target == ErrInvariant
}

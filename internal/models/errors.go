package models

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every layer. Callers match with errors.Is.
var (
	// ErrNotFound marks get/update/delete calls that reference an absent id.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks a record rejected before it reached the store.
	ErrValidation = errors.New("validation failed")

	// ErrPersistence marks a failed write to the key-value backend.
	// The in-memory state already reflects the mutation when this is returned.
	ErrPersistence = errors.New("persistence failed")
)

// IsPersistenceWarning reports whether err only signals a failed write-through.
func IsPersistenceWarning(err error) bool {
	return err != nil && errors.Is(err, ErrPersistence)
}

// NotFoundError returns "<label> <id> not found" wrapping ErrNotFound.
func NotFoundError(entity, id string) error {
	return fmt.Errorf("%s %s %w", EntityLabel(entity), id, ErrNotFound)
}

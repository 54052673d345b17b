package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrConflict is returned when optimistic concurrency or a status
	// transition check fails
	ErrConflict = errors.New("conflict")
)

// ConflictError reports an artifact optimistic-concurrency failure with the
// expected and actual versions. It matches errors.Is(err, ErrConflict).
type ConflictError struct {
	ArtifactID string
	Expected   int
	Actual     int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("artifact %q version conflict: expected %d, actual %d",
		e.ArtifactID, e.Expected, e.Actual)
}

// Is makes ConflictError match ErrConflict.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrVersionConflict is returned when an optimistic update lost the race.
	// The store never retries; the caller owns the retry policy.
	ErrVersionConflict = errors.New("version conflict")

	// ErrConcurrentUpdate is returned when a retried optimistic update
	// conflicts a second time.
	ErrConcurrentUpdate = errors.New("concurrent update")

	// ErrStorageUnavailable is returned on transient state store failures.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden is returned when a user accesses another user's resource
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidStateTransition is returned when a campaign action is not
	// allowed from its current status
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrNotCancellable is returned when a task is already terminal
	ErrNotCancellable = errors.New("task is not cancellable")

	// ErrProfileRequired is returned when creating a campaign for a user
	// without a creator profile
	ErrProfileRequired = errors.New("creator profile required")
)

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

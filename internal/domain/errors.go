package domain

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Match them with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

// DomainError carries a human-readable message alongside its kind.
type DomainError struct {
	Err     error
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFoundError returns a not-found error with the given message.
func NewNotFoundError(message string) *DomainError {
	return &DomainError{Err: ErrNotFound, Message: message}
}

// NewConflictError returns a conflict error with the given message.
func NewConflictError(message string) *DomainError {
	return &DomainError{Err: ErrConflict, Message: message}
}

// NewValidationError returns a validation error for a single field.
func NewValidationError(field, reason string) *DomainError {
	return &DomainError{Err: ErrValidation, Message: fmt.Sprintf("%s: %s", field, reason)}
}

package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrReferenceNotFound = errors.New("referenced entity not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrValidation        = errors.New("validation error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict")
	ErrExternalService   = errors.New("external service error")
)

// ErrPaidFeature is returned when an unsubscribed user calls a paid operation.
var ErrPaidFeature = fmt.Errorf("%w: This is a paid feature. Please switch to a paid plan to use it.", ErrForbidden)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ReferenceError names the reference that failed an ownership check.
// It unwraps to ErrReferenceNotFound.
type ReferenceError struct {
	Entity EntityType
	ID     fmt.Stringer
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Entity, e.ID, ErrReferenceNotFound)
}

func (e *ReferenceError) Unwrap() error { return ErrReferenceNotFound }

// NewReferenceError creates a ReferenceError.
func NewReferenceError(entity EntityType, id fmt.Stringer) *ReferenceError {
	return &ReferenceError{Entity: entity, ID: id}
}

package common

import (
	"errors"
	"fmt"
)

// Common error types used across the application
var (
	// ErrNotFound indicates a version id did not resolve in the store.
	ErrNotFound = errors.New("version not found")
	// ErrIsolationViolation indicates the compared versions belong to
	// different site tenants.
	ErrIsolationViolation = errors.New("versions belong to different sites")
	// ErrAccessDenied indicates the requesting user fails the access policy.
	ErrAccessDenied = errors.New("access denied")
	// ErrUnsupportedFormat indicates an export format outside html/json/pdf.
	ErrUnsupportedFormat = errors.New("unsupported export format")
	// ErrInvalidConfiguration indicates configuration issues.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf wraps an error with formatted context information
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

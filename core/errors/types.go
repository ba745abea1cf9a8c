// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for introspection and lookup failures

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IntrospectionError reports a type whose accessors cannot be turned into
// property descriptors
type IntrospectionError struct {
	Type     string
	Property string
	Reason   string
}

// Error implements the error interface
func (e *IntrospectionError) Error() string {
	if e.Property == "" {
		return fmt.Sprintf("introspection of %s failed: %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("introspection of %s failed on property '%s': %s", e.Type, e.Property, e.Reason)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsIntrospection checks if an error is an IntrospectionError
func IsIntrospection(err error) bool {
	var introspectionErr *IntrospectionError
	return errors.As(err, &introspectionErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

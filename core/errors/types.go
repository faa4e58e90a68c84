// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// CatalogUnavailableError is the single error kind surfaced by the recipe
// catalog client for any transport, status or parsing fault
type CatalogUnavailableError struct {
	Operation string
	Err       error
}

// Error implements the error interface
func (e *CatalogUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("recipe catalog unavailable: %s", e.Operation)
	}
	return fmt.Sprintf("recipe catalog unavailable: %s: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying cause
func (e *CatalogUnavailableError) Unwrap() error {
	return e.Err
}

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

// ExternalAPIError represents an error from an external API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// NewCatalogUnavailable wraps a catalog fault for the given operation
func NewCatalogUnavailable(operation string, err error) error {
	return &CatalogUnavailableError{Operation: operation, Err: err}
}

// IsCatalogUnavailable checks if an error is a CatalogUnavailableError
func IsCatalogUnavailable(err error) bool {
	var catalogErr *CatalogUnavailableError
	return errors.As(err, &catalogErr)
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

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Package error defines domain-specific errors for the Salon Manager application.
package error

import "errors"

// Service catalog domain errors.
var (
	// ErrServiceNotFound is returned when a catalog service is not found in the system.
	ErrServiceNotFound = errors.New("service not found")

	// ErrMissingServiceFields is returned when required service fields are missing.
	ErrMissingServiceFields = errors.New("service name and price are required")

	// ErrDuplicateServiceName is returned when a service with the same name already exists.
	ErrDuplicateServiceName = errors.New("a service with this name already exists")
)

// CatalogErrorCode defines error codes for service catalog errors.
// Format: SVC-XXYYYY where XX is category and YYYY is specific error.
type CatalogErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingServiceFields CatalogErrorCode = "SVC-010001"
	ErrCodeDuplicateServiceName CatalogErrorCode = "SVC-010002"
	ErrCodeServiceNotFound      CatalogErrorCode = "SVC-010003"
)

// CatalogError represents a service catalog error with code and message.
type CatalogError struct {
	Code    CatalogErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError creates a new CatalogError with the given code and message.
func NewCatalogError(code CatalogErrorCode, message string, err error) *CatalogError {
	return &CatalogError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

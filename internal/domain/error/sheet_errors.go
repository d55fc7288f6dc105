// Package error defines domain-specific errors for the Salon Manager application.
package error

import "errors"

// Technical sheet domain errors.
var (
	// ErrSheetNotFound is returned when a technical sheet is not found in the system.
	ErrSheetNotFound = errors.New("technical sheet not found")

	// ErrMissingSheetFields is returned when required sheet fields are missing.
	ErrMissingSheetFields = errors.New("client and formula are required")

	// ErrSheetClientNotFound is returned when the referenced client does not exist.
	ErrSheetClientNotFound = errors.New("client not found")
)

// SheetErrorCode defines error codes for technical sheet errors.
// Format: SHT-XXYYYY where XX is category and YYYY is specific error.
type SheetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingSheetFields SheetErrorCode = "SHT-010001"
	ErrCodeSheetNotFound      SheetErrorCode = "SHT-010002"
	ErrCodeSheetClientNotFound SheetErrorCode = "SHT-010003"
)

// SheetError represents a technical sheet error with code and message.
type SheetError struct {
	Code    SheetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SheetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError with the given code and message.
func NewSheetError(code SheetErrorCode, message string, err error) *SheetError {
	return &SheetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Package error defines domain-specific errors for the Salon Manager application.
package error

import "errors"

// Client domain errors.
var (
	// ErrClientNotFound is returned when a client is not found in the system.
	ErrClientNotFound = errors.New("client not found")

	// ErrMissingClientFullname is returned when the client fullname is missing.
	ErrMissingClientFullname = errors.New("client fullname is required")
)

// ClientErrorCode defines error codes for client errors.
// Format: CLI-XXYYYY where XX is category and YYYY is specific error.
type ClientErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingClientFullname ClientErrorCode = "CLI-010001"
	ErrCodeClientNotFound        ClientErrorCode = "CLI-010002"
)

// ClientError represents a client error with code and message.
type ClientError struct {
	Code    ClientErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ClientError) Unwrap() error {
	return e.Err
}

// NewClientError creates a new ClientError with the given code and message.
func NewClientError(code ClientErrorCode, message string, err error) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

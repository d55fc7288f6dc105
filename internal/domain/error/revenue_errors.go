// Package error defines domain-specific errors for the Salon Manager application.
package error

import "errors"

// Revenue report domain errors.
var (
	// ErrInvalidRevenuePeriod is returned when the requested period is not day, week, month or year.
	ErrInvalidRevenuePeriod = errors.New("invalid revenue period")

	// ErrInvalidRevenueDate is returned when the anchor date is malformed.
	ErrInvalidRevenueDate = errors.New("invalid revenue date")
)

// RevenueErrorCode defines error codes for revenue report errors.
// Format: RVN-XXYYYY where XX is category and YYYY is specific error.
type RevenueErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRevenuePeriod RevenueErrorCode = "RVN-010001"
	ErrCodeInvalidRevenueDate   RevenueErrorCode = "RVN-010002"
)

// RevenueError represents a revenue report error with code and message.
type RevenueError struct {
	Code    RevenueErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RevenueError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RevenueError) Unwrap() error {
	return e.Err
}

// NewRevenueError creates a new RevenueError with the given code and message.
func NewRevenueError(code RevenueErrorCode, message string, err error) *RevenueError {
	return &RevenueError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

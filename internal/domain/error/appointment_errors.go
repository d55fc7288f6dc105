// Package error defines domain-specific errors for the Salon Manager application.
package error

import "errors"

// Appointment domain errors.
var (
	// ErrAppointmentNotFound is returned when an appointment is not found in the system.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidAppointmentStatus is returned when the appointment status is not a known status.
	ErrInvalidAppointmentStatus = errors.New("invalid appointment status")

	// ErrMissingAppointmentFields is returned when required appointment fields are missing.
	ErrMissingAppointmentFields = errors.New("missing required appointment fields")

	// ErrInvalidAppointmentDate is returned when the appointment date or time is malformed.
	ErrInvalidAppointmentDate = errors.New("invalid appointment date or time")

	// ErrServiceNotFoundForAppointment is returned when the referenced catalog service does not exist.
	ErrServiceNotFoundForAppointment = errors.New("service not found")
)

// AppointmentErrorCode defines error codes for appointment errors.
// Format: APT-XXYYYY where XX is category and YYYY is specific error.
type AppointmentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAppointmentStatus AppointmentErrorCode = "APT-010001"
	ErrCodeMissingAppointmentFields AppointmentErrorCode = "APT-010002"
	ErrCodeInvalidAppointmentDate   AppointmentErrorCode = "APT-010003"
	ErrCodeAppointmentNotFound      AppointmentErrorCode = "APT-010004"
	ErrCodeAppointmentServiceNotFound AppointmentErrorCode = "APT-010005"
)

// AppointmentError represents an appointment error with code and message.
type AppointmentError struct {
	Code    AppointmentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppointmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppointmentError) Unwrap() error {
	return e.Err
}

// NewAppointmentError creates a new AppointmentError with the given code and message.
func NewAppointmentError(code AppointmentErrorCode, message string, err error) *AppointmentError {
	return &AppointmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

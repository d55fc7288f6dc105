// Package error defines domain-specific errors for the Salon Manager application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when trying to register with an existing email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidEmail is returned when the email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword is returned when the password does not meet requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidRole is returned when the requested role is not a known role.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidToken is returned when a token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrForbidden is returned when the authenticated user lacks the required role.
	ErrForbidden = errors.New("insufficient permissions")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEmail  AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword  AuthErrorCode = "AUTH-010002"
	ErrCodeMissingFields AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidRole   AuthErrorCode = "AUTH-010004"

	// Conflict errors (02XXXX)
	ErrCodeEmailExists AuthErrorCode = "AUTH-020001"

	// Authentication errors (03XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-030001"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-030002"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-030003"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-030004"

	// Authorization errors (04XXXX)
	ErrCodeForbidden AuthErrorCode = "AUTH-040001"

	// Rate limiting errors (05XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-050001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

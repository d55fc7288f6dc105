// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

// PasswordService defines the interface for password hashing operations.
type PasswordService interface {
	// HashPassword hashes a plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a hashed password.
	// Returns an error if they don't match.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength validates if a password meets minimum requirements.
	ValidatePasswordStrength(password string) error
}

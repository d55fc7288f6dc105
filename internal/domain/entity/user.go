// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the access level of a staff member.
type UserRole string

const (
	UserRoleAdmin        UserRole = "admin"
	UserRoleEmployee     UserRole = "employee"
	UserRoleReceptionist UserRole = "receptionist"
)

// IsValidUserRole reports whether the given role is a known role.
func IsValidUserRole(role UserRole) bool {
	switch role {
	case UserRoleAdmin, UserRoleEmployee, UserRoleReceptionist:
		return true
	}
	return false
}

// User represents a staff member account.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with the given role.
func NewUser(name, email, passwordHash string, role UserRole) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

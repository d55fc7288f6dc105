// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their ID.
	// Returns domainerror.ErrUserNotFound if no user exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by their email address.
	// Returns domainerror.ErrUserNotFound if no user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll retrieves all users ordered by creation date descending.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Update updates an existing user.
	Update(ctx context.Context, user *entity.User) error

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

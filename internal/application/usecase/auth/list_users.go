// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
)

// ListUsersOutput represents the output of listing staff accounts.
type ListUsersOutput struct {
	Users []*entity.User
}

// ListUsersUseCase lists all staff accounts. Access control (admin only) is
// enforced at the HTTP layer.
type ListUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewListUsersUseCase creates a new ListUsersUseCase instance.
func NewListUsersUseCase(userRepo adapter.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
	}
}

// Execute lists the users.
func (uc *ListUsersUseCase) Execute(ctx context.Context) (*ListUsersOutput, error) {
	users, err := uc.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &ListUsersOutput{Users: users}, nil
}

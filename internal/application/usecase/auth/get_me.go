// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// GetMeInput represents the input for fetching the authenticated user.
type GetMeInput struct {
	UserID uuid.UUID
}

// GetMeOutput represents the output of fetching the authenticated user.
type GetMeOutput struct {
	User *entity.User
}

// GetMeUseCase returns the profile of the authenticated user.
type GetMeUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetMeUseCase creates a new GetMeUseCase instance.
func NewGetMeUseCase(userRepo adapter.UserRepository) *GetMeUseCase {
	return &GetMeUseCase{
		userRepo: userRepo,
	}
}

// Execute fetches the user.
func (uc *GetMeUseCase) Execute(ctx context.Context, input GetMeInput) (*GetMeOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &GetMeOutput{User: user}, nil
}

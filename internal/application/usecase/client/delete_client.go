// Package client contains client-related use cases.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/application/adapter"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// DeleteClientInput represents the input for client deletion.
type DeleteClientInput struct {
	ClientID uuid.UUID
}

// DeleteClientUseCase handles client deletion logic.
type DeleteClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewDeleteClientUseCase creates a new DeleteClientUseCase instance.
func NewDeleteClientUseCase(clientRepo adapter.ClientRepository) *DeleteClientUseCase {
	return &DeleteClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client deletion.
func (uc *DeleteClientUseCase) Execute(ctx context.Context, input DeleteClientInput) error {
	if _, err := uc.clientRepo.FindByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return domainerror.NewClientError(
				domainerror.ErrCodeClientNotFound,
				"client not found",
				domainerror.ErrClientNotFound,
			)
		}
		return fmt.Errorf("failed to find client: %w", err)
	}

	if err := uc.clientRepo.Delete(ctx, input.ClientID); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	return nil
}

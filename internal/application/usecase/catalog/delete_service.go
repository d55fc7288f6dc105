// Package catalog contains service catalog use cases.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/application/adapter"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// DeleteServiceInput represents the input for service deletion.
type DeleteServiceInput struct {
	ServiceID uuid.UUID
}

// DeleteServiceUseCase handles service deletion logic.
type DeleteServiceUseCase struct {
	serviceRepo adapter.ServiceRepository
}

// NewDeleteServiceUseCase creates a new DeleteServiceUseCase instance.
func NewDeleteServiceUseCase(serviceRepo adapter.ServiceRepository) *DeleteServiceUseCase {
	return &DeleteServiceUseCase{
		serviceRepo: serviceRepo,
	}
}

// Execute performs the service deletion.
func (uc *DeleteServiceUseCase) Execute(ctx context.Context, input DeleteServiceInput) error {
	if _, err := uc.serviceRepo.FindByID(ctx, input.ServiceID); err != nil {
		if errors.Is(err, domainerror.ErrServiceNotFound) {
			return domainerror.NewCatalogError(
				domainerror.ErrCodeServiceNotFound,
				"service not found",
				domainerror.ErrServiceNotFound,
			)
		}
		return fmt.Errorf("failed to find service: %w", err)
	}

	if err := uc.serviceRepo.Delete(ctx, input.ServiceID); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}

	return nil
}

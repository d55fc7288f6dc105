// Package catalog contains service catalog use cases.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// UpdateServiceInput represents the input for service update.
// Nil fields are left unchanged.
type UpdateServiceInput struct {
	ServiceID uuid.UUID
	Name      *string
	Price     *decimal.Decimal
}

// UpdateServiceOutput represents the output of service update.
type UpdateServiceOutput struct {
	Service *entity.Service
}

// UpdateServiceUseCase handles service update logic. Existing appointments
// keep the price snapshotted at booking time.
type UpdateServiceUseCase struct {
	serviceRepo adapter.ServiceRepository
}

// NewUpdateServiceUseCase creates a new UpdateServiceUseCase instance.
func NewUpdateServiceUseCase(serviceRepo adapter.ServiceRepository) *UpdateServiceUseCase {
	return &UpdateServiceUseCase{
		serviceRepo: serviceRepo,
	}
}

// Execute performs the service update.
func (uc *UpdateServiceUseCase) Execute(ctx context.Context, input UpdateServiceInput) (*UpdateServiceOutput, error) {
	service, err := uc.serviceRepo.FindByID(ctx, input.ServiceID)
	if err != nil {
		if errors.Is(err, domainerror.ErrServiceNotFound) {
			return nil, domainerror.NewCatalogError(
				domainerror.ErrCodeServiceNotFound,
				"service not found",
				domainerror.ErrServiceNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find service: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewCatalogError(
				domainerror.ErrCodeMissingServiceFields,
				"name cannot be empty",
				domainerror.ErrMissingServiceFields,
			)
		}
		if name != service.Name {
			exists, err := uc.serviceRepo.ExistsByName(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("failed to check service name: %w", err)
			}
			if exists {
				return nil, domainerror.NewCatalogError(
					domainerror.ErrCodeDuplicateServiceName,
					"a service with this name already exists",
					domainerror.ErrDuplicateServiceName,
				)
			}
		}
		service.Name = name
	}

	if input.Price != nil {
		service.Price = *input.Price
	}

	service.UpdatedAt = time.Now().UTC()

	if err := uc.serviceRepo.Update(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	return &UpdateServiceOutput{Service: service}, nil
}

// Package catalog contains service catalog use cases.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// CreateServiceInput represents the input for service creation.
type CreateServiceInput struct {
	Name  string
	Price *decimal.Decimal
}

// CreateServiceOutput represents the output of service creation.
type CreateServiceOutput struct {
	Service *entity.Service
}

// CreateServiceUseCase handles service creation logic.
type CreateServiceUseCase struct {
	serviceRepo adapter.ServiceRepository
}

// NewCreateServiceUseCase creates a new CreateServiceUseCase instance.
func NewCreateServiceUseCase(serviceRepo adapter.ServiceRepository) *CreateServiceUseCase {
	return &CreateServiceUseCase{
		serviceRepo: serviceRepo,
	}
}

// Execute performs the service creation.
func (uc *CreateServiceUseCase) Execute(ctx context.Context, input CreateServiceInput) (*CreateServiceOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.Price == nil {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeMissingServiceFields,
			"name and price are required",
			domainerror.ErrMissingServiceFields,
		)
	}

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

	service := entity.NewService(name, *input.Price)

	if err := uc.serviceRepo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	return &CreateServiceOutput{Service: service}, nil
}

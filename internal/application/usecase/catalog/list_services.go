// Package catalog contains service catalog use cases.
package catalog

import (
	"context"
	"fmt"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
)

// ListServicesOutput represents the output of listing catalog services.
type ListServicesOutput struct {
	Services []*entity.Service
}

// ListServicesUseCase handles listing catalog services logic.
type ListServicesUseCase struct {
	serviceRepo adapter.ServiceRepository
}

// NewListServicesUseCase creates a new ListServicesUseCase instance.
func NewListServicesUseCase(serviceRepo adapter.ServiceRepository) *ListServicesUseCase {
	return &ListServicesUseCase{
		serviceRepo: serviceRepo,
	}
}

// Execute lists all catalog services.
func (uc *ListServicesUseCase) Execute(ctx context.Context) (*ListServicesOutput, error) {
	services, err := uc.serviceRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	return &ListServicesOutput{Services: services}, nil
}

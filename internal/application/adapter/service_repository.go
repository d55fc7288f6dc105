// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// ServiceRepository defines the interface for service catalog persistence operations.
type ServiceRepository interface {
	// Create creates a new catalog service.
	Create(ctx context.Context, service *entity.Service) error

	// FindByID retrieves a service by its ID.
	// Returns domainerror.ErrServiceNotFound if no service exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// FindAll retrieves all services ordered by name ascending.
	FindAll(ctx context.Context) ([]*entity.Service, error)

	// ExistsByName checks if a service with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Update updates an existing service.
	Update(ctx context.Context, service *entity.Service) error

	// Delete removes a service.
	Delete(ctx context.Context, id uuid.UUID) error
}

// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// ClientRepository defines the interface for client persistence operations.
type ClientRepository interface {
	// Create creates a new client.
	Create(ctx context.Context, client *entity.Client) error

	// FindByID retrieves a client by its ID.
	// Returns domainerror.ErrClientNotFound if no client exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// FindByIDs retrieves the clients matching the given IDs. Missing IDs are
	// silently skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Client, error)

	// FindAll retrieves all clients ordered by fullname ascending.
	FindAll(ctx context.Context) ([]*entity.Client, error)

	// Delete removes a client.
	Delete(ctx context.Context, id uuid.UUID) error
}

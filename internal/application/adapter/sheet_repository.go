// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// SheetRepository defines the interface for technical sheet persistence operations.
type SheetRepository interface {
	// Create creates a new technical sheet.
	Create(ctx context.Context, sheet *entity.TechnicalSheet) error

	// FindByID retrieves a technical sheet by its ID.
	// Returns domainerror.ErrSheetNotFound if no sheet exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TechnicalSheet, error)

	// FindByClientID retrieves all technical sheets for a client ordered by
	// date descending.
	FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*entity.TechnicalSheet, error)

	// Delete removes a technical sheet.
	Delete(ctx context.Context, id uuid.UUID) error
}

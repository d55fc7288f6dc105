// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
	"github.com/salon-manager/backend/internal/integration/persistence/model"
)

// clientRepository implements the adapter.ClientRepository interface.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository instance.
func NewClientRepository(db *gorm.DB) adapter.ClientRepository {
	return &clientRepository{
		db: db,
	}
}

// Create creates a new client in the database.
func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientModel := model.ClientFromEntity(client)
	result := r.db.WithContext(ctx).Create(clientModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a client by its ID.
func (r *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var clientModel model.ClientModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&clientModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrClientNotFound
		}
		return nil, result.Error
	}
	return clientModel.ToEntity(), nil
}

// FindByIDs retrieves the clients matching the given IDs. Missing IDs are
// silently skipped.
func (r *clientRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Client, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var clientModels []model.ClientModel
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&clientModels)
	if result.Error != nil {
		return nil, result.Error
	}

	clients := make([]*entity.Client, len(clientModels))
	for i, m := range clientModels {
		clients[i] = m.ToEntity()
	}
	return clients, nil
}

// FindAll retrieves all clients ordered by name.
func (r *clientRepository) FindAll(ctx context.Context) ([]*entity.Client, error) {
	var clientModels []model.ClientModel
	result := r.db.WithContext(ctx).Order("fullname ASC").Find(&clientModels)
	if result.Error != nil {
		return nil, result.Error
	}

	clients := make([]*entity.Client, len(clientModels))
	for i, m := range clientModels {
		clients[i] = m.ToEntity()
	}
	return clients, nil
}

// Delete removes a client from the database. Technical sheets cascade and
// appointments keep the denormalized client name.
func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ClientModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrClientNotFound
	}
	return nil
}

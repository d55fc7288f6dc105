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

// sheetRepository implements the adapter.SheetRepository interface.
type sheetRepository struct {
	db *gorm.DB
}

// NewSheetRepository creates a new technical sheet repository instance.
func NewSheetRepository(db *gorm.DB) adapter.SheetRepository {
	return &sheetRepository{
		db: db,
	}
}

// Create creates a new technical sheet in the database.
func (r *sheetRepository) Create(ctx context.Context, sheet *entity.TechnicalSheet) error {
	sheetModel := model.TechnicalSheetFromEntity(sheet)
	result := r.db.WithContext(ctx).Create(sheetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a technical sheet by its ID.
func (r *sheetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TechnicalSheet, error) {
	var sheetModel model.TechnicalSheetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&sheetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSheetNotFound
		}
		return nil, result.Error
	}
	return sheetModel.ToEntity(), nil
}

// FindByClientID retrieves a client's technical sheets, most recent first.
func (r *sheetRepository) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*entity.TechnicalSheet, error) {
	var sheetModels []model.TechnicalSheetModel
	result := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date_string DESC, created_at DESC").
		Find(&sheetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sheets := make([]*entity.TechnicalSheet, len(sheetModels))
	for i, m := range sheetModels {
		sheets[i] = m.ToEntity()
	}
	return sheets, nil
}

// Delete removes a technical sheet from the database.
func (r *sheetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TechnicalSheetModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSheetNotFound
	}
	return nil
}

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

// serviceRepository implements the adapter.ServiceRepository interface.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository instance.
func NewServiceRepository(db *gorm.DB) adapter.ServiceRepository {
	return &serviceRepository{
		db: db,
	}
}

// Create creates a new catalog service in the database.
func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	serviceModel := model.ServiceFromEntity(service)
	result := r.db.WithContext(ctx).Create(serviceModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a catalog service by its ID.
func (r *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var serviceModel model.ServiceModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&serviceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrServiceNotFound
		}
		return nil, result.Error
	}
	return serviceModel.ToEntity(), nil
}

// FindAll retrieves all catalog services ordered by name.
func (r *serviceRepository) FindAll(ctx context.Context) ([]*entity.Service, error) {
	var serviceModels []model.ServiceModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&serviceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	services := make([]*entity.Service, len(serviceModels))
	for i, m := range serviceModels {
		services[i] = m.ToEntity()
	}
	return services, nil
}

// ExistsByName checks whether a catalog service with the given name exists.
func (r *serviceRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing catalog service in the database.
func (r *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	serviceModel := model.ServiceFromEntity(service)
	result := r.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ?", service.ID).
		Select("*").
		Omit("created_at").
		Updates(serviceModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrServiceNotFound
	}
	return nil
}

// Delete removes a catalog service from the database. Appointments keep
// their snapshotted service name and price.
func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ServiceModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrServiceNotFound
	}
	return nil
}

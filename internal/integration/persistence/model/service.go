// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// ServiceModel represents the services catalog table in the database.
type ServiceModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ServiceModel.
func (ServiceModel) TableName() string {
	return "services"
}

// ToEntity converts a ServiceModel to a domain Service entity.
func (m *ServiceModel) ToEntity() *entity.Service {
	return &entity.Service{
		ID:        m.ID,
		Name:      m.Name,
		Price:     m.Price,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ServiceFromEntity creates a ServiceModel from a domain Service entity.
func ServiceFromEntity(service *entity.Service) *ServiceModel {
	return &ServiceModel{
		ID:        service.ID,
		Name:      service.Name,
		Price:     service.Price,
		CreatedAt: service.CreatedAt,
		UpdatedAt: service.UpdatedAt,
	}
}

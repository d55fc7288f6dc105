// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// ClientModel represents the clients table in the database.
type ClientModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Fullname  string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(50)"`
	Allergies string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ClientModel.
func (ClientModel) TableName() string {
	return "clients"
}

// ToEntity converts a ClientModel to a domain Client entity.
func (m *ClientModel) ToEntity() *entity.Client {
	return &entity.Client{
		ID:        m.ID,
		Fullname:  m.Fullname,
		Phone:     m.Phone,
		Allergies: m.Allergies,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ClientFromEntity creates a ClientModel from a domain Client entity.
func ClientFromEntity(client *entity.Client) *ClientModel {
	return &ClientModel{
		ID:        client.ID,
		Fullname:  client.Fullname,
		Phone:     client.Phone,
		Allergies: client.Allergies,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
}

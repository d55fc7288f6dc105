// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// TechnicalSheetModel represents the technical_sheets table in the database.
type TechnicalSheetModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	DateString  string          `gorm:"type:varchar(10);not null;column:date_string"`
	Service     string          `gorm:"type:varchar(255)"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Formula     string          `gorm:"type:text;not null"`
	Notes       string          `gorm:"type:text"`
	PhotoBefore string          `gorm:"type:varchar(500)"`
	PhotoAfter  string          `gorm:"type:varchar(500)"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Client *ClientModel `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the TechnicalSheetModel.
func (TechnicalSheetModel) TableName() string {
	return "technical_sheets"
}

// ToEntity converts a TechnicalSheetModel to a domain TechnicalSheet entity.
func (m *TechnicalSheetModel) ToEntity() *entity.TechnicalSheet {
	return &entity.TechnicalSheet{
		ID:          m.ID,
		ClientID:    m.ClientID,
		DateString:  m.DateString,
		Service:     m.Service,
		Price:       m.Price,
		Formula:     m.Formula,
		Notes:       m.Notes,
		PhotoBefore: m.PhotoBefore,
		PhotoAfter:  m.PhotoAfter,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TechnicalSheetFromEntity creates a TechnicalSheetModel from a domain TechnicalSheet entity.
func TechnicalSheetFromEntity(sheet *entity.TechnicalSheet) *TechnicalSheetModel {
	return &TechnicalSheetModel{
		ID:          sheet.ID,
		ClientID:    sheet.ClientID,
		DateString:  sheet.DateString,
		Service:     sheet.Service,
		Price:       sheet.Price,
		Formula:     sheet.Formula,
		Notes:       sheet.Notes,
		PhotoBefore: sheet.PhotoBefore,
		PhotoAfter:  sheet.PhotoAfter,
		CreatedAt:   sheet.CreatedAt,
		UpdatedAt:   sheet.UpdatedAt,
	}
}

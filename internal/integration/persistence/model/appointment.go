// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// AppointmentModel represents the appointments table in the database.
// Dates and times are stored as strings so that lexicographic ordering
// matches chronological ordering in SQL.
type AppointmentModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DateString  string          `gorm:"type:varchar(10);not null;index;column:date_string"`
	Time        string          `gorm:"type:varchar(5);not null"`
	ClientName  string          `gorm:"type:varchar(255);not null"`
	ClientID    *uuid.UUID      `gorm:"type:uuid;index"`
	Service     string          `gorm:"type:varchar(255);not null"`
	ServiceID   *uuid.UUID      `gorm:"type:uuid"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status      string          `gorm:"type:varchar(10);not null;index;default:'pending'"`
	CompletedAt *time.Time
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Client *ClientModel `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for the AppointmentModel.
func (AppointmentModel) TableName() string {
	return "appointments"
}

// ToEntity converts an AppointmentModel to a domain Appointment entity.
func (m *AppointmentModel) ToEntity() *entity.Appointment {
	return &entity.Appointment{
		ID:          m.ID,
		DateString:  m.DateString,
		Time:        m.Time,
		ClientName:  m.ClientName,
		ClientID:    m.ClientID,
		Service:     m.Service,
		ServiceID:   m.ServiceID,
		Price:       m.Price,
		Status:      entity.AppointmentStatus(m.Status),
		CompletedAt: m.CompletedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// AppointmentFromEntity creates an AppointmentModel from a domain Appointment entity.
func AppointmentFromEntity(appointment *entity.Appointment) *AppointmentModel {
	return &AppointmentModel{
		ID:          appointment.ID,
		DateString:  appointment.DateString,
		Time:        appointment.Time,
		ClientName:  appointment.ClientName,
		ClientID:    appointment.ClientID,
		Service:     appointment.Service,
		ServiceID:   appointment.ServiceID,
		Price:       appointment.Price,
		Status:      string(appointment.Status),
		CompletedAt: appointment.CompletedAt,
		CreatedAt:   appointment.CreatedAt,
		UpdatedAt:   appointment.UpdatedAt,
	}
}

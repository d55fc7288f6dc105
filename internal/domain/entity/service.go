// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service represents an entry in the salon's service catalog.
// Appointments snapshot the service name and price at booking time, so
// later catalog edits never rewrite history.
type Service struct {
	ID        uuid.UUID
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewService creates a new catalog Service.
func NewService(name string, price decimal.Decimal) *Service {
	now := time.Now().UTC()
	return &Service{
		ID:        uuid.New(),
		Name:      name,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TechnicalSheet records the technical details of a treatment performed on a
// client (color formula, observations, before/after photos).
type TechnicalSheet struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	DateString  string
	Service     string
	Price       decimal.Decimal
	Formula     string
	Notes       string
	PhotoBefore string
	PhotoAfter  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTechnicalSheet creates a new TechnicalSheet for a client.
func NewTechnicalSheet(clientID uuid.UUID, dateString, service string, price decimal.Decimal, formula, notes, photoBefore, photoAfter string) *TechnicalSheet {
	now := time.Now().UTC()
	return &TechnicalSheet{
		ID:          uuid.New(),
		ClientID:    clientID,
		DateString:  dateString,
		Service:     service,
		Price:       price,
		Formula:     formula,
		Notes:       notes,
		PhotoBefore: photoBefore,
		PhotoAfter:  photoAfter,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// CreateSheetRequest represents the request body for technical sheet creation.
type CreateSheetRequest struct {
	ClientID    string   `json:"clientId" binding:"required"`
	Date        string   `json:"date"`
	Service     string   `json:"service"`
	Price       *float64 `json:"price"`
	Formula     string   `json:"formula" binding:"required"`
	Notes       string   `json:"notes"`
	PhotoBefore string   `json:"photoBefore"`
	PhotoAfter  string   `json:"photoAfter"`
}

// SheetResponse represents a technical sheet in API responses.
type SheetResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"clientId"`
	Date        string    `json:"date"`
	Service     string    `json:"service"`
	Price       float64   `json:"price"`
	Formula     string    `json:"formula"`
	Notes       string    `json:"notes"`
	PhotoBefore string    `json:"photoBefore"`
	PhotoAfter  string    `json:"photoAfter"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SheetListResponse represents the response for listing technical sheets.
type SheetListResponse struct {
	Sheets []SheetResponse `json:"sheets"`
}

// ToSheetResponse converts a domain TechnicalSheet entity to a SheetResponse DTO.
func ToSheetResponse(sheet *entity.TechnicalSheet) SheetResponse {
	return SheetResponse{
		ID:          sheet.ID.String(),
		ClientID:    sheet.ClientID.String(),
		Date:        sheet.DateString,
		Service:     sheet.Service,
		Price:       sheet.Price.InexactFloat64(),
		Formula:     sheet.Formula,
		Notes:       sheet.Notes,
		PhotoBefore: sheet.PhotoBefore,
		PhotoAfter:  sheet.PhotoAfter,
		CreatedAt:   sheet.CreatedAt,
		UpdatedAt:   sheet.UpdatedAt,
	}
}

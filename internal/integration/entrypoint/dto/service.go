// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// CreateServiceRequest represents the request body for catalog service creation.
type CreateServiceRequest struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
}

// UpdateServiceRequest represents the request body for catalog service update.
// Omitted fields are left unchanged.
type UpdateServiceRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

// ServiceResponse represents a catalog service in API responses.
type ServiceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ServiceListResponse represents the response for listing catalog services.
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// ToServiceResponse converts a domain Service entity to a ServiceResponse DTO.
func ToServiceResponse(service *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:        service.ID.String(),
		Name:      service.Name,
		Price:     service.Price.InexactFloat64(),
		CreatedAt: service.CreatedAt,
		UpdatedAt: service.UpdatedAt,
	}
}

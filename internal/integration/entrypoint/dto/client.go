// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// CreateClientRequest represents the request body for client creation.
type CreateClientRequest struct {
	Fullname  string `json:"fullname" binding:"required"`
	Phone     string `json:"phone"`
	Allergies string `json:"allergies"`
}

// ClientResponse represents a client in API responses.
type ClientResponse struct {
	ID        string    `json:"id"`
	Fullname  string    `json:"fullname"`
	Phone     string    `json:"phone"`
	Allergies string    `json:"allergies"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClientListResponse represents the response for listing clients.
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToClientResponse converts a domain Client entity to a ClientResponse DTO.
func ToClientResponse(client *entity.Client) ClientResponse {
	return ClientResponse{
		ID:        client.ID.String(),
		Fullname:  client.Fullname,
		Phone:     client.Phone,
		Allergies: client.Allergies,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
}

// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/salon-manager/backend/internal/application/usecase/appointment"
)

// CreateAppointmentRequest represents the request body for appointment creation.
type CreateAppointmentRequest struct {
	Date       string   `json:"date" binding:"required"`
	Time       string   `json:"time" binding:"required"`
	ClientName string   `json:"clientName" binding:"required"`
	ClientID   *string  `json:"clientId"`
	Service    string   `json:"service"`
	ServiceID  *string  `json:"serviceId"`
	Price      *float64 `json:"price"`
}

// UpdateAppointmentRequest represents the request body for appointment update.
// Omitted fields are left unchanged.
type UpdateAppointmentRequest struct {
	Date       *string  `json:"date"`
	Time       *string  `json:"time"`
	ClientName *string  `json:"clientName"`
	ClientID   *string  `json:"clientId"`
	Service    *string  `json:"service"`
	ServiceID  *string  `json:"serviceId"`
	Price      *float64 `json:"price"`
}

// SetAppointmentStatusRequest represents the request body for a status change.
type SetAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AppointmentResponse represents an appointment in API responses.
type AppointmentResponse struct {
	ID          string     `json:"id"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	ClientName  string     `json:"clientName"`
	ClientID    *string    `json:"clientId"`
	Service     string     `json:"service"`
	ServiceID   *string    `json:"serviceId"`
	Price       float64    `json:"price"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// AppointmentListResponse represents the response for listing appointments.
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// AppointmentStatusResponse represents the response for a status change.
type AppointmentStatusResponse struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt"`
}

// ToAppointmentResponse converts an appointment use case output to a response DTO.
func ToAppointmentResponse(output *appointment.AppointmentOutput) AppointmentResponse {
	var clientID *string
	if output.ClientID != nil {
		id := output.ClientID.String()
		clientID = &id
	}
	var serviceID *string
	if output.ServiceID != nil {
		id := output.ServiceID.String()
		serviceID = &id
	}

	return AppointmentResponse{
		ID:          output.ID.String(),
		Date:        output.DateString,
		Time:        output.Time,
		ClientName:  output.ClientName,
		ClientID:    clientID,
		Service:     output.Service,
		ServiceID:   serviceID,
		Price:       output.Price.InexactFloat64(),
		Status:      string(output.Status),
		CompletedAt: output.CompletedAt,
		CreatedAt:   output.CreatedAt,
		UpdatedAt:   output.UpdatedAt,
	}
}

// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/salon-manager/backend/internal/application/usecase/agenda"
)

// AgendaAppointmentResponse represents one appointment on the daily agenda.
type AgendaAppointmentResponse struct {
	ID          string     `json:"id"`
	Time        string     `json:"time"`
	ClientName  string     `json:"clientName"`
	ClientPhone *string    `json:"clientPhone"`
	ClientID    *string    `json:"clientId"`
	Service     string     `json:"service"`
	Price       float64    `json:"price"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt"`
	IsPast      bool       `json:"isPast"`
	IsCurrent   bool       `json:"isCurrent"`
}

// AgendaResponse represents the assembled daily agenda.
type AgendaResponse struct {
	Date              string                      `json:"date"`
	Appointments      []AgendaAppointmentResponse `json:"appointments"`
	TotalAppointments int                         `json:"totalAppointments"`
	PendingCount      int                         `json:"pendingCount"`
	CompletedCount    int                         `json:"completedCount"`
	AbsentCount       int                         `json:"absentCount"`
	CancelledCount    int                         `json:"cancelledCount"`
	TotalRevenue      float64                     `json:"totalRevenue"`
}

// ToAgendaResponse converts an agenda use case output to a response DTO.
func ToAgendaResponse(output *agenda.GetAgendaOutput) AgendaResponse {
	appointments := make([]AgendaAppointmentResponse, len(output.Appointments))
	for i, item := range output.Appointments {
		var clientID *string
		if item.ClientID != nil {
			id := item.ClientID.String()
			clientID = &id
		}
		var clientPhone *string
		if item.ClientPhone != "" {
			phone := item.ClientPhone
			clientPhone = &phone
		}

		appointments[i] = AgendaAppointmentResponse{
			ID:          item.ID.String(),
			Time:        item.Time,
			ClientName:  item.ClientName,
			ClientPhone: clientPhone,
			ClientID:    clientID,
			Service:     item.Service,
			Price:       item.Price.InexactFloat64(),
			Status:      string(item.Status),
			CompletedAt: item.CompletedAt,
			IsPast:      item.IsPast,
			IsCurrent:   item.IsCurrent,
		}
	}

	return AgendaResponse{
		Date:              output.Date,
		Appointments:      appointments,
		TotalAppointments: output.TotalAppointments,
		PendingCount:      output.PendingCount,
		CompletedCount:    output.CompletedCount,
		AbsentCount:       output.AbsentCount,
		CancelledCount:    output.CancelledCount,
		TotalRevenue:      output.TotalRevenue.InexactFloat64(),
	}
}

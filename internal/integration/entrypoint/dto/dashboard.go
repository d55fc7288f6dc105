// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/salon-manager/backend/internal/application/usecase/dashboard"
)

// NextAppointmentResponse represents the next upcoming appointment.
type NextAppointmentResponse struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	ClientName string  `json:"clientName"`
	Service    string  `json:"service"`
	Price      float64 `json:"price"`
}

// DashboardSummaryResponse represents the dashboard summary.
type DashboardSummaryResponse struct {
	NextAppointment *NextAppointmentResponse `json:"nextAppointment"`
	TodayCount      int                      `json:"todayCount"`
	TodayIncome     float64                  `json:"todayIncome"`
}

// ToDashboardSummaryResponse converts a dashboard use case output to a response DTO.
func ToDashboardSummaryResponse(output *dashboard.GetSummaryOutput) DashboardSummaryResponse {
	var next *NextAppointmentResponse
	if output.NextAppointment != nil {
		next = &NextAppointmentResponse{
			ID:         output.NextAppointment.ID.String(),
			Date:       output.NextAppointment.DateString,
			Time:       output.NextAppointment.Time,
			ClientName: output.NextAppointment.ClientName,
			Service:    output.NextAppointment.Service,
			Price:      output.NextAppointment.Price.InexactFloat64(),
		}
	}

	return DashboardSummaryResponse{
		NextAppointment: next,
		TodayCount:      output.TodayCount,
		TodayIncome:     output.TodayIncome.InexactFloat64(),
	}
}

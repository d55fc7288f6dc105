// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/salon-manager/backend/internal/application/usecase/revenue"
)

// ReportAppointmentResponse represents one appointment in a revenue report.
type ReportAppointmentResponse struct {
	ID          string     `json:"id"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	ClientName  string     `json:"clientName"`
	Service     string     `json:"service"`
	Price       float64    `json:"price"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt"`
}

// RevenueInsightsResponse represents the aggregated insights of a revenue report.
type RevenueInsightsResponse struct {
	AveragePerAppointment int64   `json:"averagePerAppointment"`
	TopService            *string `json:"topService"`
	TopServiceCount       int     `json:"topServiceCount"`
}

// RevenueStatsResponse represents a revenue report for a period.
type RevenueStatsResponse struct {
	Period           string                      `json:"period"`
	StartDate        string                      `json:"startDate"`
	EndDate          string                      `json:"endDate"`
	TotalIncome      float64                     `json:"totalIncome"`
	AppointmentCount int                         `json:"appointmentCount"`
	Appointments     []ReportAppointmentResponse `json:"appointments"`
	Insights         RevenueInsightsResponse     `json:"insights"`
}

// ToRevenueStatsResponse converts a revenue use case output to a response DTO.
func ToRevenueStatsResponse(output *revenue.GetStatsOutput) RevenueStatsResponse {
	appointments := make([]ReportAppointmentResponse, len(output.Appointments))
	for i, item := range output.Appointments {
		appointments[i] = ReportAppointmentResponse{
			ID:          item.ID.String(),
			Date:        item.DateString,
			Time:        item.Time,
			ClientName:  item.ClientName,
			Service:     item.Service,
			Price:       item.Price.InexactFloat64(),
			Status:      string(item.Status),
			CompletedAt: item.CompletedAt,
		}
	}

	return RevenueStatsResponse{
		Period:           string(output.Period),
		StartDate:        output.StartDate,
		EndDate:          output.EndDate,
		TotalIncome:      output.TotalIncome.InexactFloat64(),
		AppointmentCount: output.AppointmentCount,
		Appointments:     appointments,
		Insights: RevenueInsightsResponse{
			AveragePerAppointment: output.Insights.AveragePerAppointment,
			TopService:            output.Insights.TopService,
			TopServiceCount:       output.Insights.TopServiceCount,
		},
	}
}

// Package revenue contains the revenue report use cases.
package revenue

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// noServiceLabel groups appointments booked without a service name.
const noServiceLabel = "Sin servicio"

// GetStatsInput represents the input for the revenue report.
type GetStatsInput struct {
	Period Period
	// Date is the anchor civil date ("YYYY-MM-DD"). Empty means today.
	Date string
}

// ReportAppointment represents a single appointment in the report.
type ReportAppointment struct {
	ID          uuid.UUID
	DateString  string
	Time        string
	ClientName  string
	Service     string
	Price       decimal.Decimal
	Status      entity.AppointmentStatus
	CompletedAt *time.Time
}

// Insights holds derived statistics over the reported appointments.
type Insights struct {
	AveragePerAppointment int64
	// TopService is nil when the report is empty.
	TopService      *string
	TopServiceCount int
}

// GetStatsOutput represents the revenue report.
type GetStatsOutput struct {
	Period           Period
	StartDate        string
	EndDate          string
	TotalIncome      decimal.Decimal
	AppointmentCount int
	Appointments     []*ReportAppointment
	Insights         Insights
}

// GetStatsUseCase builds the revenue report for a period.
//
// The report totals every appointment in the range regardless of status:
// unlike the agenda, it measures booked value, not collected value.
type GetStatsUseCase struct {
	appointmentRepo adapter.AppointmentRepository
	clock           adapter.Clock
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(appointmentRepo adapter.AppointmentRepository, clock adapter.Clock) *GetStatsUseCase {
	return &GetStatsUseCase{
		appointmentRepo: appointmentRepo,
		clock:           clock,
	}
}

// Execute builds the report.
func (uc *GetStatsUseCase) Execute(ctx context.Context, input GetStatsInput) (*GetStatsOutput, error) {
	period := input.Period
	if period == "" {
		period = PeriodDay
	}
	if !IsValidPeriod(period) {
		return nil, domainerror.NewRevenueError(
			domainerror.ErrCodeInvalidRevenuePeriod,
			"period must be one of 'day', 'week', 'month' or 'year'",
			domainerror.ErrInvalidRevenuePeriod,
		)
	}

	anchor := uc.clock.Now()
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return nil, domainerror.NewRevenueError(
				domainerror.ErrCodeInvalidRevenueDate,
				"date must be in YYYY-MM-DD format",
				domainerror.ErrInvalidRevenueDate,
			)
		}
		anchor = parsed
	}

	startDate, endDate := DateRangeFor(period, anchor)

	appointments, err := uc.appointmentRepo.FindByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report appointments: %w", err)
	}

	output := &GetStatsOutput{
		Period:           period,
		StartDate:        startDate,
		EndDate:          endDate,
		TotalIncome:      decimal.Zero,
		AppointmentCount: len(appointments),
		Appointments:     make([]*ReportAppointment, 0, len(appointments)),
	}

	for _, apt := range appointments {
		output.TotalIncome = output.TotalIncome.Add(apt.Price)
		output.Appointments = append(output.Appointments, &ReportAppointment{
			ID:          apt.ID,
			DateString:  apt.DateString,
			Time:        apt.Time,
			ClientName:  apt.ClientName,
			Service:     apt.Service,
			Price:       apt.Price,
			Status:      apt.Status,
			CompletedAt: apt.CompletedAt,
		})
	}

	output.Insights = calculateInsights(appointments, output.TotalIncome)

	return output, nil
}

// calculateInsights derives the average ticket and the most requested service.
// Ties on the service count keep the first service encountered in range order.
func calculateInsights(appointments []*entity.Appointment, totalIncome decimal.Decimal) Insights {
	if len(appointments) == 0 {
		return Insights{}
	}

	average := totalIncome.
		Div(decimal.NewFromInt(int64(len(appointments)))).
		Round(0).
		IntPart()

	counts := make(map[string]int)
	var order []string
	for _, apt := range appointments {
		name := apt.Service
		if name == "" {
			name = noServiceLabel
		}
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	var topService string
	topCount := 0
	for _, name := range order {
		if counts[name] > topCount {
			topService = name
			topCount = counts[name]
		}
	}

	return Insights{
		AveragePerAppointment: average,
		TopService:            &topService,
		TopServiceCount:       topCount,
	}
}

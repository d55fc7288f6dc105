// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/application/adapter"
)

// NextAppointmentOutput represents the next upcoming appointment.
type NextAppointmentOutput struct {
	ID         uuid.UUID
	DateString string
	Time       string
	ClientName string
	Service    string
	Price      decimal.Decimal
}

// GetSummaryOutput represents the home dashboard summary.
type GetSummaryOutput struct {
	// NextAppointment is nil when nothing pending lies ahead.
	NextAppointment *NextAppointmentOutput
	TodayCount      int
	TodayIncome     decimal.Decimal
}

// GetSummaryUseCase assembles the home dashboard summary.
type GetSummaryUseCase struct {
	dashboardRepo Repository
	clock         adapter.Clock
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(dashboardRepo Repository, clock adapter.Clock) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		dashboardRepo: dashboardRepo,
		clock:         clock,
	}
}

// Execute assembles the summary. The next appointment is the first pending
// one scheduled now or later; an appointment at the current minute still
// counts as upcoming. Today's stats cover completed appointments only.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	now := uc.clock.Now()
	today := now.Format("2006-01-02")
	currentTime := now.Format("15:04")

	next, err := uc.dashboardRepo.FindNextPending(ctx, today, currentTime)
	if err != nil {
		return nil, fmt.Errorf("failed to find next appointment: %w", err)
	}

	todayCount, todayIncome, err := uc.dashboardRepo.CompletedStatsForDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to compute today stats: %w", err)
	}

	output := &GetSummaryOutput{
		TodayCount:  todayCount,
		TodayIncome: todayIncome,
	}
	if next != nil {
		output.NextAppointment = &NextAppointmentOutput{
			ID:         next.ID,
			DateString: next.DateString,
			Time:       next.Time,
			ClientName: next.ClientName,
			Service:    next.Service,
			Price:      next.Price,
		}
	}

	return output, nil
}

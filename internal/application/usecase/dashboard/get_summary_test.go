package dashboard

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// fakeDashboardRepo implements Repository over an in-memory appointment list.
type fakeDashboardRepo struct {
	appointments []*entity.Appointment
}

func (r *fakeDashboardRepo) FindNextPending(_ context.Context, dateString, timeString string) (*entity.Appointment, error) {
	var candidates []*entity.Appointment
	for _, apt := range r.appointments {
		if apt.Status != entity.AppointmentStatusPending {
			continue
		}
		if apt.DateString > dateString || (apt.DateString == dateString && apt.Time >= timeString) {
			candidates = append(candidates, apt)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].DateString != candidates[j].DateString {
			return candidates[i].DateString < candidates[j].DateString
		}
		return candidates[i].Time < candidates[j].Time
	})
	return candidates[0], nil
}

func (r *fakeDashboardRepo) CompletedStatsForDate(_ context.Context, dateString string) (int, decimal.Decimal, error) {
	count := 0
	income := decimal.Zero
	for _, apt := range r.appointments {
		if apt.DateString == dateString && apt.Status == entity.AppointmentStatusCompleted {
			count++
			income = income.Add(apt.Price)
		}
	}
	return count, income, nil
}

// fixedClock always returns the same instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newAppointment(date, timeOfDay string, status entity.AppointmentStatus, price int64) *entity.Appointment {
	apt := entity.NewAppointment(date, timeOfDay, "Ana", "Corte", decimal.NewFromInt(price), nil, nil)
	apt.Status = status
	return apt
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{now: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}

	t.Run("picks the earliest pending appointment at or after now", func(t *testing.T) {
		repo := &fakeDashboardRepo{appointments: []*entity.Appointment{
			newAppointment("2024-01-01", "09:00", entity.AppointmentStatusPending, 0),
			newAppointment("2024-01-01", "14:00", entity.AppointmentStatusPending, 0),
			newAppointment("2024-01-02", "08:00", entity.AppointmentStatusPending, 0),
		}}
		uc := NewGetSummaryUseCase(repo, clock)

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.NextAppointment == nil {
			t.Fatal("expected a next appointment")
		}
		if output.NextAppointment.DateString != "2024-01-01" || output.NextAppointment.Time != "14:00" {
			t.Errorf("expected next appointment at 2024-01-01 14:00, got %s %s",
				output.NextAppointment.DateString, output.NextAppointment.Time)
		}
	})

	t.Run("an appointment at the current minute is still upcoming", func(t *testing.T) {
		repo := &fakeDashboardRepo{appointments: []*entity.Appointment{
			newAppointment("2024-01-01", "10:00", entity.AppointmentStatusPending, 0),
		}}
		uc := NewGetSummaryUseCase(repo, clock)

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.NextAppointment == nil || output.NextAppointment.Time != "10:00" {
			t.Error("expected the 10:00 appointment to be next at 10:00")
		}
	})

	t.Run("ignores non-pending appointments for the next slot", func(t *testing.T) {
		repo := &fakeDashboardRepo{appointments: []*entity.Appointment{
			newAppointment("2024-01-01", "11:00", entity.AppointmentStatusCancelled, 0),
			newAppointment("2024-01-01", "15:00", entity.AppointmentStatusPending, 0),
		}}
		uc := NewGetSummaryUseCase(repo, clock)

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.NextAppointment == nil || output.NextAppointment.Time != "15:00" {
			t.Error("expected the pending 15:00 appointment to be next")
		}
	})

	t.Run("returns nil next appointment when nothing lies ahead", func(t *testing.T) {
		repo := &fakeDashboardRepo{appointments: []*entity.Appointment{
			newAppointment("2024-01-01", "08:00", entity.AppointmentStatusPending, 0),
		}}
		uc := NewGetSummaryUseCase(repo, clock)

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.NextAppointment != nil {
			t.Errorf("expected no next appointment, got %+v", output.NextAppointment)
		}
	})

	t.Run("today stats cover completed appointments only", func(t *testing.T) {
		repo := &fakeDashboardRepo{appointments: []*entity.Appointment{
			newAppointment("2024-01-01", "08:00", entity.AppointmentStatusCompleted, 5000),
			newAppointment("2024-01-01", "09:00", entity.AppointmentStatusCompleted, 3000),
			newAppointment("2024-01-01", "11:00", entity.AppointmentStatusPending, 9000),
			newAppointment("2023-12-31", "11:00", entity.AppointmentStatusCompleted, 7000),
		}}
		uc := NewGetSummaryUseCase(repo, clock)

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.TodayCount != 2 {
			t.Errorf("expected today count 2, got %d", output.TodayCount)
		}
		if !output.TodayIncome.Equal(decimal.NewFromInt(8000)) {
			t.Errorf("expected today income 8000, got %s", output.TodayIncome)
		}
	})
}

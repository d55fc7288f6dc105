package revenue

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// fakeAppointmentRepo is an in-memory AppointmentRepository for unit tests.
type fakeAppointmentRepo struct {
	appointments []*entity.Appointment
}

func (r *fakeAppointmentRepo) Create(_ context.Context, apt *entity.Appointment) error {
	r.appointments = append(r.appointments, apt)
	return nil
}

func (r *fakeAppointmentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Appointment, error) {
	for _, apt := range r.appointments {
		if apt.ID == id {
			return apt, nil
		}
	}
	return nil, domainerror.ErrAppointmentNotFound
}

func (r *fakeAppointmentRepo) FindAll(_ context.Context) ([]*entity.Appointment, error) {
	return r.appointments, nil
}

func (r *fakeAppointmentRepo) FindByDate(_ context.Context, dateString string) ([]*entity.Appointment, error) {
	var result []*entity.Appointment
	for _, apt := range r.appointments {
		if apt.DateString == dateString {
			result = append(result, apt)
		}
	}
	return result, nil
}

func (r *fakeAppointmentRepo) FindByDateRange(_ context.Context, startDate, endDate string) ([]*entity.Appointment, error) {
	var result []*entity.Appointment
	for _, apt := range r.appointments {
		if apt.DateString >= startDate && apt.DateString <= endDate {
			result = append(result, apt)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DateString != result[j].DateString {
			return result[i].DateString > result[j].DateString
		}
		return result[i].Time > result[j].Time
	})
	return result, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, _ *entity.Appointment) error { return nil }
func (r *fakeAppointmentRepo) Delete(_ context.Context, _ uuid.UUID) error           { return nil }

// fixedClock always returns the same instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newAppointment(date, timeOfDay, service string, status entity.AppointmentStatus, price int64) *entity.Appointment {
	apt := entity.NewAppointment(date, timeOfDay, "Ana", service, decimal.NewFromInt(price), nil, nil)
	apt.Status = status
	return apt
}

func TestGetStats(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{now: time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)}

	t.Run("rejects an unknown period", func(t *testing.T) {
		uc := NewGetStatsUseCase(&fakeAppointmentRepo{}, clock)

		_, err := uc.Execute(ctx, GetStatsInput{Period: "quarter"})
		if err == nil {
			t.Fatal("expected error for unknown period")
		}

		var revErr *domainerror.RevenueError
		if !errors.As(err, &revErr) {
			t.Fatalf("expected RevenueError, got %T", err)
		}
		if revErr.Code != domainerror.ErrCodeInvalidRevenuePeriod {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidRevenuePeriod, revErr.Code)
		}
	})

	t.Run("rejects a malformed anchor date", func(t *testing.T) {
		uc := NewGetStatsUseCase(&fakeAppointmentRepo{}, clock)

		_, err := uc.Execute(ctx, GetStatsInput{Period: PeriodDay, Date: "10/03/2024"})
		if err == nil {
			t.Fatal("expected error for malformed date")
		}

		var revErr *domainerror.RevenueError
		if !errors.As(err, &revErr) {
			t.Fatalf("expected RevenueError, got %T", err)
		}
		if revErr.Code != domainerror.ErrCodeInvalidRevenueDate {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidRevenueDate, revErr.Code)
		}
	})

	t.Run("defaults to a day report anchored on today", func(t *testing.T) {
		repo := &fakeAppointmentRepo{appointments: []*entity.Appointment{
			newAppointment("2024-03-10", "10:00", "Corte", entity.AppointmentStatusCompleted, 5000),
			newAppointment("2024-03-09", "10:00", "Corte", entity.AppointmentStatusCompleted, 9000),
		}}
		uc := NewGetStatsUseCase(repo, clock)

		output, err := uc.Execute(ctx, GetStatsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Period != PeriodDay {
			t.Errorf("expected period day, got %s", output.Period)
		}
		if output.StartDate != "2024-03-10" || output.EndDate != "2024-03-10" {
			t.Errorf("expected range 2024-03-10..2024-03-10, got %s..%s", output.StartDate, output.EndDate)
		}
		if output.AppointmentCount != 1 {
			t.Errorf("expected 1 appointment, got %d", output.AppointmentCount)
		}
	})

	t.Run("totals every appointment regardless of status", func(t *testing.T) {
		repo := &fakeAppointmentRepo{appointments: []*entity.Appointment{
			newAppointment("2024-03-10", "09:00", "Corte", entity.AppointmentStatusCompleted, 100),
			newAppointment("2024-03-10", "10:00", "Corte", entity.AppointmentStatusPending, 50),
			newAppointment("2024-03-10", "11:00", "Corte", entity.AppointmentStatusCancelled, 200),
			newAppointment("2024-03-10", "12:00", "Corte", entity.AppointmentStatusAbsent, 25),
		}}
		uc := NewGetStatsUseCase(repo, clock)

		output, err := uc.Execute(ctx, GetStatsInput{Period: PeriodDay, Date: "2024-03-10"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.TotalIncome.Equal(decimal.NewFromInt(375)) {
			t.Errorf("expected total income 375, got %s", output.TotalIncome)
		}
		if output.AppointmentCount != 4 {
			t.Errorf("expected 4 appointments, got %d", output.AppointmentCount)
		}
	})

	t.Run("a week report anchored on Sunday starts the preceding Monday", func(t *testing.T) {
		repo := &fakeAppointmentRepo{appointments: []*entity.Appointment{
			newAppointment("2024-03-04", "09:00", "Corte", entity.AppointmentStatusCompleted, 100),
			newAppointment("2024-03-10", "09:00", "Corte", entity.AppointmentStatusCompleted, 100),
			newAppointment("2024-03-11", "09:00", "Corte", entity.AppointmentStatusCompleted, 100),
		}}
		uc := NewGetStatsUseCase(repo, clock)

		output, err := uc.Execute(ctx, GetStatsInput{Period: PeriodWeek, Date: "2024-03-10"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.StartDate != "2024-03-04" || output.EndDate != "2024-03-10" {
			t.Errorf("expected range 2024-03-04..2024-03-10, got %s..%s", output.StartDate, output.EndDate)
		}
		if output.AppointmentCount != 2 {
			t.Errorf("expected 2 appointments in the week, got %d", output.AppointmentCount)
		}
	})

	t.Run("empty range yields zeroed insights with no top service", func(t *testing.T) {
		uc := NewGetStatsUseCase(&fakeAppointmentRepo{}, clock)

		output, err := uc.Execute(ctx, GetStatsInput{Period: PeriodMonth, Date: "2024-02-15"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.TotalIncome.IsZero() || output.AppointmentCount != 0 {
			t.Errorf("expected empty report, got income %s count %d", output.TotalIncome, output.AppointmentCount)
		}
		if output.Insights.AveragePerAppointment != 0 {
			t.Errorf("expected average 0, got %d", output.Insights.AveragePerAppointment)
		}
		if output.Insights.TopService != nil {
			t.Errorf("expected nil top service, got %s", *output.Insights.TopService)
		}
		if output.Insights.TopServiceCount != 0 {
			t.Errorf("expected top service count 0, got %d", output.Insights.TopServiceCount)
		}
	})

	t.Run("average is the rounded income per appointment", func(t *testing.T) {
		repo := &fakeAppointmentRepo{appointments: []*entity.Appointment{
			newAppointment("2024-03-10", "09:00", "Corte", entity.AppointmentStatusCompleted, 100),
			newAppointment("2024-03-10", "10:00", "Corte", entity.AppointmentStatusCompleted, 101),
		}}
		uc := NewGetStatsUseCase(repo, clock)

		output, err := uc.Execute(ctx, GetStatsInput{Period: PeriodDay, Date: "2024-03-10"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 201 / 2 = 100.5 rounds to 101.
		if output.Insights.AveragePerAppointment != 101 {
			t.Errorf("expected average 101, got %d", output.Insights.AveragePerAppointment)
		}
	})

	t.Run("top service ties keep the first service encountered", func(t *testing.T) {
		repo := &fakeAppointmentRepo{appointments: []*entity.Appointment{
			newAppointment("2024-03-10", "12:00", "Color", entity.AppointmentStatusCompleted, 100),
			newAppointment("2024-03-10", "11:00", "Corte", entity.AppointmentStatusCompleted, 100),
			newAppointment("2024-03-10", "10:00", "Color", entity.AppointmentStatusCompleted, 100),
			newAppointment("2024-03-10", "09:00", "Corte", entity.AppointmentStatusCompleted, 100),
		}}
		uc := NewGetStatsUseCase(repo, clock)

		output, err := uc.Execute(ctx, GetStatsInput{Period: PeriodDay, Date: "2024-03-10"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Appointments come back ordered date desc, time desc, so Color at
		// 12:00 is seen first and wins the 2-2 tie.
		if output.Insights.TopService == nil || *output.Insights.TopService != "Color" {
			t.Errorf("expected top service Color, got %v", output.Insights.TopService)
		}
		if output.Insights.TopServiceCount != 2 {
			t.Errorf("expected top service count 2, got %d", output.Insights.TopServiceCount)
		}
	})

	t.Run("appointments without a service are grouped under a placeholder", func(t *testing.T) {
		repo := &fakeAppointmentRepo{appointments: []*entity.Appointment{
			newAppointment("2024-03-10", "09:00", "", entity.AppointmentStatusCompleted, 100),
			newAppointment("2024-03-10", "10:00", "", entity.AppointmentStatusCompleted, 100),
			newAppointment("2024-03-10", "11:00", "Corte", entity.AppointmentStatusCompleted, 100),
		}}
		uc := NewGetStatsUseCase(repo, clock)

		output, err := uc.Execute(ctx, GetStatsInput{Period: PeriodDay, Date: "2024-03-10"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Insights.TopService == nil || *output.Insights.TopService != "Sin servicio" {
			t.Errorf("expected top service 'Sin servicio', got %v", output.Insights.TopService)
		}
	})
}

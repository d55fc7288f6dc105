package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// fakeAppointmentRepo is an in-memory AppointmentRepository for unit tests.
type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*entity.Appointment
	updateCalls  int
}

func newFakeAppointmentRepo(appointments ...*entity.Appointment) *fakeAppointmentRepo {
	repo := &fakeAppointmentRepo{appointments: make(map[uuid.UUID]*entity.Appointment)}
	for _, apt := range appointments {
		repo.appointments[apt.ID] = apt
	}
	return repo
}

func (r *fakeAppointmentRepo) Create(_ context.Context, apt *entity.Appointment) error {
	r.appointments[apt.ID] = apt
	return nil
}

func (r *fakeAppointmentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Appointment, error) {
	apt, ok := r.appointments[id]
	if !ok {
		return nil, domainerror.ErrAppointmentNotFound
	}
	copied := *apt
	return &copied, nil
}

func (r *fakeAppointmentRepo) FindAll(_ context.Context) ([]*entity.Appointment, error) {
	result := make([]*entity.Appointment, 0, len(r.appointments))
	for _, apt := range r.appointments {
		result = append(result, apt)
	}
	return result, nil
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
	return result, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, apt *entity.Appointment) error {
	r.updateCalls++
	r.appointments[apt.ID] = apt
	return nil
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.appointments, id)
	return nil
}

// fixedClock always returns the same instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func TestSetAppointmentStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	clock := fixedClock{now: now}

	newPendingAppointment := func() *entity.Appointment {
		return entity.NewAppointment("2024-01-01", "09:00", "Ana", "Corte", decimal.NewFromInt(5000), nil, nil)
	}

	t.Run("completing stamps completedAt with the current time", func(t *testing.T) {
		apt := newPendingAppointment()
		repo := newFakeAppointmentRepo(apt)
		uc := NewSetAppointmentStatusUseCase(repo, clock)

		output, err := uc.Execute(ctx, SetAppointmentStatusInput{
			AppointmentID: apt.ID,
			Status:        entity.AppointmentStatusCompleted,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Status != entity.AppointmentStatusCompleted {
			t.Errorf("expected status completed, got %s", output.Status)
		}
		if output.CompletedAt == nil || !output.CompletedAt.Equal(now) {
			t.Errorf("expected completedAt %v, got %v", now, output.CompletedAt)
		}
	})

	t.Run("reverting to pending clears completedAt", func(t *testing.T) {
		apt := newPendingAppointment()
		repo := newFakeAppointmentRepo(apt)
		uc := NewSetAppointmentStatusUseCase(repo, clock)

		if _, err := uc.Execute(ctx, SetAppointmentStatusInput{
			AppointmentID: apt.ID,
			Status:        entity.AppointmentStatusCompleted,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output, err := uc.Execute(ctx, SetAppointmentStatusInput{
			AppointmentID: apt.ID,
			Status:        entity.AppointmentStatusPending,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Status != entity.AppointmentStatusPending {
			t.Errorf("expected status pending, got %s", output.Status)
		}
		if output.CompletedAt != nil {
			t.Errorf("expected completedAt to be cleared, got %v", output.CompletedAt)
		}
	})

	t.Run("absent and cancelled leave completedAt untouched", func(t *testing.T) {
		for _, status := range []entity.AppointmentStatus{
			entity.AppointmentStatusAbsent,
			entity.AppointmentStatusCancelled,
		} {
			apt := newPendingAppointment()
			completedAt := now.Add(-time.Hour)
			apt.Status = entity.AppointmentStatusCompleted
			apt.CompletedAt = &completedAt
			repo := newFakeAppointmentRepo(apt)
			uc := NewSetAppointmentStatusUseCase(repo, clock)

			output, err := uc.Execute(ctx, SetAppointmentStatusInput{
				AppointmentID: apt.ID,
				Status:        status,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output.Status != status {
				t.Errorf("expected status %s, got %s", status, output.Status)
			}
			if output.CompletedAt == nil || !output.CompletedAt.Equal(completedAt) {
				t.Errorf("expected completedAt %v to survive %s, got %v", completedAt, status, output.CompletedAt)
			}
		}
	})

	t.Run("unknown status is rejected without touching the appointment", func(t *testing.T) {
		apt := newPendingAppointment()
		repo := newFakeAppointmentRepo(apt)
		uc := NewSetAppointmentStatusUseCase(repo, clock)

		_, err := uc.Execute(ctx, SetAppointmentStatusInput{
			AppointmentID: apt.ID,
			Status:        "done",
		})
		if err == nil {
			t.Fatal("expected error for unknown status")
		}

		var aptErr *domainerror.AppointmentError
		if !errors.As(err, &aptErr) {
			t.Fatalf("expected AppointmentError, got %T", err)
		}
		if aptErr.Code != domainerror.ErrCodeInvalidAppointmentStatus {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidAppointmentStatus, aptErr.Code)
		}
		if repo.updateCalls != 0 {
			t.Errorf("expected no update calls, got %d", repo.updateCalls)
		}
		if stored := repo.appointments[apt.ID]; stored.Status != entity.AppointmentStatusPending {
			t.Errorf("expected stored status pending, got %s", stored.Status)
		}
	})

	t.Run("missing appointment returns not found", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		uc := NewSetAppointmentStatusUseCase(repo, clock)

		_, err := uc.Execute(ctx, SetAppointmentStatusInput{
			AppointmentID: uuid.New(),
			Status:        entity.AppointmentStatusCompleted,
		})
		if err == nil {
			t.Fatal("expected error for missing appointment")
		}

		var aptErr *domainerror.AppointmentError
		if !errors.As(err, &aptErr) {
			t.Fatalf("expected AppointmentError, got %T", err)
		}
		if aptErr.Code != domainerror.ErrCodeAppointmentNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeAppointmentNotFound, aptErr.Code)
		}
	})
}

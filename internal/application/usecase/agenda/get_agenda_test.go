package agenda

import (
	"context"
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
	sort.Slice(result, func(i, j int) bool { return result[i].Time < result[j].Time })
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

func (r *fakeAppointmentRepo) Update(_ context.Context, _ *entity.Appointment) error { return nil }
func (r *fakeAppointmentRepo) Delete(_ context.Context, _ uuid.UUID) error           { return nil }

// fakeClientRepo is an in-memory ClientRepository for unit tests.
type fakeClientRepo struct {
	clients []*entity.Client
}

func (r *fakeClientRepo) Create(_ context.Context, client *entity.Client) error {
	r.clients = append(r.clients, client)
	return nil
}

func (r *fakeClientRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	for _, client := range r.clients {
		if client.ID == id {
			return client, nil
		}
	}
	return nil, domainerror.ErrClientNotFound
}

func (r *fakeClientRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Client, error) {
	var result []*entity.Client
	for _, client := range r.clients {
		for _, id := range ids {
			if client.ID == id {
				result = append(result, client)
			}
		}
	}
	return result, nil
}

func (r *fakeClientRepo) FindAll(_ context.Context) ([]*entity.Client, error) {
	return r.clients, nil
}

func (r *fakeClientRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

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

func TestGetAgenda(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{now: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}

	t.Run("marks at most one appointment as current", func(t *testing.T) {
		repo := &fakeAppointmentRepo{appointments: []*entity.Appointment{
			newAppointment("2024-01-01", "09:00", entity.AppointmentStatusPending, 0),
			newAppointment("2024-01-01", "10:30", entity.AppointmentStatusPending, 0),
			newAppointment("2024-01-01", "11:00", entity.AppointmentStatusPending, 0),
		}}
		uc := NewGetAgendaUseCase(repo, &fakeClientRepo{}, clock)

		output, err := uc.Execute(ctx, GetAgendaInput{Date: "2024-01-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Appointments[0].IsPast || output.Appointments[0].IsCurrent {
			t.Errorf("expected 09:00 to be past and not current")
		}
		if output.Appointments[1].IsPast || !output.Appointments[1].IsCurrent {
			t.Errorf("expected 10:30 to be the current appointment")
		}
		if output.Appointments[2].IsPast || output.Appointments[2].IsCurrent {
			t.Errorf("expected 11:00 to be upcoming but not current")
		}

		currentCount := 0
		for _, apt := range output.Appointments {
			if apt.IsCurrent {
				currentCount++
			}
		}
		if currentCount != 1 {
			t.Errorf("expected exactly one current appointment, got %d", currentCount)
		}
	})

	t.Run("an appointment at the current minute is current, not past", func(t *testing.T) {
		repo := &fakeAppointmentRepo{appointments: []*entity.Appointment{
			newAppointment("2024-01-01", "10:00", entity.AppointmentStatusPending, 0),
		}}
		uc := NewGetAgendaUseCase(repo, &fakeClientRepo{}, clock)

		output, err := uc.Execute(ctx, GetAgendaInput{Date: "2024-01-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Appointments[0].IsPast {
			t.Error("expected 10:00 not to be past at 10:00")
		}
		if !output.Appointments[0].IsCurrent {
			t.Error("expected 10:00 to be current at 10:00")
		}
	})

	t.Run("revenue counts completed appointments only", func(t *testing.T) {
		repo := &fakeAppointmentRepo{appointments: []*entity.Appointment{
			newAppointment("2024-01-01", "09:00", entity.AppointmentStatusCompleted, 100),
			newAppointment("2024-01-01", "10:00", entity.AppointmentStatusPending, 50),
			newAppointment("2024-01-01", "11:00", entity.AppointmentStatusAbsent, 200),
		}}
		uc := NewGetAgendaUseCase(repo, &fakeClientRepo{}, clock)

		output, err := uc.Execute(ctx, GetAgendaInput{Date: "2024-01-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.TotalRevenue.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected revenue 100, got %s", output.TotalRevenue)
		}
		if output.PendingCount != 1 || output.CompletedCount != 1 || output.AbsentCount != 1 || output.CancelledCount != 0 {
			t.Errorf("unexpected status counts: %+v", output)
		}
		if output.TotalAppointments != 3 {
			t.Errorf("expected 3 appointments, got %d", output.TotalAppointments)
		}
	})

	t.Run("enriches appointments with client phone", func(t *testing.T) {
		client := entity.NewClient("Laura Gomez", "+54 11 5555-1234", "")
		apt := newAppointment("2024-01-01", "12:00", entity.AppointmentStatusPending, 0)
		apt.ClientID = &client.ID
		repo := &fakeAppointmentRepo{appointments: []*entity.Appointment{apt}}
		uc := NewGetAgendaUseCase(repo, &fakeClientRepo{clients: []*entity.Client{client}}, clock)

		output, err := uc.Execute(ctx, GetAgendaInput{Date: "2024-01-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Appointments[0].ClientPhone != client.Phone {
			t.Errorf("expected phone %s, got %s", client.Phone, output.Appointments[0].ClientPhone)
		}
	})

	t.Run("a dangling client reference leaves the phone empty", func(t *testing.T) {
		missing := uuid.New()
		apt := newAppointment("2024-01-01", "12:00", entity.AppointmentStatusPending, 0)
		apt.ClientID = &missing
		repo := &fakeAppointmentRepo{appointments: []*entity.Appointment{apt}}
		uc := NewGetAgendaUseCase(repo, &fakeClientRepo{}, clock)

		output, err := uc.Execute(ctx, GetAgendaInput{Date: "2024-01-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Appointments[0].ClientPhone != "" {
			t.Errorf("expected empty phone, got %s", output.Appointments[0].ClientPhone)
		}
	})

	t.Run("defaults to today when no date is given", func(t *testing.T) {
		repo := &fakeAppointmentRepo{appointments: []*entity.Appointment{
			newAppointment("2024-01-01", "09:00", entity.AppointmentStatusPending, 0),
			newAppointment("2024-01-02", "09:00", entity.AppointmentStatusPending, 0),
		}}
		uc := NewGetAgendaUseCase(repo, &fakeClientRepo{}, clock)

		output, err := uc.Execute(ctx, GetAgendaInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Date != "2024-01-01" {
			t.Errorf("expected date 2024-01-01, got %s", output.Date)
		}
		if output.TotalAppointments != 1 {
			t.Errorf("expected 1 appointment, got %d", output.TotalAppointments)
		}
	})
}

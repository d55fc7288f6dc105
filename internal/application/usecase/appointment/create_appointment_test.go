package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// fakeServiceRepo is an in-memory ServiceRepository for unit tests.
type fakeServiceRepo struct {
	services map[uuid.UUID]*entity.Service
}

func newFakeServiceRepo(services ...*entity.Service) *fakeServiceRepo {
	repo := &fakeServiceRepo{services: make(map[uuid.UUID]*entity.Service)}
	for _, svc := range services {
		repo.services[svc.ID] = svc
	}
	return repo
}

func (r *fakeServiceRepo) Create(_ context.Context, svc *entity.Service) error {
	r.services[svc.ID] = svc
	return nil
}

func (r *fakeServiceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, domainerror.ErrServiceNotFound
	}
	return svc, nil
}

func (r *fakeServiceRepo) FindAll(_ context.Context) ([]*entity.Service, error) {
	result := make([]*entity.Service, 0, len(r.services))
	for _, svc := range r.services {
		result = append(result, svc)
	}
	return result, nil
}

func (r *fakeServiceRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, svc := range r.services {
		if svc.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeServiceRepo) Update(_ context.Context, svc *entity.Service) error {
	r.services[svc.ID] = svc
	return nil
}

func (r *fakeServiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.services, id)
	return nil
}

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending appointment with a free-form service", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		uc := NewCreateAppointmentUseCase(repo, newFakeServiceRepo())

		price := decimal.NewFromInt(8000)
		output, err := uc.Execute(ctx, CreateAppointmentInput{
			DateString: "2024-03-04",
			Time:       "14:30",
			ClientName: "Laura",
			Service:    "Color",
			Price:      &price,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Appointment.Status != entity.AppointmentStatusPending {
			t.Errorf("expected status pending, got %s", output.Appointment.Status)
		}
		if !output.Appointment.Price.Equal(price) {
			t.Errorf("expected price %s, got %s", price, output.Appointment.Price)
		}
		if len(repo.appointments) != 1 {
			t.Errorf("expected 1 stored appointment, got %d", len(repo.appointments))
		}
	})

	t.Run("snapshots name and price from the catalog service", func(t *testing.T) {
		service := entity.NewService("Alisado", decimal.NewFromInt(15000))
		uc := NewCreateAppointmentUseCase(newFakeAppointmentRepo(), newFakeServiceRepo(service))

		// An explicit price is ignored when a catalog service is referenced.
		price := decimal.NewFromInt(1)
		output, err := uc.Execute(ctx, CreateAppointmentInput{
			DateString: "2024-03-04",
			Time:       "10:00",
			ClientName: "Laura",
			ServiceID:  &service.ID,
			Price:      &price,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Appointment.Service != "Alisado" {
			t.Errorf("expected service name Alisado, got %s", output.Appointment.Service)
		}
		if !output.Appointment.Price.Equal(service.Price) {
			t.Errorf("expected snapshotted price %s, got %s", service.Price, output.Appointment.Price)
		}
	})

	t.Run("defaults price to zero when omitted", func(t *testing.T) {
		uc := NewCreateAppointmentUseCase(newFakeAppointmentRepo(), newFakeServiceRepo())

		output, err := uc.Execute(ctx, CreateAppointmentInput{
			DateString: "2024-03-04",
			Time:       "10:00",
			ClientName: "Laura",
			Service:    "Brushing",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Appointment.Price.IsZero() {
			t.Errorf("expected zero price, got %s", output.Appointment.Price)
		}
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		uc := NewCreateAppointmentUseCase(newFakeAppointmentRepo(), newFakeServiceRepo())

		_, err := uc.Execute(ctx, CreateAppointmentInput{
			DateString: "2024-03-04",
			Time:       "10:00",
		})
		if err == nil {
			t.Fatal("expected error for missing clientName")
		}

		var aptErr *domainerror.AppointmentError
		if !errors.As(err, &aptErr) {
			t.Fatalf("expected AppointmentError, got %T", err)
		}
		if aptErr.Code != domainerror.ErrCodeMissingAppointmentFields {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingAppointmentFields, aptErr.Code)
		}
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		uc := NewCreateAppointmentUseCase(newFakeAppointmentRepo(), newFakeServiceRepo())

		_, err := uc.Execute(ctx, CreateAppointmentInput{
			DateString: "04/03/2024",
			Time:       "10:00",
			ClientName: "Laura",
			Service:    "Corte",
		})
		if err == nil {
			t.Fatal("expected error for malformed date")
		}

		var aptErr *domainerror.AppointmentError
		if !errors.As(err, &aptErr) {
			t.Fatalf("expected AppointmentError, got %T", err)
		}
		if aptErr.Code != domainerror.ErrCodeInvalidAppointmentDate {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidAppointmentDate, aptErr.Code)
		}
	})

	t.Run("rejects unknown catalog service", func(t *testing.T) {
		uc := NewCreateAppointmentUseCase(newFakeAppointmentRepo(), newFakeServiceRepo())

		missingID := uuid.New()
		_, err := uc.Execute(ctx, CreateAppointmentInput{
			DateString: "2024-03-04",
			Time:       "10:00",
			ClientName: "Laura",
			ServiceID:  &missingID,
		})
		if err == nil {
			t.Fatal("expected error for unknown service")
		}

		var aptErr *domainerror.AppointmentError
		if !errors.As(err, &aptErr) {
			t.Fatalf("expected AppointmentError, got %T", err)
		}
		if aptErr.Code != domainerror.ErrCodeAppointmentServiceNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeAppointmentServiceNotFound, aptErr.Code)
		}
	})
}

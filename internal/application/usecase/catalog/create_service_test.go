package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

type fakeServiceRepo struct {
	services map[uuid.UUID]*entity.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[uuid.UUID]*entity.Service)}
}

func (r *fakeServiceRepo) Create(_ context.Context, service *entity.Service) error {
	r.services[service.ID] = service
	return nil
}

func (r *fakeServiceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Service, error) {
	service, ok := r.services[id]
	if !ok {
		return nil, domainerror.ErrServiceNotFound
	}
	copied := *service
	return &copied, nil
}

func (r *fakeServiceRepo) FindAll(_ context.Context) ([]*entity.Service, error) {
	services := make([]*entity.Service, 0, len(r.services))
	for _, service := range r.services {
		services = append(services, service)
	}
	return services, nil
}

func (r *fakeServiceRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, service := range r.services {
		if strings.EqualFold(service.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeServiceRepo) Update(_ context.Context, service *entity.Service) error {
	r.services[service.ID] = service
	return nil
}

func (r *fakeServiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.services, id)
	return nil
}

func TestCreateService(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a service with name and price", func(t *testing.T) {
		repo := newFakeServiceRepo()
		uc := NewCreateServiceUseCase(repo)

		price := decimal.NewFromInt(4500)
		output, err := uc.Execute(ctx, CreateServiceInput{Name: "Corte", Price: &price})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Service.Name != "Corte" {
			t.Errorf("expected name Corte, got %q", output.Service.Name)
		}
		if !output.Service.Price.Equal(price) {
			t.Errorf("expected price %s, got %s", price, output.Service.Price)
		}
		if len(repo.services) != 1 {
			t.Errorf("expected 1 stored service, got %d", len(repo.services))
		}
	})

	t.Run("rejects missing price", func(t *testing.T) {
		repo := newFakeServiceRepo()
		uc := NewCreateServiceUseCase(repo)

		_, err := uc.Execute(ctx, CreateServiceInput{Name: "Corte"})
		var catalogErr *domainerror.CatalogError
		if !errors.As(err, &catalogErr) {
			t.Fatalf("expected CatalogError, got %v", err)
		}
		if catalogErr.Code != domainerror.ErrCodeMissingServiceFields {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingServiceFields, catalogErr.Code)
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		repo := newFakeServiceRepo()
		uc := NewCreateServiceUseCase(repo)

		price := decimal.NewFromInt(100)
		_, err := uc.Execute(ctx, CreateServiceInput{Name: "   ", Price: &price})
		if !errors.Is(err, domainerror.ErrMissingServiceFields) {
			t.Fatalf("expected missing fields error, got %v", err)
		}
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		repo := newFakeServiceRepo()
		existing := entity.NewService("Color", decimal.NewFromInt(8000))
		repo.services[existing.ID] = existing
		uc := NewCreateServiceUseCase(repo)

		price := decimal.NewFromInt(9000)
		_, err := uc.Execute(ctx, CreateServiceInput{Name: "Color", Price: &price})
		var catalogErr *domainerror.CatalogError
		if !errors.As(err, &catalogErr) {
			t.Fatalf("expected CatalogError, got %v", err)
		}
		if catalogErr.Code != domainerror.ErrCodeDuplicateServiceName {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeDuplicateServiceName, catalogErr.Code)
		}
		if len(repo.services) != 1 {
			t.Errorf("expected no new service, got %d stored", len(repo.services))
		}
	})
}

func TestUpdateService(t *testing.T) {
	ctx := context.Background()

	t.Run("updates only provided fields", func(t *testing.T) {
		repo := newFakeServiceRepo()
		existing := entity.NewService("Corte", decimal.NewFromInt(4500))
		repo.services[existing.ID] = existing
		uc := NewUpdateServiceUseCase(repo)

		newPrice := decimal.NewFromInt(5000)
		output, err := uc.Execute(ctx, UpdateServiceInput{ServiceID: existing.ID, Price: &newPrice})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Service.Name != "Corte" {
			t.Errorf("expected name unchanged, got %q", output.Service.Name)
		}
		if !output.Service.Price.Equal(newPrice) {
			t.Errorf("expected price %s, got %s", newPrice, output.Service.Price)
		}
	})

	t.Run("allows keeping the same name", func(t *testing.T) {
		repo := newFakeServiceRepo()
		existing := entity.NewService("Corte", decimal.NewFromInt(4500))
		repo.services[existing.ID] = existing
		uc := NewUpdateServiceUseCase(repo)

		name := "Corte"
		if _, err := uc.Execute(ctx, UpdateServiceInput{ServiceID: existing.ID, Name: &name}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects renaming to an existing name", func(t *testing.T) {
		repo := newFakeServiceRepo()
		first := entity.NewService("Corte", decimal.NewFromInt(4500))
		second := entity.NewService("Color", decimal.NewFromInt(8000))
		repo.services[first.ID] = first
		repo.services[second.ID] = second
		uc := NewUpdateServiceUseCase(repo)

		name := "Color"
		_, err := uc.Execute(ctx, UpdateServiceInput{ServiceID: first.ID, Name: &name})
		if !errors.Is(err, domainerror.ErrDuplicateServiceName) {
			t.Fatalf("expected duplicate name error, got %v", err)
		}
	})

	t.Run("returns not found for unknown service", func(t *testing.T) {
		repo := newFakeServiceRepo()
		uc := NewUpdateServiceUseCase(repo)

		price := decimal.NewFromInt(100)
		_, err := uc.Execute(ctx, UpdateServiceInput{ServiceID: uuid.New(), Price: &price})
		var catalogErr *domainerror.CatalogError
		if !errors.As(err, &catalogErr) {
			t.Fatalf("expected CatalogError, got %v", err)
		}
		if catalogErr.Code != domainerror.ErrCodeServiceNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeServiceNotFound, catalogErr.Code)
		}
	})
}

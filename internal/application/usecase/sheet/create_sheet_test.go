package sheet

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

type fakeSheetRepo struct {
	sheets map[uuid.UUID]*entity.TechnicalSheet
}

func newFakeSheetRepo() *fakeSheetRepo {
	return &fakeSheetRepo{sheets: make(map[uuid.UUID]*entity.TechnicalSheet)}
}

func (r *fakeSheetRepo) Create(_ context.Context, sheet *entity.TechnicalSheet) error {
	r.sheets[sheet.ID] = sheet
	return nil
}

func (r *fakeSheetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.TechnicalSheet, error) {
	sheet, ok := r.sheets[id]
	if !ok {
		return nil, domainerror.ErrSheetNotFound
	}
	copied := *sheet
	return &copied, nil
}

func (r *fakeSheetRepo) FindByClientID(_ context.Context, clientID uuid.UUID) ([]*entity.TechnicalSheet, error) {
	var sheets []*entity.TechnicalSheet
	for _, sheet := range r.sheets {
		if sheet.ClientID == clientID {
			sheets = append(sheets, sheet)
		}
	}
	return sheets, nil
}

func (r *fakeSheetRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.sheets, id)
	return nil
}

type fakeClientRepo struct {
	clients map[uuid.UUID]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[uuid.UUID]*entity.Client)}
}

func (r *fakeClientRepo) Create(_ context.Context, client *entity.Client) error {
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, domainerror.ErrClientNotFound
	}
	copied := *client
	return &copied, nil
}

func (r *fakeClientRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Client, error) {
	var clients []*entity.Client
	for _, id := range ids {
		if client, ok := r.clients[id]; ok {
			clients = append(clients, client)
		}
	}
	return clients, nil
}

func (r *fakeClientRepo) FindAll(_ context.Context) ([]*entity.Client, error) {
	clients := make([]*entity.Client, 0, len(r.clients))
	for _, client := range r.clients {
		clients = append(clients, client)
	}
	return clients, nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clients, id)
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func TestCreateSheet(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{now: time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)}

	t.Run("creates a sheet for an existing client", func(t *testing.T) {
		sheetRepo := newFakeSheetRepo()
		clientRepo := newFakeClientRepo()
		client := entity.NewClient("Ana Lopez", "+5491155551111", "")
		clientRepo.clients[client.ID] = client
		uc := NewCreateSheetUseCase(sheetRepo, clientRepo, clock)

		price := decimal.NewFromInt(8000)
		output, err := uc.Execute(ctx, CreateSheetInput{
			ClientID:   client.ID,
			DateString: "2024-03-10",
			Service:    "Color",
			Price:      &price,
			Formula:    "7.1 + 20vol 1:1.5",
			Notes:      "30 min exposure",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Sheet.ClientID != client.ID {
			t.Errorf("expected client %s, got %s", client.ID, output.Sheet.ClientID)
		}
		if output.Sheet.DateString != "2024-03-10" {
			t.Errorf("expected date 2024-03-10, got %s", output.Sheet.DateString)
		}
		if output.Sheet.Formula != "7.1 + 20vol 1:1.5" {
			t.Errorf("unexpected formula %q", output.Sheet.Formula)
		}
	})

	t.Run("date defaults to today", func(t *testing.T) {
		sheetRepo := newFakeSheetRepo()
		clientRepo := newFakeClientRepo()
		client := entity.NewClient("Ana Lopez", "", "")
		clientRepo.clients[client.ID] = client
		uc := NewCreateSheetUseCase(sheetRepo, clientRepo, clock)

		output, err := uc.Execute(ctx, CreateSheetInput{ClientID: client.ID, Formula: "6.0 natural"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Sheet.DateString != "2024-03-15" {
			t.Errorf("expected default date 2024-03-15, got %s", output.Sheet.DateString)
		}
		if !output.Sheet.Price.IsZero() {
			t.Errorf("expected zero price, got %s", output.Sheet.Price)
		}
	})

	t.Run("rejects missing formula", func(t *testing.T) {
		sheetRepo := newFakeSheetRepo()
		clientRepo := newFakeClientRepo()
		client := entity.NewClient("Ana Lopez", "", "")
		clientRepo.clients[client.ID] = client
		uc := NewCreateSheetUseCase(sheetRepo, clientRepo, clock)

		_, err := uc.Execute(ctx, CreateSheetInput{ClientID: client.ID})
		var sheetErr *domainerror.SheetError
		if !errors.As(err, &sheetErr) {
			t.Fatalf("expected SheetError, got %v", err)
		}
		if sheetErr.Code != domainerror.ErrCodeMissingSheetFields {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingSheetFields, sheetErr.Code)
		}
	})

	t.Run("rejects unknown client", func(t *testing.T) {
		sheetRepo := newFakeSheetRepo()
		clientRepo := newFakeClientRepo()
		uc := NewCreateSheetUseCase(sheetRepo, clientRepo, clock)

		_, err := uc.Execute(ctx, CreateSheetInput{ClientID: uuid.New(), Formula: "8.3"})
		var sheetErr *domainerror.SheetError
		if !errors.As(err, &sheetErr) {
			t.Fatalf("expected SheetError, got %v", err)
		}
		if sheetErr.Code != domainerror.ErrCodeSheetClientNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeSheetClientNotFound, sheetErr.Code)
		}
		if len(sheetRepo.sheets) != 0 {
			t.Errorf("expected no stored sheet, got %d", len(sheetRepo.sheets))
		}
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		sheetRepo := newFakeSheetRepo()
		clientRepo := newFakeClientRepo()
		client := entity.NewClient("Ana Lopez", "", "")
		clientRepo.clients[client.ID] = client
		uc := NewCreateSheetUseCase(sheetRepo, clientRepo, clock)

		_, err := uc.Execute(ctx, CreateSheetInput{ClientID: client.ID, Formula: "8.3", DateString: "15/03/2024"})
		if !errors.Is(err, domainerror.ErrMissingSheetFields) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

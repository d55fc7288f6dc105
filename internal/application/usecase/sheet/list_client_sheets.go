// Package sheet contains technical sheet use cases.
package sheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// ListClientSheetsInput represents the input for listing a client's sheets.
type ListClientSheetsInput struct {
	ClientID uuid.UUID
}

// ListClientSheetsOutput represents the output of listing a client's sheets.
type ListClientSheetsOutput struct {
	Sheets []*entity.TechnicalSheet
}

// ListClientSheetsUseCase handles listing the technical sheet history of a client.
type ListClientSheetsUseCase struct {
	sheetRepo  adapter.SheetRepository
	clientRepo adapter.ClientRepository
}

// NewListClientSheetsUseCase creates a new ListClientSheetsUseCase instance.
func NewListClientSheetsUseCase(
	sheetRepo adapter.SheetRepository,
	clientRepo adapter.ClientRepository,
) *ListClientSheetsUseCase {
	return &ListClientSheetsUseCase{
		sheetRepo:  sheetRepo,
		clientRepo: clientRepo,
	}
}

// Execute lists the client's technical sheets, most recent first.
func (uc *ListClientSheetsUseCase) Execute(ctx context.Context, input ListClientSheetsInput) (*ListClientSheetsOutput, error) {
	if _, err := uc.clientRepo.FindByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return nil, domainerror.NewSheetError(
				domainerror.ErrCodeSheetClientNotFound,
				"client not found",
				domainerror.ErrSheetClientNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	sheets, err := uc.sheetRepo.FindByClientID(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list technical sheets: %w", err)
	}

	return &ListClientSheetsOutput{Sheets: sheets}, nil
}

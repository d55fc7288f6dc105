// Package sheet contains technical sheet use cases.
package sheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/application/adapter"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// DeleteSheetInput represents the input for technical sheet deletion.
type DeleteSheetInput struct {
	SheetID uuid.UUID
}

// DeleteSheetUseCase handles technical sheet deletion logic.
type DeleteSheetUseCase struct {
	sheetRepo adapter.SheetRepository
}

// NewDeleteSheetUseCase creates a new DeleteSheetUseCase instance.
func NewDeleteSheetUseCase(sheetRepo adapter.SheetRepository) *DeleteSheetUseCase {
	return &DeleteSheetUseCase{
		sheetRepo: sheetRepo,
	}
}

// Execute performs the technical sheet deletion.
func (uc *DeleteSheetUseCase) Execute(ctx context.Context, input DeleteSheetInput) error {
	if _, err := uc.sheetRepo.FindByID(ctx, input.SheetID); err != nil {
		if errors.Is(err, domainerror.ErrSheetNotFound) {
			return domainerror.NewSheetError(
				domainerror.ErrCodeSheetNotFound,
				"technical sheet not found",
				domainerror.ErrSheetNotFound,
			)
		}
		return fmt.Errorf("failed to find technical sheet: %w", err)
	}

	if err := uc.sheetRepo.Delete(ctx, input.SheetID); err != nil {
		return fmt.Errorf("failed to delete technical sheet: %w", err)
	}

	return nil
}

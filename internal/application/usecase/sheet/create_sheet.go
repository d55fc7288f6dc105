// Package sheet contains technical sheet use cases. Technical sheets record
// the chemical formulas and notes applied to a client during a visit.
package sheet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

const dateLayout = "2006-01-02"

// CreateSheetInput represents the input for technical sheet creation.
type CreateSheetInput struct {
	ClientID    uuid.UUID
	DateString  string
	Service     string
	Price       *decimal.Decimal
	Formula     string
	Notes       string
	PhotoBefore string
	PhotoAfter  string
}

// CreateSheetOutput represents the output of technical sheet creation.
type CreateSheetOutput struct {
	Sheet *entity.TechnicalSheet
}

// CreateSheetUseCase handles technical sheet creation logic.
type CreateSheetUseCase struct {
	sheetRepo  adapter.SheetRepository
	clientRepo adapter.ClientRepository
	clock      adapter.Clock
}

// NewCreateSheetUseCase creates a new CreateSheetUseCase instance.
func NewCreateSheetUseCase(
	sheetRepo adapter.SheetRepository,
	clientRepo adapter.ClientRepository,
	clock adapter.Clock,
) *CreateSheetUseCase {
	return &CreateSheetUseCase{
		sheetRepo:  sheetRepo,
		clientRepo: clientRepo,
		clock:      clock,
	}
}

// Execute performs the technical sheet creation. The date defaults to today
// in the salon timezone when omitted.
func (uc *CreateSheetUseCase) Execute(ctx context.Context, input CreateSheetInput) (*CreateSheetOutput, error) {
	formula := strings.TrimSpace(input.Formula)
	if input.ClientID == uuid.Nil || formula == "" {
		return nil, domainerror.NewSheetError(
			domainerror.ErrCodeMissingSheetFields,
			"clientId and formula are required",
			domainerror.ErrMissingSheetFields,
		)
	}

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

	dateString := input.DateString
	if dateString == "" {
		dateString = uc.clock.Now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, dateString); err != nil {
		return nil, domainerror.NewSheetError(
			domainerror.ErrCodeMissingSheetFields,
			"date must use the YYYY-MM-DD format",
			domainerror.ErrMissingSheetFields,
		)
	}

	price := decimal.Zero
	if input.Price != nil {
		price = *input.Price
	}

	sheet := entity.NewTechnicalSheet(
		input.ClientID,
		dateString,
		input.Service,
		price,
		formula,
		input.Notes,
		input.PhotoBefore,
		input.PhotoAfter,
	)

	if err := uc.sheetRepo.Create(ctx, sheet); err != nil {
		return nil, fmt.Errorf("failed to create technical sheet: %w", err)
	}

	return &CreateSheetOutput{Sheet: sheet}, nil
}

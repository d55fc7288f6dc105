// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/application/usecase/sheet"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
	"github.com/salon-manager/backend/internal/integration/entrypoint/dto"
)

// SheetController handles technical sheet endpoints.
type SheetController struct {
	createUseCase *sheet.CreateSheetUseCase
	listUseCase   *sheet.ListClientSheetsUseCase
	deleteUseCase *sheet.DeleteSheetUseCase
}

// NewSheetController creates a new sheet controller instance.
func NewSheetController(
	createUseCase *sheet.CreateSheetUseCase,
	listUseCase *sheet.ListClientSheetsUseCase,
	deleteUseCase *sheet.DeleteSheetUseCase,
) *SheetController {
	return &SheetController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /sheets requests.
func (c *SheetController) Create(ctx *gin.Context) {
	var req dto.CreateSheetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingSheetFields),
		})
		return
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		respondInvalidUUID(ctx, "clientId")
		return
	}

	input := sheet.CreateSheetInput{
		ClientID:    clientID,
		DateString:  req.Date,
		Service:     req.Service,
		Formula:     req.Formula,
		Notes:       req.Notes,
		PhotoBefore: req.PhotoBefore,
		PhotoAfter:  req.PhotoAfter,
	}
	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		input.Price = &price
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSheetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSheetResponse(output.Sheet))
}

// ListByClient handles GET /sheets/client/:clientId requests.
func (c *SheetController) ListByClient(ctx *gin.Context) {
	clientID, ok := parsePathUUID(ctx, "clientId")
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), sheet.ListClientSheetsInput{
		ClientID: clientID,
	})
	if err != nil {
		c.handleSheetError(ctx, err)
		return
	}

	sheets := make([]dto.SheetResponse, len(output.Sheets))
	for i, s := range output.Sheets {
		sheets[i] = dto.ToSheetResponse(s)
	}

	ctx.JSON(http.StatusOK, dto.SheetListResponse{Sheets: sheets})
}

// Delete handles DELETE /sheets/:id requests.
func (c *SheetController) Delete(ctx *gin.Context) {
	sheetID, ok := parsePathUUID(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), sheet.DeleteSheetInput{
		SheetID: sheetID,
	}); err != nil {
		c.handleSheetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Technical sheet deleted"})
}

// handleSheetError handles sheet errors and returns appropriate HTTP responses.
func (c *SheetController) handleSheetError(ctx *gin.Context, err error) {
	var sheetErr *domainerror.SheetError
	if errors.As(err, &sheetErr) {
		statusCode := c.getStatusCodeForSheetError(sheetErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: sheetErr.Message,
			Code:  string(sheetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSheetError maps sheet error codes to HTTP status codes.
func (c *SheetController) getStatusCodeForSheetError(code domainerror.SheetErrorCode) int {
	switch code {
	case domainerror.ErrCodeSheetNotFound, domainerror.ErrCodeSheetClientNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingSheetFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

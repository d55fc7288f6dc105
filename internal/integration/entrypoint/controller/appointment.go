// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/application/usecase/appointment"
	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
	"github.com/salon-manager/backend/internal/integration/entrypoint/dto"
)

// AppointmentController handles appointment endpoints.
type AppointmentController struct {
	listUseCase      *appointment.ListAppointmentsUseCase
	createUseCase    *appointment.CreateAppointmentUseCase
	updateUseCase    *appointment.UpdateAppointmentUseCase
	setStatusUseCase *appointment.SetAppointmentStatusUseCase
	deleteUseCase    *appointment.DeleteAppointmentUseCase
}

// NewAppointmentController creates a new appointment controller instance.
func NewAppointmentController(
	listUseCase *appointment.ListAppointmentsUseCase,
	createUseCase *appointment.CreateAppointmentUseCase,
	updateUseCase *appointment.UpdateAppointmentUseCase,
	setStatusUseCase *appointment.SetAppointmentStatusUseCase,
	deleteUseCase *appointment.DeleteAppointmentUseCase,
) *AppointmentController {
	return &AppointmentController{
		listUseCase:      listUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		setStatusUseCase: setStatusUseCase,
		deleteUseCase:    deleteUseCase,
	}
}

// List handles GET /appointments requests.
func (c *AppointmentController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), appointment.ListAppointmentsInput{})
	if err != nil {
		c.handleAppointmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toAppointmentListResponse(output.Appointments))
}

// ListByDate handles GET /appointments/date/:date requests.
func (c *AppointmentController) ListByDate(ctx *gin.Context) {
	date := ctx.Param("date")

	output, err := c.listUseCase.Execute(ctx.Request.Context(), appointment.ListAppointmentsInput{
		Date: &date,
	})
	if err != nil {
		c.handleAppointmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toAppointmentListResponse(output.Appointments))
}

// Create handles POST /appointments requests.
func (c *AppointmentController) Create(ctx *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingAppointmentFields),
		})
		return
	}

	clientID, ok := parseOptionalUUID(ctx, req.ClientID, "clientId")
	if !ok {
		return
	}
	serviceID, ok := parseOptionalUUID(ctx, req.ServiceID, "serviceId")
	if !ok {
		return
	}

	input := appointment.CreateAppointmentInput{
		DateString: req.Date,
		Time:       req.Time,
		ClientName: req.ClientName,
		ClientID:   clientID,
		Service:    req.Service,
		ServiceID:  serviceID,
	}
	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		input.Price = &price
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAppointmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAppointmentResponse(output.Appointment))
}

// Update handles PUT /appointments/:id requests.
func (c *AppointmentController) Update(ctx *gin.Context) {
	appointmentID, ok := parsePathUUID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingAppointmentFields),
		})
		return
	}

	input := appointment.UpdateAppointmentInput{
		AppointmentID: appointmentID,
		DateString:    req.Date,
		Time:          req.Time,
		ClientName:    req.ClientName,
		Service:       req.Service,
	}
	if req.ClientID != nil {
		if *req.ClientID == "" {
			input.ClearClientID = true
		} else {
			id, err := uuid.Parse(*req.ClientID)
			if err != nil {
				respondInvalidUUID(ctx, "clientId")
				return
			}
			input.ClientID = &id
		}
	}
	if req.ServiceID != nil {
		if *req.ServiceID == "" {
			input.ClearServiceID = true
		} else {
			id, err := uuid.Parse(*req.ServiceID)
			if err != nil {
				respondInvalidUUID(ctx, "serviceId")
				return
			}
			input.ServiceID = &id
		}
	}
	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		input.Price = &price
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAppointmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAppointmentResponse(output.Appointment))
}

// SetStatus handles PATCH /appointments/:id/status requests.
func (c *AppointmentController) SetStatus(ctx *gin.Context) {
	appointmentID, ok := parsePathUUID(ctx, "id")
	if !ok {
		return
	}

	var req dto.SetAppointmentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidAppointmentStatus),
		})
		return
	}

	output, err := c.setStatusUseCase.Execute(ctx.Request.Context(), appointment.SetAppointmentStatusInput{
		AppointmentID: appointmentID,
		Status:        entity.AppointmentStatus(req.Status),
	})
	if err != nil {
		c.handleAppointmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AppointmentStatusResponse{
		ID:          output.ID.String(),
		Status:      string(output.Status),
		CompletedAt: output.CompletedAt,
	})
}

// Delete handles DELETE /appointments/:id requests.
func (c *AppointmentController) Delete(ctx *gin.Context) {
	appointmentID, ok := parsePathUUID(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), appointment.DeleteAppointmentInput{
		AppointmentID: appointmentID,
	}); err != nil {
		c.handleAppointmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Appointment deleted"})
}

// handleAppointmentError handles appointment errors and returns appropriate HTTP responses.
func (c *AppointmentController) handleAppointmentError(ctx *gin.Context, err error) {
	var aptErr *domainerror.AppointmentError
	if errors.As(err, &aptErr) {
		statusCode := c.getStatusCodeForAppointmentError(aptErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: aptErr.Message,
			Code:  string(aptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAppointmentError maps appointment error codes to HTTP status codes.
func (c *AppointmentController) getStatusCodeForAppointmentError(code domainerror.AppointmentErrorCode) int {
	switch code {
	case domainerror.ErrCodeAppointmentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidAppointmentStatus,
		domainerror.ErrCodeMissingAppointmentFields,
		domainerror.ErrCodeInvalidAppointmentDate,
		domainerror.ErrCodeAppointmentServiceNotFound:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func toAppointmentListResponse(appointments []*appointment.AppointmentOutput) dto.AppointmentListResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, apt := range appointments {
		responses[i] = dto.ToAppointmentResponse(apt)
	}
	return dto.AppointmentListResponse{Appointments: responses}
}

// parsePathUUID parses a UUID path parameter, responding with 400 on failure.
func parsePathUUID(ctx *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(param))
	if err != nil {
		respondInvalidUUID(ctx, param)
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalUUID parses an optional UUID string, responding with 400 on failure.
func parseOptionalUUID(ctx *gin.Context, value *string, field string) (*uuid.UUID, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		respondInvalidUUID(ctx, field)
		return nil, false
	}
	return &id, true
}

func respondInvalidUUID(ctx *gin.Context, field string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid identifier",
		Details: field + " must be a valid UUID",
	})
}

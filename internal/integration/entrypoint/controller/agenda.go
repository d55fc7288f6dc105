// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salon-manager/backend/internal/application/usecase/agenda"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
	"github.com/salon-manager/backend/internal/integration/entrypoint/dto"
)

// AgendaController handles the daily agenda endpoint.
type AgendaController struct {
	getAgendaUseCase *agenda.GetAgendaUseCase
}

// NewAgendaController creates a new agenda controller instance.
func NewAgendaController(getAgendaUseCase *agenda.GetAgendaUseCase) *AgendaController {
	return &AgendaController{
		getAgendaUseCase: getAgendaUseCase,
	}
}

// GetAgenda handles GET /agenda requests. The date query parameter is
// optional and defaults to today.
func (c *AgendaController) GetAgenda(ctx *gin.Context) {
	output, err := c.getAgendaUseCase.Execute(ctx.Request.Context(), agenda.GetAgendaInput{
		Date: ctx.Query("date"),
	})
	if err != nil {
		var aptErr *domainerror.AppointmentError
		if errors.As(err, &aptErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: aptErr.Message,
				Code:  string(aptErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAgendaResponse(output))
}

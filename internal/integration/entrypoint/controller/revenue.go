// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salon-manager/backend/internal/application/usecase/revenue"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
	"github.com/salon-manager/backend/internal/integration/entrypoint/dto"
)

// RevenueController handles revenue report endpoints.
type RevenueController struct {
	getStatsUseCase *revenue.GetStatsUseCase
}

// NewRevenueController creates a new revenue controller instance.
func NewRevenueController(getStatsUseCase *revenue.GetStatsUseCase) *RevenueController {
	return &RevenueController{
		getStatsUseCase: getStatsUseCase,
	}
}

// GetStats handles GET /revenue/stats requests. The period query parameter
// selects day, week, month or year; the date parameter anchors the period
// and defaults to today.
func (c *RevenueController) GetStats(ctx *gin.Context) {
	output, err := c.getStatsUseCase.Execute(ctx.Request.Context(), revenue.GetStatsInput{
		Period: revenue.Period(ctx.Query("period")),
		Date:   ctx.Query("date"),
	})
	if err != nil {
		var revErr *domainerror.RevenueError
		if errors.As(err, &revErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: revErr.Message,
				Code:  string(revErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRevenueStatsResponse(output))
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/application/usecase/catalog"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
	"github.com/salon-manager/backend/internal/integration/entrypoint/dto"
)

// ServiceController handles catalog service endpoints.
type ServiceController struct {
	createUseCase *catalog.CreateServiceUseCase
	listUseCase   *catalog.ListServicesUseCase
	updateUseCase *catalog.UpdateServiceUseCase
	deleteUseCase *catalog.DeleteServiceUseCase
}

// NewServiceController creates a new service controller instance.
func NewServiceController(
	createUseCase *catalog.CreateServiceUseCase,
	listUseCase *catalog.ListServicesUseCase,
	updateUseCase *catalog.UpdateServiceUseCase,
	deleteUseCase *catalog.DeleteServiceUseCase,
) *ServiceController {
	return &ServiceController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /services requests.
func (c *ServiceController) Create(ctx *gin.Context) {
	var req dto.CreateServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingServiceFields),
		})
		return
	}

	input := catalog.CreateServiceInput{Name: req.Name}
	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		input.Price = &price
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToServiceResponse(output.Service))
}

// List handles GET /services requests.
func (c *ServiceController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	services := make([]dto.ServiceResponse, len(output.Services))
	for i, svc := range output.Services {
		services[i] = dto.ToServiceResponse(svc)
	}

	ctx.JSON(http.StatusOK, dto.ServiceListResponse{Services: services})
}

// Update handles PUT /services/:id requests.
func (c *ServiceController) Update(ctx *gin.Context) {
	serviceID, ok := parsePathUUID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingServiceFields),
		})
		return
	}

	input := catalog.UpdateServiceInput{
		ServiceID: serviceID,
		Name:      req.Name,
	}
	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		input.Price = &price
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceResponse(output.Service))
}

// Delete handles DELETE /services/:id requests.
func (c *ServiceController) Delete(ctx *gin.Context) {
	serviceID, ok := parsePathUUID(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), catalog.DeleteServiceInput{
		ServiceID: serviceID,
	}); err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Service deleted"})
}

// handleCatalogError handles catalog errors and returns appropriate HTTP responses.
func (c *ServiceController) handleCatalogError(ctx *gin.Context, err error) {
	var catalogErr *domainerror.CatalogError
	if errors.As(err, &catalogErr) {
		statusCode := c.getStatusCodeForCatalogError(catalogErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: catalogErr.Message,
			Code:  string(catalogErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCatalogError maps catalog error codes to HTTP status codes.
func (c *ServiceController) getStatusCodeForCatalogError(code domainerror.CatalogErrorCode) int {
	switch code {
	case domainerror.ErrCodeServiceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateServiceName:
		return http.StatusConflict
	case domainerror.ErrCodeMissingServiceFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salon-manager/backend/internal/application/usecase/client"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
	"github.com/salon-manager/backend/internal/integration/entrypoint/dto"
)

// ClientController handles client endpoints.
type ClientController struct {
	createUseCase *client.CreateClientUseCase
	listUseCase   *client.ListClientsUseCase
	deleteUseCase *client.DeleteClientUseCase
}

// NewClientController creates a new client controller instance.
func NewClientController(
	createUseCase *client.CreateClientUseCase,
	listUseCase *client.ListClientsUseCase,
	deleteUseCase *client.DeleteClientUseCase,
) *ClientController {
	return &ClientController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /clients requests.
func (c *ClientController) Create(ctx *gin.Context) {
	var req dto.CreateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingClientFullname),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), client.CreateClientInput{
		Fullname:  req.Fullname,
		Phone:     req.Phone,
		Allergies: req.Allergies,
	})
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClientResponse(output.Client))
}

// List handles GET /clients requests.
func (c *ClientController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}

	clients := make([]dto.ClientResponse, len(output.Clients))
	for i, cl := range output.Clients {
		clients[i] = dto.ToClientResponse(cl)
	}

	ctx.JSON(http.StatusOK, dto.ClientListResponse{Clients: clients})
}

// Delete handles DELETE /clients/:id requests.
func (c *ClientController) Delete(ctx *gin.Context) {
	clientID, ok := parsePathUUID(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), client.DeleteClientInput{
		ClientID: clientID,
	}); err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Client deleted"})
}

// handleClientError handles client errors and returns appropriate HTTP responses.
func (c *ClientController) handleClientError(ctx *gin.Context, err error) {
	var clientErr *domainerror.ClientError
	if errors.As(err, &clientErr) {
		statusCode := http.StatusBadRequest
		if clientErr.Code == domainerror.ErrCodeClientNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: clientErr.Message,
			Code:  string(clientErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

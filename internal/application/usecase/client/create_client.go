// Package client contains client-related use cases.
package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// CreateClientInput represents the input for client creation.
type CreateClientInput struct {
	Fullname  string
	Phone     string
	Allergies string
}

// CreateClientOutput represents the output of client creation.
type CreateClientOutput struct {
	Client *entity.Client
}

// CreateClientUseCase handles client creation logic.
type CreateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewCreateClientUseCase creates a new CreateClientUseCase instance.
func NewCreateClientUseCase(clientRepo adapter.ClientRepository) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client creation.
func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*CreateClientOutput, error) {
	fullname := strings.TrimSpace(input.Fullname)
	if fullname == "" {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeMissingClientFullname,
			"fullname is required",
			domainerror.ErrMissingClientFullname,
		)
	}

	client := entity.NewClient(fullname, input.Phone, input.Allergies)

	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &CreateClientOutput{Client: client}, nil
}

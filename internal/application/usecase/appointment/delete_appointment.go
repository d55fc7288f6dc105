// Package appointment contains appointment-related use cases.
package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/application/adapter"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// DeleteAppointmentInput represents the input for appointment deletion.
type DeleteAppointmentInput struct {
	AppointmentID uuid.UUID
}

// DeleteAppointmentUseCase handles appointment deletion logic.
type DeleteAppointmentUseCase struct {
	appointmentRepo adapter.AppointmentRepository
}

// NewDeleteAppointmentUseCase creates a new DeleteAppointmentUseCase instance.
func NewDeleteAppointmentUseCase(appointmentRepo adapter.AppointmentRepository) *DeleteAppointmentUseCase {
	return &DeleteAppointmentUseCase{
		appointmentRepo: appointmentRepo,
	}
}

// Execute performs the appointment deletion.
func (uc *DeleteAppointmentUseCase) Execute(ctx context.Context, input DeleteAppointmentInput) error {
	if _, err := uc.appointmentRepo.FindByID(ctx, input.AppointmentID); err != nil {
		if errors.Is(err, domainerror.ErrAppointmentNotFound) {
			return domainerror.NewAppointmentError(
				domainerror.ErrCodeAppointmentNotFound,
				"appointment not found",
				domainerror.ErrAppointmentNotFound,
			)
		}
		return fmt.Errorf("failed to find appointment: %w", err)
	}

	if err := uc.appointmentRepo.Delete(ctx, input.AppointmentID); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	return nil
}

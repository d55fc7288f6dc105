// Package appointment contains appointment-related use cases.
package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// SetAppointmentStatusInput represents the input for a status change.
type SetAppointmentStatusInput struct {
	AppointmentID uuid.UUID
	Status        entity.AppointmentStatus
}

// SetAppointmentStatusOutput represents the output of a status change.
type SetAppointmentStatusOutput struct {
	ID          uuid.UUID
	Status      entity.AppointmentStatus
	CompletedAt *time.Time
}

// SetAppointmentStatusUseCase handles appointment status changes.
//
// Any status can be set from any status; there is no transition graph.
// CompletedAt tracks the last completion: it is stamped when moving to
// completed, cleared when moving back to pending, and left untouched when
// moving to absent or cancelled.
type SetAppointmentStatusUseCase struct {
	appointmentRepo adapter.AppointmentRepository
	clock           adapter.Clock
}

// NewSetAppointmentStatusUseCase creates a new SetAppointmentStatusUseCase instance.
func NewSetAppointmentStatusUseCase(
	appointmentRepo adapter.AppointmentRepository,
	clock adapter.Clock,
) *SetAppointmentStatusUseCase {
	return &SetAppointmentStatusUseCase{
		appointmentRepo: appointmentRepo,
		clock:           clock,
	}
}

// Execute performs the status change.
func (uc *SetAppointmentStatusUseCase) Execute(ctx context.Context, input SetAppointmentStatusInput) (*SetAppointmentStatusOutput, error) {
	if !isValidAppointmentStatus(input.Status) {
		return nil, domainerror.NewAppointmentError(
			domainerror.ErrCodeInvalidAppointmentStatus,
			"status must be one of 'pending', 'completed', 'absent' or 'cancelled'",
			domainerror.ErrInvalidAppointmentStatus,
		)
	}

	appointment, err := uc.appointmentRepo.FindByID(ctx, input.AppointmentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAppointmentNotFound) {
			return nil, domainerror.NewAppointmentError(
				domainerror.ErrCodeAppointmentNotFound,
				"appointment not found",
				domainerror.ErrAppointmentNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find appointment: %w", err)
	}

	switch input.Status {
	case entity.AppointmentStatusCompleted:
		now := uc.clock.Now()
		appointment.CompletedAt = &now
	case entity.AppointmentStatusPending:
		appointment.CompletedAt = nil
	}
	appointment.Status = input.Status
	appointment.UpdatedAt = time.Now().UTC()

	if err := uc.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}

	return &SetAppointmentStatusOutput{
		ID:          appointment.ID,
		Status:      appointment.Status,
		CompletedAt: appointment.CompletedAt,
	}, nil
}

// isValidAppointmentStatus checks if the status is a known appointment status.
func isValidAppointmentStatus(status entity.AppointmentStatus) bool {
	switch status {
	case entity.AppointmentStatusPending,
		entity.AppointmentStatusCompleted,
		entity.AppointmentStatusAbsent,
		entity.AppointmentStatusCancelled:
		return true
	}
	return false
}

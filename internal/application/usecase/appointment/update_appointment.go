// Package appointment contains appointment-related use cases.
package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/application/adapter"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// UpdateAppointmentInput represents the input for appointment update.
// Nil fields are left unchanged.
type UpdateAppointmentInput struct {
	AppointmentID  uuid.UUID
	DateString     *string
	Time           *string
	ClientName     *string
	ClientID       *uuid.UUID
	ClearClientID  bool // Set to true to detach the client
	Service        *string
	ServiceID      *uuid.UUID
	ClearServiceID bool // Set to true to detach the catalog service
	Price          *decimal.Decimal
}

// UpdateAppointmentOutput represents the output of appointment update.
type UpdateAppointmentOutput struct {
	Appointment *AppointmentOutput
}

// UpdateAppointmentUseCase handles appointment update logic.
type UpdateAppointmentUseCase struct {
	appointmentRepo adapter.AppointmentRepository
}

// NewUpdateAppointmentUseCase creates a new UpdateAppointmentUseCase instance.
func NewUpdateAppointmentUseCase(appointmentRepo adapter.AppointmentRepository) *UpdateAppointmentUseCase {
	return &UpdateAppointmentUseCase{
		appointmentRepo: appointmentRepo,
	}
}

// Execute performs the appointment update.
func (uc *UpdateAppointmentUseCase) Execute(ctx context.Context, input UpdateAppointmentInput) (*UpdateAppointmentOutput, error) {
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

	if input.DateString != nil {
		if _, err := time.Parse(dateLayout, *input.DateString); err != nil {
			return nil, domainerror.NewAppointmentError(
				domainerror.ErrCodeInvalidAppointmentDate,
				"dateString must be in YYYY-MM-DD format",
				domainerror.ErrInvalidAppointmentDate,
			)
		}
		appointment.DateString = *input.DateString
	}

	if input.Time != nil {
		if _, err := time.Parse(timeLayout, *input.Time); err != nil {
			return nil, domainerror.NewAppointmentError(
				domainerror.ErrCodeInvalidAppointmentDate,
				"time must be in HH:MM format",
				domainerror.ErrInvalidAppointmentDate,
			)
		}
		appointment.Time = *input.Time
	}

	if input.ClientName != nil {
		appointment.ClientName = *input.ClientName
	}

	if input.ClearClientID {
		appointment.ClientID = nil
	} else if input.ClientID != nil {
		appointment.ClientID = input.ClientID
	}

	if input.Service != nil {
		appointment.Service = *input.Service
	}

	if input.ClearServiceID {
		appointment.ServiceID = nil
	} else if input.ServiceID != nil {
		appointment.ServiceID = input.ServiceID
	}

	if input.Price != nil {
		appointment.Price = *input.Price
	}

	appointment.UpdatedAt = time.Now().UTC()

	if err := uc.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	return &UpdateAppointmentOutput{
		Appointment: toAppointmentOutput(appointment),
	}, nil
}

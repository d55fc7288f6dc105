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
	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// CreateAppointmentInput represents the input for appointment creation.
type CreateAppointmentInput struct {
	DateString string
	Time       string
	ClientName string
	ClientID   *uuid.UUID
	Service    string
	ServiceID  *uuid.UUID
	Price      *decimal.Decimal
}

// CreateAppointmentOutput represents the output of appointment creation.
type CreateAppointmentOutput struct {
	Appointment *AppointmentOutput
}

// CreateAppointmentUseCase handles appointment creation logic.
type CreateAppointmentUseCase struct {
	appointmentRepo adapter.AppointmentRepository
	serviceRepo     adapter.ServiceRepository
}

// NewCreateAppointmentUseCase creates a new CreateAppointmentUseCase instance.
func NewCreateAppointmentUseCase(
	appointmentRepo adapter.AppointmentRepository,
	serviceRepo adapter.ServiceRepository,
) *CreateAppointmentUseCase {
	return &CreateAppointmentUseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
	}
}

// Execute performs the appointment creation.
func (uc *CreateAppointmentUseCase) Execute(ctx context.Context, input CreateAppointmentInput) (*CreateAppointmentOutput, error) {
	if input.DateString == "" || input.Time == "" || input.ClientName == "" {
		return nil, domainerror.NewAppointmentError(
			domainerror.ErrCodeMissingAppointmentFields,
			"dateString, time and clientName are required",
			domainerror.ErrMissingAppointmentFields,
		)
	}

	if err := validateDateAndTime(input.DateString, input.Time); err != nil {
		return nil, err
	}

	// Resolve the service. When a catalog service is referenced, its name and
	// price are snapshotted onto the appointment.
	serviceName := input.Service
	price := decimal.Zero
	if input.Price != nil {
		price = *input.Price
	}

	if input.ServiceID != nil {
		service, err := uc.serviceRepo.FindByID(ctx, *input.ServiceID)
		if err != nil {
			if errors.Is(err, domainerror.ErrServiceNotFound) {
				return nil, domainerror.NewAppointmentError(
					domainerror.ErrCodeAppointmentServiceNotFound,
					"service not found",
					domainerror.ErrServiceNotFoundForAppointment,
				)
			}
			return nil, fmt.Errorf("failed to find service: %w", err)
		}
		serviceName = service.Name
		price = service.Price
	} else if serviceName == "" {
		return nil, domainerror.NewAppointmentError(
			domainerror.ErrCodeMissingAppointmentFields,
			"service or serviceId is required",
			domainerror.ErrMissingAppointmentFields,
		)
	}

	appointment := entity.NewAppointment(
		input.DateString,
		input.Time,
		input.ClientName,
		serviceName,
		price,
		input.ClientID,
		input.ServiceID,
	)

	if err := uc.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	return &CreateAppointmentOutput{
		Appointment: toAppointmentOutput(appointment),
	}, nil
}

// validateDateAndTime checks the civil date and wall-clock time formats.
func validateDateAndTime(dateString, timeOfDay string) error {
	if _, err := time.Parse(dateLayout, dateString); err != nil {
		return domainerror.NewAppointmentError(
			domainerror.ErrCodeInvalidAppointmentDate,
			"dateString must be in YYYY-MM-DD format",
			domainerror.ErrInvalidAppointmentDate,
		)
	}
	if _, err := time.Parse(timeLayout, timeOfDay); err != nil {
		return domainerror.NewAppointmentError(
			domainerror.ErrCodeInvalidAppointmentDate,
			"time must be in HH:MM format",
			domainerror.ErrInvalidAppointmentDate,
		)
	}
	return nil
}

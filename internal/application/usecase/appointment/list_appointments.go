// Package appointment contains appointment-related use cases.
package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
)

// AppointmentOutput represents a single appointment in the output.
type AppointmentOutput struct {
	ID          uuid.UUID
	DateString  string
	Time        string
	ClientName  string
	ClientID    *uuid.UUID
	Service     string
	ServiceID   *uuid.UUID
	Price       decimal.Decimal
	Status      entity.AppointmentStatus
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ListAppointmentsInput represents the input for listing appointments.
type ListAppointmentsInput struct {
	// Date filters appointments to a single civil date when set.
	Date *string
}

// ListAppointmentsOutput represents the output of listing appointments.
type ListAppointmentsOutput struct {
	Appointments []*AppointmentOutput
}

// ListAppointmentsUseCase handles listing appointments logic.
type ListAppointmentsUseCase struct {
	appointmentRepo adapter.AppointmentRepository
}

// NewListAppointmentsUseCase creates a new ListAppointmentsUseCase instance.
func NewListAppointmentsUseCase(appointmentRepo adapter.AppointmentRepository) *ListAppointmentsUseCase {
	return &ListAppointmentsUseCase{
		appointmentRepo: appointmentRepo,
	}
}

// Execute performs the appointment listing.
func (uc *ListAppointmentsUseCase) Execute(ctx context.Context, input ListAppointmentsInput) (*ListAppointmentsOutput, error) {
	var (
		appointments []*entity.Appointment
		err          error
	)

	if input.Date != nil {
		appointments, err = uc.appointmentRepo.FindByDate(ctx, *input.Date)
	} else {
		appointments, err = uc.appointmentRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	output := &ListAppointmentsOutput{
		Appointments: make([]*AppointmentOutput, 0, len(appointments)),
	}
	for _, apt := range appointments {
		output.Appointments = append(output.Appointments, toAppointmentOutput(apt))
	}

	return output, nil
}

// toAppointmentOutput converts an appointment entity to its use case output.
func toAppointmentOutput(apt *entity.Appointment) *AppointmentOutput {
	return &AppointmentOutput{
		ID:          apt.ID,
		DateString:  apt.DateString,
		Time:        apt.Time,
		ClientName:  apt.ClientName,
		ClientID:    apt.ClientID,
		Service:     apt.Service,
		ServiceID:   apt.ServiceID,
		Price:       apt.Price,
		Status:      apt.Status,
		CompletedAt: apt.CompletedAt,
		CreatedAt:   apt.CreatedAt,
		UpdatedAt:   apt.UpdatedAt,
	}
}

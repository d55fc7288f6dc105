// Package agenda contains the daily agenda use case.
package agenda

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
)

// GetAgendaInput represents the input for the daily agenda.
type GetAgendaInput struct {
	// Date is the civil date ("YYYY-MM-DD") of the agenda. Empty means today.
	Date string
}

// AgendaAppointment represents a single enriched appointment in the agenda.
type AgendaAppointment struct {
	ID          uuid.UUID
	Time        string
	ClientName  string
	ClientPhone string
	ClientID    *uuid.UUID
	Service     string
	Price       decimal.Decimal
	Status      entity.AppointmentStatus
	CompletedAt *time.Time
	IsPast      bool
	IsCurrent   bool
}

// GetAgendaOutput represents the assembled daily agenda.
type GetAgendaOutput struct {
	Date              string
	Appointments      []*AgendaAppointment
	TotalAppointments int
	PendingCount      int
	CompletedCount    int
	AbsentCount       int
	CancelledCount    int
	TotalRevenue      decimal.Decimal
}

// GetAgendaUseCase assembles the agenda for a single day.
type GetAgendaUseCase struct {
	appointmentRepo adapter.AppointmentRepository
	clientRepo      adapter.ClientRepository
	clock           adapter.Clock
}

// NewGetAgendaUseCase creates a new GetAgendaUseCase instance.
func NewGetAgendaUseCase(
	appointmentRepo adapter.AppointmentRepository,
	clientRepo adapter.ClientRepository,
	clock adapter.Clock,
) *GetAgendaUseCase {
	return &GetAgendaUseCase{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		clock:           clock,
	}
}

// Execute assembles the agenda.
//
// Appointments come back ordered by time ascending. A single pass marks each
// one past or current relative to the salon's wall clock: the first
// appointment whose time has not passed yet is the current one, so at most
// one appointment is ever current. Revenue counts completed appointments
// only.
func (uc *GetAgendaUseCase) Execute(ctx context.Context, input GetAgendaInput) (*GetAgendaOutput, error) {
	now := uc.clock.Now()
	date := input.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}
	currentTime := now.Format("15:04")

	appointments, err := uc.appointmentRepo.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agenda appointments: %w", err)
	}

	phones, err := uc.clientPhones(ctx, appointments)
	if err != nil {
		return nil, err
	}

	output := &GetAgendaOutput{
		Date:              date,
		Appointments:      make([]*AgendaAppointment, 0, len(appointments)),
		TotalAppointments: len(appointments),
		TotalRevenue:      decimal.Zero,
	}

	currentFound := false
	for _, apt := range appointments {
		isPast := apt.Time < currentTime
		isCurrent := !isPast && !currentFound
		if isCurrent {
			currentFound = true
		}

		item := &AgendaAppointment{
			ID:          apt.ID,
			Time:        apt.Time,
			ClientName:  apt.ClientName,
			ClientID:    apt.ClientID,
			Service:     apt.Service,
			Price:       apt.Price,
			Status:      apt.Status,
			CompletedAt: apt.CompletedAt,
			IsPast:      isPast,
			IsCurrent:   isCurrent,
		}
		if apt.ClientID != nil {
			item.ClientPhone = phones[*apt.ClientID]
		}
		output.Appointments = append(output.Appointments, item)

		switch apt.Status {
		case entity.AppointmentStatusPending:
			output.PendingCount++
		case entity.AppointmentStatusCompleted:
			output.CompletedCount++
			output.TotalRevenue = output.TotalRevenue.Add(apt.Price)
		case entity.AppointmentStatusAbsent:
			output.AbsentCount++
		case entity.AppointmentStatusCancelled:
			output.CancelledCount++
		}
	}

	return output, nil
}

// clientPhones loads the phone numbers of the clients referenced by the
// appointments. A dangling client reference is not an error; the phone is
// simply left empty.
func (uc *GetAgendaUseCase) clientPhones(ctx context.Context, appointments []*entity.Appointment) (map[uuid.UUID]string, error) {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, apt := range appointments {
		if apt.ClientID != nil && !seen[*apt.ClientID] {
			seen[*apt.ClientID] = true
			ids = append(ids, *apt.ClientID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	clients, err := uc.clientRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agenda clients: %w", err)
	}

	phones := make(map[uuid.UUID]string, len(clients))
	for _, client := range clients {
		phones[client.ID] = client.Phone
	}
	return phones, nil
}

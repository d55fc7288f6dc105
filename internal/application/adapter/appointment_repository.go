// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// AppointmentRepository defines the interface for appointment persistence operations.
type AppointmentRepository interface {
	// Create creates a new appointment.
	Create(ctx context.Context, appointment *entity.Appointment) error

	// FindByID retrieves an appointment by its ID.
	// Returns domainerror.ErrAppointmentNotFound if no appointment exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)

	// FindAll retrieves all appointments ordered by date and time ascending.
	FindAll(ctx context.Context) ([]*entity.Appointment, error)

	// FindByDate retrieves all appointments for a civil date ("YYYY-MM-DD")
	// ordered by time ascending.
	FindByDate(ctx context.Context, dateString string) ([]*entity.Appointment, error)

	// FindByDateRange retrieves all appointments with date between startDate and
	// endDate inclusive, ordered by date and time descending.
	FindByDateRange(ctx context.Context, startDate, endDate string) ([]*entity.Appointment, error)

	// Update updates an existing appointment.
	Update(ctx context.Context, appointment *entity.Appointment) error

	// Delete removes an appointment.
	Delete(ctx context.Context, id uuid.UUID) error
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the lifecycle status of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusAbsent    AppointmentStatus = "absent"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a scheduled salon appointment.
//
// DateString and Time are stored as civil date ("YYYY-MM-DD") and wall-clock
// time ("HH:MM") strings in the salon's timezone. Both formats sort
// lexicographically in chronological order, which the agenda and revenue
// queries rely on.
type Appointment struct {
	ID          uuid.UUID
	DateString  string
	Time        string
	ClientName  string
	ClientID    *uuid.UUID
	Service     string
	ServiceID   *uuid.UUID
	Price       decimal.Decimal
	Status      AppointmentStatus
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewAppointment creates a new Appointment in pending status.
func NewAppointment(dateString, timeOfDay, clientName, service string, price decimal.Decimal, clientID, serviceID *uuid.UUID) *Appointment {
	now := time.Now().UTC()
	return &Appointment{
		ID:         uuid.New(),
		DateString: dateString,
		Time:       timeOfDay,
		ClientName: clientName,
		ClientID:   clientID,
		Service:    service,
		ServiceID:  serviceID,
		Price:      price,
		Status:     AppointmentStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

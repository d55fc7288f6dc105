// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
	"github.com/salon-manager/backend/internal/integration/persistence/model"
)

// appointmentRepository implements the adapter.AppointmentRepository interface.
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository instance.
func NewAppointmentRepository(db *gorm.DB) adapter.AppointmentRepository {
	return &appointmentRepository{
		db: db,
	}
}

// Create creates a new appointment in the database.
func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	appointmentModel := model.AppointmentFromEntity(appointment)
	result := r.db.WithContext(ctx).Create(appointmentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an appointment by its ID.
func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointmentModel model.AppointmentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&appointmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAppointmentNotFound
		}
		return nil, result.Error
	}
	return appointmentModel.ToEntity(), nil
}

// FindAll retrieves all appointments ordered chronologically.
func (r *appointmentRepository) FindAll(ctx context.Context) ([]*entity.Appointment, error) {
	var appointmentModels []model.AppointmentModel
	result := r.db.WithContext(ctx).
		Order("date_string ASC, time ASC").
		Find(&appointmentModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toAppointmentEntities(appointmentModels), nil
}

// FindByDate retrieves the appointments of a single day ordered by time.
func (r *appointmentRepository) FindByDate(ctx context.Context, dateString string) ([]*entity.Appointment, error) {
	var appointmentModels []model.AppointmentModel
	result := r.db.WithContext(ctx).
		Where("date_string = ?", dateString).
		Order("time ASC").
		Find(&appointmentModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toAppointmentEntities(appointmentModels), nil
}

// FindByDateRange retrieves the appointments within an inclusive date range,
// most recent first.
func (r *appointmentRepository) FindByDateRange(ctx context.Context, startDate, endDate string) ([]*entity.Appointment, error) {
	var appointmentModels []model.AppointmentModel
	result := r.db.WithContext(ctx).
		Where("date_string BETWEEN ? AND ?", startDate, endDate).
		Order("date_string DESC, time DESC").
		Find(&appointmentModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toAppointmentEntities(appointmentModels), nil
}

// Update updates an existing appointment in the database.
func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	appointmentModel := model.AppointmentFromEntity(appointment)
	result := r.db.WithContext(ctx).
		Model(&model.AppointmentModel{}).
		Where("id = ?", appointment.ID).
		Select("*").
		Omit("created_at").
		Updates(appointmentModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAppointmentNotFound
	}
	return nil
}

// Delete removes an appointment from the database.
func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AppointmentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAppointmentNotFound
	}
	return nil
}

func toAppointmentEntities(models []model.AppointmentModel) []*entity.Appointment {
	appointments := make([]*entity.Appointment, len(models))
	for i, m := range models {
		appointments[i] = m.ToEntity()
	}
	return appointments
}

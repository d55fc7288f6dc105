// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/salon-manager/backend/internal/application/usecase/dashboard"
	"github.com/salon-manager/backend/internal/domain/entity"
	"github.com/salon-manager/backend/internal/integration/persistence/model"
)

// dashboardRepository implements the dashboard.Repository interface with
// SQL-side aggregation.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.Repository {
	return &dashboardRepository{
		db: db,
	}
}

// FindNextPending returns the earliest pending appointment at or after the
// given date and time, or nil when none is scheduled.
func (r *dashboardRepository) FindNextPending(ctx context.Context, dateString, timeString string) (*entity.Appointment, error) {
	var appointmentModel model.AppointmentModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(entity.AppointmentStatusPending)).
		Where("date_string > ? OR (date_string = ? AND time >= ?)", dateString, dateString, timeString).
		Order("date_string ASC, time ASC").
		First(&appointmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find next pending appointment: %w", result.Error)
	}
	return appointmentModel.ToEntity(), nil
}

// CompletedStatsForDate returns the count and summed price of completed
// appointments on the given date.
func (r *dashboardRepository) CompletedStatsForDate(ctx context.Context, dateString string) (int, decimal.Decimal, error) {
	var stats struct {
		Total  int             `gorm:"column:total"`
		Income decimal.Decimal `gorm:"column:income"`
	}

	err := r.db.WithContext(ctx).
		Table("appointments").
		Select("COUNT(*) as total, COALESCE(SUM(price), 0) as income").
		Where("date_string = ?", dateString).
		Where("status = ?", string(entity.AppointmentStatusCompleted)).
		Scan(&stats).Error
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("failed to get completed stats: %w", err)
	}

	return stats.Total, stats.Income, nil
}

// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// Repository defines the aggregate queries the dashboard needs.
type Repository interface {
	// FindNextPending returns the earliest pending appointment scheduled at or
	// after the given civil date and wall-clock time, ordered by date then
	// time ascending. Returns (nil, nil) when there is none.
	FindNextPending(ctx context.Context, dateString, timeString string) (*entity.Appointment, error)

	// CompletedStatsForDate returns the count and summed price of completed
	// appointments on the given civil date.
	CompletedStatsForDate(ctx context.Context, dateString string) (int, decimal.Decimal, error)
}

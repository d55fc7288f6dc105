// Package revenue contains the revenue report use cases.
package revenue

import (
	"fmt"
	"time"
)

// Period represents a revenue report aggregation period.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// IsValidPeriod checks if the period is a known report period.
func IsValidPeriod(period Period) bool {
	switch period {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// DateRangeFor returns the inclusive civil date range ("YYYY-MM-DD") of the
// period containing the anchor date.
//
// Weeks start on Monday, so a Sunday anchor belongs to the week opened by the
// preceding Monday. Months and years follow the calendar.
func DateRangeFor(period Period, anchor time.Time) (startDate, endDate string) {
	const layout = "2006-01-02"

	switch period {
	case PeriodWeek:
		weekday := int(anchor.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		monday := anchor.AddDate(0, 0, -(weekday - 1))
		sunday := monday.AddDate(0, 0, 6)
		return monday.Format(layout), sunday.Format(layout)

	case PeriodMonth:
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		last := first.AddDate(0, 1, -1)
		return first.Format(layout), last.Format(layout)

	case PeriodYear:
		return fmt.Sprintf("%04d-01-01", anchor.Year()), fmt.Sprintf("%04d-12-31", anchor.Year())

	default: // day
		day := anchor.Format(layout)
		return day, day
	}
}

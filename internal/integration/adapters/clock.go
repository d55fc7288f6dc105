// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"
	"time"

	"github.com/salon-manager/backend/internal/application/adapter"
)

// salonClock implements adapter.Clock in the salon's local timezone so that
// "today" and "now" line up with the salon's working day rather than UTC.
type salonClock struct {
	location *time.Location
}

// NewSalonClock creates a clock pinned to the given IANA timezone.
func NewSalonClock(timezone string) (adapter.Clock, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}
	return &salonClock{location: location}, nil
}

// Now returns the current time in the salon timezone.
func (c *salonClock) Now() time.Time {
	return time.Now().In(c.location)
}

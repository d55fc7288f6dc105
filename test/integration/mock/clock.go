package mock

import (
	"sync"
	"time"
)

// Clock is a settable clock for tests. It implements the application's
// Clock adapter and stays frozen at the configured instant.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock creates a clock frozen at the current time.
func NewClock() *Clock {
	return &Clock{now: time.Now()}
}

// Set freezes the clock at the given instant.
func (c *Clock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Now returns the configured instant.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

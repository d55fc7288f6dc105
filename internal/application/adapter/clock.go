// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import "time"

// Clock provides the current time in the salon's timezone. Agenda, dashboard
// and revenue calculations all bucket appointments by the salon's local civil
// date, so "now" must never come from the server's own timezone.
type Clock interface {
	// Now returns the current time in the salon's timezone.
	Now() time.Time
}

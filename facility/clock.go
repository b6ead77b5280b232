package facility

import "time"

// Clock abstracts time for the dispatch loop. This allows injecting a
// mock clock for deterministic testing.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// NewTimer creates a timer that fires after the given duration.
	NewTimer(d time.Duration) *time.Timer
}

// SystemClock implements Clock using the actual system time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// NewTimer creates a timer using the standard library.
func (SystemClock) NewTimer(d time.Duration) *time.Timer {
	return time.NewTimer(d)
}

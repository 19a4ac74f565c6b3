package clock

import "time"

// Clock abstracts the wall clock so timestamps (account creation, last
// login, play times) can be controlled in tests.
type Clock interface {
	Now() time.Time
}

// RealClock delegates to the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

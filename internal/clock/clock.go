// Package clock abstracts the current time so token expiry and duration parsing
// can be tested against a fixed instant.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns time.Now.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock frozen at a single instant.
type Fixed time.Time

// Now returns the frozen instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Ensure both types implement Clock.
var (
	_ Clock = RealClock{}
	_ Clock = Fixed{}
)

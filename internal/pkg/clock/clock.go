// Package clock provides time for save records so tests can pin it.
package clock

import "time"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time in UTC
func (c *Real) Now() time.Time {
	return time.Now().UTC()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed always returns the same instant.
type Fixed struct {
	At time.Time
}

// Now returns the fixed instant
func (c Fixed) Now() time.Time {
	return c.At
}

package core

import "time"

// TimeProvider abstracts clock access so business logic stays testable
// with a fixed time source.
type TimeProvider interface {
	// Now returns the current time
	Now() time.Time
}

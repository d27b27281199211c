package core

import "time"

// TimeProvider abstracts the clock so timestamps and expiry are testable
type TimeProvider interface {
	Now() time.Time
}

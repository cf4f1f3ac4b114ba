package timer

import "time"

// Clock provides the current time. The engine never calls time.Now
// directly so tests can drive it with a manual clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock implementation.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

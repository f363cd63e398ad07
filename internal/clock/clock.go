// Package clock supplies the current time to components that compute
// time windows or elapsed durations, so tests can pin "now".
package clock

import "time"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// System returns a Clock backed by the wall clock.
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type fixedClock struct {
	t time.Time
}

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

func (c fixedClock) Now() time.Time {
	return c.t
}

// Func adapts a function to the Clock interface.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}

// SinceMs returns the whole milliseconds elapsed on c since start.
func SinceMs(c Clock, start time.Time) int64 {
	return c.Now().Sub(start).Milliseconds()
}

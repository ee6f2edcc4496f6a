package core

import "time"

// Clock abstracts time for the countdown engine so tests can drive ticks
// without waiting wall-clock seconds.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// systemClock implements Clock with the real time package.
type systemClock struct{}

func (systemClock) Now() time.Time                         { return time.Now() }
func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// NewSystemClock returns a Clock backed by wall-clock time.
func NewSystemClock() Clock { return systemClock{} }

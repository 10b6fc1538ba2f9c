package clock

import "time"

// Clock supplies the current time and timers to components that wait on
// the wall clock. Substituting a Clock lets tests drive time
// deterministically instead of sleeping.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// NewTimer returns a Timer that fires once after duration d.
	// A non-positive d fires the timer immediately.
	NewTimer(d time.Duration) Timer
}

// Timer works just like time.Timer: it delivers the fire time on C exactly
// once unless stopped first.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// System returns the Clock backed by the standard time package.
func System() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) NewTimer(d time.Duration) Timer {
	return &systemTimer{timer: time.NewTimer(d)}
}

type systemTimer struct {
	timer *time.Timer
}

func (t *systemTimer) C() <-chan time.Time {
	return t.timer.C
}

func (t *systemTimer) Stop() bool {
	return t.timer.Stop()
}

package clock

import (
	"sync"
	"time"
)

// Mock is a Clock whose time only moves when the test advances it. Timers
// created from it fire synchronously inside Advance or Set once their
// deadline is reached, so tests can step through timing-sensitive code
// without real sleeps.
type Mock struct {
	mu      sync.Mutex
	now     time.Time
	timers  []*mockTimer
	created int
}

// NewMock creates a Mock starting at the Unix epoch.
func NewMock() *Mock {
	return &Mock{now: time.Unix(0, 0).UTC()}
}

// NewMockAt creates a Mock starting at the given time.
func NewMockAt(start time.Time) *Mock {
	return &Mock{now: start}
}

// Now returns the current mock time.
func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// NewTimer returns a Timer that fires when the mock clock reaches now+d.
// A non-positive d fires it before NewTimer returns.
func (m *Mock) NewTimer(d time.Duration) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.created++
	t := &mockTimer{
		deadline: m.now.Add(d),
		ch:       make(chan time.Time, 1),
	}
	if d <= 0 {
		t.fire(m.now)
		return t
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the mock clock forward by d and fires every timer whose
// deadline has been reached.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.advanceTo(m.now.Add(d))
}

// Set moves the mock clock to a specific time, firing timers the move
// overtakes. Moving backwards never un-fires a timer.
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.advanceTo(t)
}

// TimerCount returns the total number of timers created so far. Tests use
// it to detect that a component woke up and armed a fresh timer.
func (m *Mock) TimerCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.created
}

func (m *Mock) advanceTo(t time.Time) {
	m.now = t

	remaining := m.timers[:0]
	for _, tm := range m.timers {
		if !tm.deadline.After(m.now) {
			tm.fire(m.now)
		}
		if !tm.expired() {
			remaining = append(remaining, tm)
		}
	}
	m.timers = remaining
}

type mockTimer struct {
	deadline time.Time
	ch       chan time.Time

	mu      sync.Mutex
	fired   bool
	stopped bool
}

// fire delivers at most once; the channel is buffered so delivery never
// blocks the clock.
func (t *mockTimer) fire(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fired || t.stopped {
		return
	}
	t.fired = true
	t.ch <- now
}

func (t *mockTimer) expired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fired || t.stopped
}

func (t *mockTimer) C() <-chan time.Time {
	return t.ch
}

func (t *mockTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

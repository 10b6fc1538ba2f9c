package timer

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/vnykmshr/gotick/pkg/clock"
)

// DefaultPollInterval caps how long the worker sleeps between queue checks.
const DefaultPollInterval = time.Second

// Config holds timer configuration.
type Config struct {
	// Name identifies this timer in logs and metrics.
	// If empty, a random name is generated.
	Name string

	// PollInterval caps the worker's sleep between queue checks. Tasks
	// scheduled while the worker sleeps are noticed at the latest after
	// this interval. Defaults to DefaultPollInterval.
	PollInterval time.Duration

	// Clock is the time source. If nil, the system clock is used.
	// Tests inject clock.Mock here to drive the timer deterministically.
	Clock clock.Clock

	// Logger receives lifecycle and execution events.
	// The zero value discards all output.
	Logger zerolog.Logger

	// OnFatalError is invoked with the task's error when a task failure
	// shuts the timer down. It runs on the worker goroutine, before the
	// stop handshake is released. May be nil.
	OnFatalError func(error)

	// Location is the timezone for cron schedule evaluation.
	// Defaults to time.Local.
	Location *time.Location
}

/*
Package gotick provides a single-threaded background timer for deferred and
recurring task execution.

Core (pkg/timer):
  - timer: Ordered task queue drained by one worker goroutine
  - One-shot, recurring, jittered, and cron-based scheduling
  - Synchronous Stop with fatal-error shutdown semantics

Supporting packages:
  - pkg/clock: Time source abstraction with a controllable mock for tests
  - pkg/metrics: Prometheus instrumentation for timers
  - pkg/common/errors: Error taxonomy shared across the library

Example usage:

	import (
		"context"
		"time"

		"github.com/vnykmshr/gotick/pkg/timer"
	)

	tm := timer.New()
	defer tm.Stop()

	task := timer.TaskFunc(func(ctx context.Context) error {
		// refresh cache, emit heartbeat, ...
		return nil
	})

	tm.Schedule(task, 5*time.Second)           // once, in 5s
	tm.ScheduleRecurring(task, 0, time.Minute) // every minute
	tm.ScheduleCron("0 0 3 * * *", task)       // 3:00 AM daily
*/
package gotick

/*
Package timer provides a single-worker background timer for Go applications.

A Timer owns one goroutine and an ordered queue of tasks. The worker pops
tasks as they come due and executes them one at a time, so tasks never
overlap and a slow task delays everything behind it. Ties between tasks due
at the same instant resolve in scheduling order.

Basic Usage:

	tm := timer.New()
	defer tm.Stop()

	task := timer.TaskFunc(func(ctx context.Context) error {
		fmt.Println("Task executed!")
		return nil
	})

	// Run once after a delay
	tm.Schedule(task, 5*time.Second)

	// Run after 5 seconds, then every 30 seconds
	tm.ScheduleRecurring(task, 5*time.Second, 30*time.Second)

	// Same cadence, spread out by up to 5 seconds per occurrence
	tm.ScheduleRecurringWithJitter(task, 5*time.Second, 30*time.Second, 5*time.Second)

	// Run on a cron schedule
	tm.ScheduleCron("0 0 2 * * *", task)

Timing Model:

The worker sleeps until the next task is due, but never longer than the
configured poll interval (default one second). Scheduling a task does not
wake a sleeping worker; the new task is noticed when the worker next wakes,
at the latest after one poll interval. Tasks therefore run no earlier than
their due time and no later than roughly one poll interval past it, plus
whatever tasks ahead of them take to execute.

Recurring tasks re-arm when an occurrence finishes: the next due time is
computed from the clock after execution, so the cadence is interval plus
execution time rather than a fixed grid.

Error Handling:

A task error is fatal. The worker invokes the OnFatalError callback if one
is configured, stops, and closes the Done channel; later scheduling calls
and Stop return ErrStopped. Panics inside tasks are recovered and treated
the same way. A task that returns its context's Canceled error while the
timer is stopping is not a failure; that is the normal result of Stop
interrupting it.

Tasks that should survive their own failures handle errors themselves:

	resilient := timer.TaskFunc(func(ctx context.Context) error {
		if err := doWork(ctx); err != nil {
			log.Printf("work failed: %v", err)
		}
		return nil
	})

Lifecycle:

Stop is synchronous: it cancels the context passed to a running task, waits
for the worker to exit, and returns nil exactly once. A second Stop returns
ErrStopped. Never call Stop from inside a task; the worker would be waiting
for itself to exit.

Testing:

Inject a mock clock to drive the timer deterministically:

	clk := clock.NewMock()
	tm := timer.NewWithConfig(timer.Config{Clock: clk})

	tm.Schedule(task, 500*time.Millisecond)
	clk.Advance(time.Second) // the worker wakes and runs the task

IsWaiting reports whether the worker is parked on its wake timer, which
lets tests synchronize with the worker between clock advances.

Observability:

NewWithMetrics wraps the timer with Prometheus instrumentation; see the
metrics package for the exposed series. Configure a zerolog logger to get
per-task execution logs:

	tm := timer.NewWithConfig(timer.Config{
		Name:   "billing",
		Logger: log.With().Str("component", "billing").Logger(),
	})
*/
package timer

package timer

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/gotick/pkg/metrics"
)

// MetricsTimer wraps a Timer with Prometheus metrics collection.
type MetricsTimer struct {
	timer    Timer
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a timer with metrics enabled.
func NewWithMetrics(name string) Timer {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithConfigAndMetrics(Config{Name: name}, config)
}

// NewWithConfigAndMetrics creates a timer with custom config and metrics.
func NewWithConfigAndMetrics(config Config, metricsConfig metrics.Config) Timer {
	base := NewWithConfig(config)

	if !metricsConfig.Enabled {
		return base
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	mt := &MetricsTimer{
		timer:    base,
		name:     base.Name(),
		registry: registry,
		enabled:  true,
	}

	mt.updateMetrics()

	return mt
}

// updateMetrics refreshes the gauges that track current state.
func (mt *MetricsTimer) updateMetrics() {
	if !mt.enabled {
		return
	}

	mt.registry.PendingTasks.WithLabelValues(mt.name).Set(float64(mt.timer.Pending()))

	up := 1.0
	select {
	case <-mt.timer.Done():
		up = 0
	default:
	}
	mt.registry.TimerUp.WithLabelValues(mt.name).Set(up)
}

// Schedule runs task once after delay, counting it as kind "once".
func (mt *MetricsTimer) Schedule(task Task, delay time.Duration) error {
	err := mt.timer.Schedule(mt.wrap(task), delay)
	mt.recordScheduled(err, "once")
	return err
}

// ScheduleWithJitter runs task once after a jittered delay.
func (mt *MetricsTimer) ScheduleWithJitter(task Task, delay, jitter time.Duration) error {
	err := mt.timer.ScheduleWithJitter(mt.wrap(task), delay, jitter)
	mt.recordScheduled(err, "once")
	return err
}

// ScheduleRecurring runs task every interval, counting it as kind "recurring".
func (mt *MetricsTimer) ScheduleRecurring(task Task, delay, interval time.Duration) error {
	err := mt.timer.ScheduleRecurring(mt.wrap(task), delay, interval)
	mt.recordScheduled(err, "recurring")
	return err
}

// ScheduleRecurringWithJitter runs task on a jittered recurring cadence.
func (mt *MetricsTimer) ScheduleRecurringWithJitter(task Task, delay, interval, jitter time.Duration) error {
	err := mt.timer.ScheduleRecurringWithJitter(mt.wrap(task), delay, interval, jitter)
	mt.recordScheduled(err, "recurring")
	return err
}

// ScheduleCron runs task on a cron schedule, counting it as kind "cron".
func (mt *MetricsTimer) ScheduleCron(expr string, task Task) error {
	err := mt.timer.ScheduleCron(expr, mt.wrap(task))
	mt.recordScheduled(err, "cron")
	return err
}

func (mt *MetricsTimer) recordScheduled(err error, kind string) {
	if mt.enabled && err == nil {
		mt.registry.TasksScheduled.WithLabelValues(mt.name, kind).Inc()
	}
	mt.updateMetrics()
}

// wrap decorates a task so its executions are observed. A nil task passes
// through so the underlying timer rejects it.
func (mt *MetricsTimer) wrap(task Task) Task {
	if task == nil {
		return nil
	}
	return &metricsTask{original: task, timer: mt}
}

// metricsTask wraps a Task to collect execution metrics. Recurring tasks
// keep their wrapper across occurrences, so every execution is observed.
type metricsTask struct {
	original Task
	timer    *MetricsTimer
}

// Execute runs the original task and records metrics.
func (mt *metricsTask) Execute(ctx context.Context) error {
	start := time.Now()

	err := mt.original.Execute(ctx)

	if mt.timer.enabled {
		mt.timer.registry.TaskExecutionDuration.WithLabelValues(mt.timer.name).Observe(time.Since(start).Seconds())
		mt.timer.registry.TasksExecuted.WithLabelValues(mt.timer.name).Inc()

		if err != nil {
			mt.timer.registry.TasksFailed.WithLabelValues(mt.timer.name).Inc()
		} else {
			mt.timer.registry.TasksCompleted.WithLabelValues(mt.timer.name).Inc()
		}

		mt.timer.updateMetrics()
	}

	return err
}

// Stop shuts down the underlying timer and marks it down.
func (mt *MetricsTimer) Stop() error {
	err := mt.timer.Stop()
	mt.updateMetrics()
	return err
}

// Done returns the underlying timer's done channel.
func (mt *MetricsTimer) Done() <-chan struct{} {
	return mt.timer.Done()
}

// IsWaiting reports whether the underlying worker is parked.
func (mt *MetricsTimer) IsWaiting() bool {
	return mt.timer.IsWaiting()
}

// Pending returns the number of queued tasks.
func (mt *MetricsTimer) Pending() int {
	pending := mt.timer.Pending()

	if mt.enabled {
		mt.registry.PendingTasks.WithLabelValues(mt.name).Set(float64(pending))
	}

	return pending
}

// List returns a snapshot of queued tasks.
func (mt *MetricsTimer) List() []PendingTask {
	return mt.timer.List()
}

// Name returns the underlying timer's name.
func (mt *MetricsTimer) Name() string {
	return mt.name
}

// EnableMetrics enables metrics collection.
func (mt *MetricsTimer) EnableMetrics(config metrics.Config) error {
	mt.enabled = config.Enabled

	if config.Registry != nil {
		mt.registry = metrics.NewRegistry(config.Registry)
	}

	if mt.enabled {
		mt.updateMetrics()
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (mt *MetricsTimer) DisableMetrics() {
	mt.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (mt *MetricsTimer) MetricsEnabled() bool {
	return mt.enabled
}

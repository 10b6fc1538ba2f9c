// Package metrics provides Prometheus instrumentation for gotick timers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for gotick timers.
type Registry struct {
	// TasksScheduled counts scheduling calls by kind ("once", "recurring",
	// "cron"). Internal re-arms of recurring tasks are not counted.
	TasksScheduled *prometheus.CounterVec

	// TasksExecuted counts every callback invocation, regardless of outcome.
	TasksExecuted *prometheus.CounterVec

	// TasksCompleted counts callback invocations that returned nil.
	TasksCompleted *prometheus.CounterVec

	// TasksFailed counts callback invocations that returned an error or
	// panicked.
	TasksFailed *prometheus.CounterVec

	// TaskExecutionDuration observes wall-clock time spent in callbacks.
	TaskExecutionDuration *prometheus.HistogramVec

	// PendingTasks tracks the number of tasks currently queued.
	PendingTasks *prometheus.GaugeVec

	// TimerUp is 1 while the timer's worker is running and 0 after it
	// stops, whether by Stop or by a fatal callback error.
	TimerUp *prometheus.GaugeVec
}

// DefaultRegistry is the default metrics registry used by gotick timers.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		TasksScheduled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gotick",
				Subsystem: "timer",
				Name:      "tasks_scheduled_total",
				Help:      "Total number of tasks scheduled",
			},
			[]string{"timer_name", "kind"},
		),

		TasksExecuted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gotick",
				Subsystem: "timer",
				Name:      "tasks_executed_total",
				Help:      "Total number of task executions",
			},
			[]string{"timer_name"},
		),

		TasksCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gotick",
				Subsystem: "timer",
				Name:      "tasks_completed_total",
				Help:      "Total number of tasks completed successfully",
			},
			[]string{"timer_name"},
		),

		TasksFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gotick",
				Subsystem: "timer",
				Name:      "tasks_failed_total",
				Help:      "Total number of tasks that failed",
			},
			[]string{"timer_name"},
		),

		TaskExecutionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gotick",
				Subsystem: "timer",
				Name:      "task_duration_seconds",
				Help:      "Time spent executing tasks",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"timer_name"},
		),

		PendingTasks: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gotick",
				Subsystem: "timer",
				Name:      "pending_tasks",
				Help:      "Number of tasks currently queued",
			},
			[]string{"timer_name"},
		),

		TimerUp: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gotick",
				Subsystem: "timer",
				Name:      "up",
				Help:      "Whether the timer worker is running (1) or stopped (0)",
			},
			[]string{"timer_name"},
		),
	}
}

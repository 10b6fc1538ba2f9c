// Package metrics provides Prometheus instrumentation for gotick timers.
//
// This package enables monitoring and observability for gotick's background
// timers through Prometheus metrics.
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructors:
//
//	tm := timer.NewWithMetrics("billing")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//
//	tm := timer.NewWithConfigAndMetrics(
//		timer.Config{Name: "billing"},
//		config,
//	)
//
// # Available Metrics
//
//   - gotick_timer_tasks_scheduled_total: Total number of tasks scheduled
//   - gotick_timer_tasks_executed_total: Total number of task executions
//   - gotick_timer_tasks_completed_total: Total number of tasks completed successfully
//   - gotick_timer_tasks_failed_total: Total number of tasks that failed
//   - gotick_timer_task_duration_seconds: Time spent executing tasks
//   - gotick_timer_pending_tasks: Number of tasks currently queued
//   - gotick_timer_up: Whether the timer worker is running
//
// # Labels
//
// Metrics include relevant labels for filtering and aggregation:
//
//   - timer_name: User-provided name for the timer instance
//   - kind: How the task was scheduled ("once", "recurring", or "cron")
//
// # Runtime Control
//
// Components implementing the Instrumentable interface support runtime control:
//
//	tm := timer.NewWithMetrics("billing")
//	tm.DisableMetrics()           // Stop collecting metrics
//	tm.EnableMetrics(config)      // Re-enable with new config
//	enabled := tm.MetricsEnabled() // Check current state
//
// # Performance
//
// Metrics collection is designed for minimal overhead: metrics are updated
// only when tasks are scheduled or executed, with no background goroutines
// of its own.
package metrics

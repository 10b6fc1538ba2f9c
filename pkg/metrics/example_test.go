package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Example_basicUsage demonstrates basic metrics configuration.
func Example_basicUsage() {
	// Create a separate registry for this test
	testRegistry := prometheus.NewRegistry()
	registry := NewRegistry(testRegistry)

	// Example of accessing metrics
	registry.TasksScheduled.WithLabelValues("billing", "once").Add(10)
	registry.TasksExecuted.WithLabelValues("billing").Add(8)
	registry.TasksCompleted.WithLabelValues("billing").Add(7)
	registry.TasksFailed.WithLabelValues("billing").Add(1)

	fmt.Println("Metrics updated successfully")

	// Output:
	// Metrics updated successfully
}

// Example_customRegistry demonstrates using a custom Prometheus registry.
func Example_customRegistry() {
	// Create a custom registry
	customRegistry := prometheus.NewRegistry()

	config := Config{
		Enabled:  true,
		Registry: customRegistry,
	}

	// Create metrics registry with custom config
	registry := NewRegistry(config.Registry)

	// Test the registry
	registry.TasksScheduled.WithLabelValues("reports", "cron").Add(12)
	registry.PendingTasks.WithLabelValues("reports").Set(3)
	registry.TimerUp.WithLabelValues("reports").Set(1)

	fmt.Printf("Custom registry enabled: %v\n", config.Enabled)
	fmt.Println("Custom registry configured with gotick metrics")

	// Output:
	// Custom registry enabled: true
	// Custom registry configured with gotick metrics
}

// Example_metricsServer demonstrates setting up a metrics HTTP server.
func Example_metricsServer() {
	// In a real application, you would start a metrics server:
	//
	// http.Handle("/metrics", promhttp.Handler())
	// log.Fatal(http.ListenAndServe(":8080", nil))
	//
	// Available metrics would include:
	// - gotick_timer_tasks_scheduled_total{timer_name="billing",kind="recurring"}
	// - gotick_timer_tasks_executed_total{timer_name="billing"}
	// - gotick_timer_pending_tasks{timer_name="billing"}
	// - gotick_timer_up{timer_name="billing"}
	// And more...

	fmt.Println("Metrics available at /metrics endpoint")
	fmt.Println("See examples/metrics/main.go for a complete demonstration")

	// Output:
	// Metrics available at /metrics endpoint
	// See examples/metrics/main.go for a complete demonstration
}

// Example_configuration demonstrates different metrics configurations.
func Example_configuration() {
	// Default configuration
	defaultConfig := DefaultConfig()
	fmt.Printf("Default enabled: %v\n", defaultConfig.Enabled)
	fmt.Printf("Default namespace: %s\n", defaultConfig.Namespace)

	// Custom configuration
	customConfig := Config{
		Enabled:   false,
		Namespace: "myapp",
	}
	fmt.Printf("Custom enabled: %v\n", customConfig.Enabled)
	fmt.Printf("Custom namespace: %s\n", customConfig.Namespace)

	// Output:
	// Default enabled: true
	// Default namespace: gotick
	// Custom enabled: false
	// Custom namespace: myapp
}

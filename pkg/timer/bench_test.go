package timer

import (
	"context"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vnykmshr/gotick/pkg/clock"
)

// newBenchTimer creates a timer on a mock clock so benchmarks never block on
// real time.
func newBenchTimer(b *testing.B) (*clock.Mock, Timer) {
	b.Helper()

	clk := clock.NewMock()
	tm := NewWithConfig(Config{Clock: clk, Location: time.UTC})
	b.Cleanup(func() { _ = tm.Stop() })
	return clk, tm
}

// BenchmarkSchedule measures the cost of queueing a one-shot task
func BenchmarkSchedule(b *testing.B) {
	_, tm := newBenchTimer(b)
	task := TaskFunc(func(ctx context.Context) error { return nil })

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tm.Schedule(task, time.Hour)
	}
}

// BenchmarkScheduleWithJitter measures queueing with a jitter draw
func BenchmarkScheduleWithJitter(b *testing.B) {
	_, tm := newBenchTimer(b)
	task := TaskFunc(func(ctx context.Context) error { return nil })

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tm.ScheduleWithJitter(task, time.Hour, time.Minute)
	}
}

// BenchmarkList measures snapshotting a loaded queue
func BenchmarkList(b *testing.B) {
	_, tm := newBenchTimer(b)
	task := TaskFunc(func(ctx context.Context) error { return nil })
	for i := 0; i < 1000; i++ {
		_ = tm.Schedule(task, time.Hour)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tm.List()
	}
}

// BenchmarkQueuePushPop measures the raw heap operations
func BenchmarkQueuePushPop(b *testing.B) {
	base := time.Unix(0, 0).UTC()
	q := newTaskQueue()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.push(&entry{due: base.Add(time.Duration(i%1000) * time.Second), seq: uint64(i)})
		if q.len() > 512 {
			q.pop()
		}
	}
}

// BenchmarkExecutionThroughput measures how fast the worker drains a backlog
// of due tasks
func BenchmarkExecutionThroughput(b *testing.B) {
	clk, tm := newBenchTimer(b)

	var executed int64
	done := make(chan struct{})
	n := int64(b.N)
	task := TaskFunc(func(ctx context.Context) error {
		if atomic.AddInt64(&executed, 1) == n {
			close(done)
		}
		return nil
	})

	for i := 0; i < b.N; i++ {
		_ = tm.Schedule(task, 0)
	}
	for !tm.IsWaiting() {
		runtime.Gosched()
	}

	b.ResetTimer()
	clk.Advance(time.Second)
	<-done
}

package timer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vnykmshr/gotick/internal/testutil"
	"github.com/vnykmshr/gotick/pkg/clock"
	gterrors "github.com/vnykmshr/gotick/pkg/common/errors"
)

func TestScheduleCronEveryFiveSeconds(t *testing.T) {
	clk := clock.NewMock()
	tm := newTestTimer(t, clk, Config{})
	waitParked(t, clk, tm, 1)

	tracker := testutil.NewCallbackTracker()
	start := clk.Now()

	if err := tm.ScheduleCron("*/5 * * * * *", TaskFunc(func(ctx context.Context) error {
		tracker.Mark(clk.Now())
		return nil
	})); err != nil {
		t.Fatalf("ScheduleCron failed: %v", err)
	}

	list := tm.List()
	if len(list) != 1 {
		t.Fatalf("len(List()) = %d, want 1", len(list))
	}
	if want := start.Add(5 * time.Second); !list[0].Due.Equal(want) {
		t.Errorf("first occurrence due %v, want %v", list[0].Due, want)
	}

	wantCounts := []int{0, 0, 0, 0, 1}
	for i, want := range wantCounts {
		step(t, clk, tm, time.Second)
		if got := tracker.CallCount(); got != want {
			t.Fatalf("after %ds: %d executions, want %d", i+1, got, want)
		}
	}

	if got := tracker.Value().(time.Time); !got.Equal(start.Add(5 * time.Second)) {
		t.Errorf("executed at %v, want %v", got, start.Add(5*time.Second))
	}

	// Completion queues the next occurrence from the cron schedule.
	list = tm.List()
	if len(list) != 1 {
		t.Fatalf("len(List()) = %d after first occurrence, want 1", len(list))
	}
	if want := start.Add(10 * time.Second); !list[0].Due.Equal(want) {
		t.Errorf("next occurrence due %v, want %v", list[0].Due, want)
	}
	if !list[0].Recurring {
		t.Error("cron entry not marked recurring")
	}
}

func TestScheduleCronHourly(t *testing.T) {
	clk := clock.NewMock()
	tm := newTestTimer(t, clk, Config{})
	waitParked(t, clk, tm, 1)

	task := TaskFunc(func(ctx context.Context) error { return nil })
	start := clk.Now()

	if err := tm.ScheduleCron("@hourly", task); err != nil {
		t.Fatalf("ScheduleCron failed: %v", err)
	}

	list := tm.List()
	if len(list) != 1 {
		t.Fatalf("len(List()) = %d, want 1", len(list))
	}
	if want := start.Add(time.Hour); !list[0].Due.Equal(want) {
		t.Errorf("due %v, want %v", list[0].Due, want)
	}
}

func TestScheduleCronUsesConfiguredLocation(t *testing.T) {
	clk := clock.NewMock()
	tm := newTestTimer(t, clk, Config{
		Location: time.FixedZone("UTC+2", 2*60*60),
	})
	waitParked(t, clk, tm, 1)

	task := TaskFunc(func(ctx context.Context) error { return nil })
	start := clk.Now()

	// The mock clock starts at 00:00 UTC, which is 02:00 in the configured
	// zone, so the next local midnight is 22 hours away.
	if err := tm.ScheduleCron("@daily", task); err != nil {
		t.Fatalf("ScheduleCron failed: %v", err)
	}

	list := tm.List()
	if len(list) != 1 {
		t.Fatalf("len(List()) = %d, want 1", len(list))
	}
	if want := start.Add(22 * time.Hour); !list[0].Due.Equal(want) {
		t.Errorf("due %v, want %v", list[0].Due, want)
	}
}

func TestScheduleCronValidation(t *testing.T) {
	clk := clock.NewMock()
	tm := newTestTimer(t, clk, Config{})

	task := TaskFunc(func(ctx context.Context) error { return nil })

	cases := []struct {
		name string
		expr string
	}{
		{"garbage", "not a cron expression"},
		{"empty", ""},
		{"five fields", "0 2 * * *"},
		{"out of range", "99 * * * * *"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tm.ScheduleCron(tc.expr, task)
			if !gterrors.IsValidationError(err) {
				t.Errorf("ScheduleCron(%q) = %v, want a validation error", tc.expr, err)
			}
			if !errors.Is(err, gterrors.ErrInvalidConfiguration) {
				t.Errorf("ScheduleCron(%q) does not unwrap to ErrInvalidConfiguration", tc.expr)
			}
		})
	}

	if got := tm.Pending(); got != 0 {
		t.Errorf("Pending() = %d after rejected expressions, want 0", got)
	}
	if err := tm.ScheduleCron("*/5 * * * * *", task); err != nil {
		t.Errorf("valid ScheduleCron after rejections failed: %v", err)
	}
}

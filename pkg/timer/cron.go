package timer

import (
	gterrors "github.com/vnykmshr/gotick/pkg/common/errors"
	"github.com/vnykmshr/gotick/pkg/common/validation"
)

// ScheduleCron schedules a task using a cron expression.
// Expressions use six fields including seconds:
//
//	"*/5 * * * * *"    - Every 5 seconds
//	"0 30 14 * * 1-5"  - 2:30 PM on weekdays
//	"0 0 9 1 * *"      - 9:00 AM on the 1st of every month
//	"@daily"           - Every day at midnight
//	"@hourly"          - Every hour
//
// Occurrences are evaluated in the timer's configured Location.
func (t *timer) ScheduleCron(expr string, task Task) error {
	if err := validation.ValidateNotNil("timer", "task", task); err != nil {
		return err
	}
	if err := validation.ValidateNotEmpty("timer", "cron expression", expr); err != nil {
		return err
	}

	schedule, err := t.parser.Parse(expr)
	if err != nil {
		return gterrors.NewValidationError("timer", "cron expression", expr, err.Error()).
			WithHint("use six fields with seconds, e.g. \"*/5 * * * * *\"")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return gterrors.ErrStopped
	}

	due := schedule.Next(t.clock.Now().In(t.location))
	if due.IsZero() {
		return gterrors.NewValidationError("timer", "cron expression", expr, "no upcoming run times")
	}

	t.insertLocked(&entry{
		task:      task,
		due:       due,
		recurring: true,
		schedule:  schedule,
	})
	return nil
}

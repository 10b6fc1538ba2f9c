package timer

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime/debug"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/vnykmshr/gotick/pkg/clock"
	gtcontext "github.com/vnykmshr/gotick/pkg/common/context"
	gterrors "github.com/vnykmshr/gotick/pkg/common/errors"
	"github.com/vnykmshr/gotick/pkg/common/validation"
)

// Timer runs scheduled tasks on a single background worker. Tasks execute
// one at a time, ordered by due time; ties run in scheduling order.
type Timer interface {
	// Schedule runs task once after delay. A non-positive delay makes the
	// task due immediately; it runs on the worker's next pass.
	Schedule(task Task, delay time.Duration) error

	// ScheduleWithJitter runs task once after delay plus a random offset
	// drawn uniformly from [0, jitter). A non-positive jitter behaves
	// like Schedule.
	ScheduleWithJitter(task Task, delay, jitter time.Duration) error

	// ScheduleRecurring runs task first after delay, then every interval.
	// Each next occurrence is scheduled when the previous one finishes,
	// so the cadence drifts by execution time. A non-positive interval
	// makes the task run on every pass of the worker loop.
	ScheduleRecurring(task Task, delay, interval time.Duration) error

	// ScheduleRecurringWithJitter is ScheduleRecurring with a fresh random
	// offset from [0, jitter) added to every occurrence, including the
	// first.
	ScheduleRecurringWithJitter(task Task, delay, interval, jitter time.Duration) error

	// ScheduleCron runs task on a cron schedule. Expressions use the
	// six-field format with seconds ("*/5 * * * * *") and descriptors
	// such as "@hourly".
	ScheduleCron(expr string, task Task) error

	// Stop shuts the timer down and waits for the worker to exit. Pending
	// tasks never run; a task running when Stop is called has its context
	// canceled. Returns ErrStopped if the timer already stopped.
	// Calling Stop from inside a task deadlocks: the worker would wait
	// for itself.
	Stop() error

	// Done returns a channel closed when the worker has exited, whether
	// by Stop or by a fatal task error.
	Done() <-chan struct{}

	// IsWaiting reports whether the worker is currently parked waiting
	// for a task to come due.
	IsWaiting() bool

	// Pending returns the number of queued tasks.
	Pending() int

	// List returns a snapshot of queued tasks ordered by due time.
	List() []PendingTask

	// Name returns the timer's name.
	Name() string
}

// PendingTask describes one queued task occurrence.
type PendingTask struct {
	// Due is when the task becomes eligible to run.
	Due time.Time

	// Seq is the task's scheduling sequence number. Among tasks due at
	// the same instant, lower Seq runs first.
	Seq uint64

	// Recurring reports whether the task reschedules itself after running.
	Recurring bool
}

type timer struct {
	name         string
	pollInterval time.Duration
	clock        clock.Clock
	location     *time.Location
	parser       cron.Parser
	log          zerolog.Logger
	onFatal      func(error)

	mu     sync.Mutex
	queue  *taskQueue
	seq    uint64
	active bool
	rng    *rand.Rand

	runCtx    context.Context
	runCancel context.CancelFunc
	done      chan struct{}
	sleeping  atomic.Bool
}

// New creates a timer with default configuration and starts its worker.
func New() Timer {
	return NewWithConfig(Config{})
}

// NewWithConfig creates a timer with custom configuration and starts its
// worker. Zero-value fields fall back to defaults.
func NewWithConfig(cfg Config) Timer {
	name := cfg.Name
	if name == "" {
		name = "timer-" + uuid.NewString()
	}

	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.System()
	}

	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	runCtx, runCancel := context.WithCancel(context.Background())

	t := &timer{
		name:         name,
		pollInterval: pollInterval,
		clock:        clk,
		location:     location,
		parser:       cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
		log:          cfg.Logger.With().Str("timer", name).Logger(),
		onFatal:      cfg.OnFatalError,
		queue:        newTaskQueue(),
		active:       true,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		runCtx:       runCtx,
		runCancel:    runCancel,
		done:         make(chan struct{}),
	}

	go t.run()
	return t
}

func (t *timer) Schedule(task Task, delay time.Duration) error {
	if err := validation.ValidateNotNil("timer", "task", task); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return gterrors.ErrStopped
	}

	t.insertLocked(&entry{
		task: task,
		due:  t.clock.Now().Add(delay),
	})
	return nil
}

func (t *timer) ScheduleWithJitter(task Task, delay, jitter time.Duration) error {
	if err := validation.ValidateNotNil("timer", "task", task); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return gterrors.ErrStopped
	}

	t.insertLocked(&entry{
		task: task,
		due:  t.clock.Now().Add(delay + t.drawJitterLocked(jitter)),
	})
	return nil
}

func (t *timer) ScheduleRecurring(task Task, delay, interval time.Duration) error {
	return t.ScheduleRecurringWithJitter(task, delay, interval, 0)
}

func (t *timer) ScheduleRecurringWithJitter(task Task, delay, interval, jitter time.Duration) error {
	if err := validation.ValidateNotNil("timer", "task", task); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return gterrors.ErrStopped
	}

	t.insertLocked(&entry{
		task:      task,
		due:       t.clock.Now().Add(delay + t.drawJitterLocked(jitter)),
		recurring: true,
		interval:  interval,
		jitter:    jitter,
	})
	return nil
}

func (t *timer) Stop() error {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return gterrors.ErrStopped
	}
	t.active = false
	pending := t.queue.len()
	t.mu.Unlock()

	t.runCancel()
	<-t.done

	t.log.Debug().Int("pending", pending).Msg("timer stopped")
	return nil
}

func (t *timer) Done() <-chan struct{} {
	return t.done
}

func (t *timer) IsWaiting() bool {
	return t.sleeping.Load()
}

func (t *timer) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.queue.len()
}

func (t *timer) List() []PendingTask {
	t.mu.Lock()
	entries := t.queue.snapshot()
	t.mu.Unlock()

	tasks := make([]PendingTask, 0, len(entries))
	for _, e := range entries {
		tasks = append(tasks, PendingTask{
			Due:       e.due,
			Seq:       e.seq,
			Recurring: e.recurring,
		})
	}

	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].Due.Equal(tasks[j].Due) {
			return tasks[i].Seq < tasks[j].Seq
		}
		return tasks[i].Due.Before(tasks[j].Due)
	})

	return tasks
}

func (t *timer) Name() string {
	return t.name
}

// insertLocked assigns the entry its sequence number and queues it. The
// worker is not woken; it notices new work at the latest after one poll
// interval. Callers must hold t.mu.
func (t *timer) insertLocked(e *entry) {
	t.seq++
	e.seq = t.seq
	t.queue.push(e)

	t.log.Debug().
		Uint64("seq", e.seq).
		Time("due", e.due).
		Bool("recurring", e.recurring).
		Msg("task scheduled")
}

// drawJitterLocked returns a uniform random duration from [0, jitter).
// Callers must hold t.mu.
func (t *timer) drawJitterLocked(jitter time.Duration) time.Duration {
	if jitter <= 0 {
		return 0
	}
	return time.Duration(t.rng.Int63n(int64(jitter)))
}

// run is the worker loop. It exits when the timer is no longer active,
// closing the done channel exactly once.
func (t *timer) run() {
	defer close(t.done)

	t.log.Debug().Msg("worker started")

	for {
		t.mu.Lock()
		if !t.active {
			t.mu.Unlock()
			t.log.Debug().Msg("worker exiting")
			return
		}

		now := t.clock.Now()
		e := t.queue.popDue(now)
		if e == nil {
			wait := t.pollInterval
			if head, ok := t.queue.peek(); ok {
				if d := head.due.Sub(now); d < wait {
					wait = d
				}
			}
			t.mu.Unlock()
			t.sleep(wait)
			continue
		}
		t.mu.Unlock()

		err := t.execute(e)
		switch {
		case err == nil:
			if e.recurring {
				t.reschedule(e)
			}
		case t.interrupted(err):
			t.log.Debug().Uint64("seq", e.seq).Msg("task interrupted by stop")
		default:
			t.log.Error().Uint64("seq", e.seq).Err(err).Msg("task failed, stopping worker")
			if t.onFatal != nil {
				t.onFatal(err)
			}
			t.mu.Lock()
			t.active = false
			t.mu.Unlock()
			t.runCancel()
			return
		}
	}
}

// execute runs one entry's task outside the queue lock, converting panics
// into errors.
func (t *timer) execute(e *entry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v\nStack trace:\n%s", r, debug.Stack())
		}
	}()

	t.log.Debug().Uint64("seq", e.seq).Time("due", e.due).Msg("executing task")
	return e.task.Execute(t.runCtx)
}

// reschedule queues the next occurrence of a recurring entry. It runs after
// the previous occurrence finished, regardless of whether the timer is still
// active: a stale insert is harmless because the worker checks liveness
// before every dispatch.
func (t *timer) reschedule(e *entry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	next := *e
	if e.schedule != nil {
		next.due = e.schedule.Next(now.In(t.location))
		if next.due.IsZero() {
			t.log.Warn().Uint64("seq", e.seq).Msg("cron schedule has no upcoming run, dropping task")
			return
		}
	} else {
		next.due = now.Add(e.interval + t.drawJitterLocked(e.jitter))
	}

	t.insertLocked(&next)
}

// interrupted reports whether a task error is the orderly result of Stop
// canceling the run context rather than a task failure.
func (t *timer) interrupted(err error) bool {
	return errors.Is(err, context.Canceled) && gtcontext.IsCanceled(t.runCtx)
}

// sleep parks the worker until d elapses or the run context is canceled.
// The wake timer is armed before the waiting flag is set, so observers that
// see IsWaiting() true know the timer already exists.
func (t *timer) sleep(d time.Duration) {
	tm := t.clock.NewTimer(d)
	t.sleeping.Store(true)
	defer t.sleeping.Store(false)

	select {
	case <-tm.C():
	case <-t.runCtx.Done():
		tm.Stop()
	}
}

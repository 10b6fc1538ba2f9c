package timer

import (
	"container/heap"
	"time"

	"github.com/robfig/cron/v3"
)

// entry is a queued task occurrence. Recurring tasks are represented by the
// occurrence currently queued; each execution inserts a fresh entry for the
// next one.
type entry struct {
	due       time.Time
	seq       uint64
	task      Task
	recurring bool
	interval  time.Duration
	jitter    time.Duration
	schedule  cron.Schedule
	index     int // position in the heap, maintained by entryHeap
}

// taskQueue orders entries by due time, with the insertion sequence breaking
// ties so that entries scheduled for the same instant run in insertion order.
// Callers must synchronize access.
type taskQueue struct {
	entries entryHeap
}

func newTaskQueue() *taskQueue {
	return &taskQueue{}
}

// push adds an entry to the queue.
func (q *taskQueue) push(e *entry) {
	heap.Push(&q.entries, e)
}

// peek returns the entry that is due soonest without removing it.
func (q *taskQueue) peek() (*entry, bool) {
	if len(q.entries) == 0 {
		return nil, false
	}
	return q.entries[0], true
}

// pop removes and returns the entry that is due soonest.
// Must not be called on an empty queue.
func (q *taskQueue) pop() *entry {
	return heap.Pop(&q.entries).(*entry)
}

// popDue removes and returns the entry that is due soonest, but only if its
// due time has been reached. Returns nil when the queue is empty or the head
// is still in the future; use peek to tell the two apart.
func (q *taskQueue) popDue(now time.Time) *entry {
	head, ok := q.peek()
	if !ok || head.due.After(now) {
		return nil
	}
	return q.pop()
}

// len returns the number of queued entries.
func (q *taskQueue) len() int {
	return len(q.entries)
}

// snapshot returns a copy of the queued entries in no particular order.
func (q *taskQueue) snapshot() []*entry {
	out := make([]*entry, len(q.entries))
	copy(out, q.entries)
	return out
}

// entryHeap implements heap.Interface over entries.
type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}

func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap) Push(x interface{}) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

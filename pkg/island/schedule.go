package island

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Scheduler defers a callback until after the current unit of work.
type Scheduler interface {
	Defer(fn func())
}

// Queue is a FIFO Scheduler drained explicitly by Flush.
type Queue struct {
	tasks []func()
}

// Defer appends fn to the queue.
func (q *Queue) Defer(fn func()) {
	q.tasks = append(q.tasks, fn)
}

// Flush runs queued callbacks in order until the queue is empty, including
// callbacks deferred while flushing. It returns how many ran.
func (q *Queue) Flush() int {
	n := 0
	for len(q.tasks) > 0 {
		fn := q.tasks[0]
		q.tasks = q.tasks[1:]
		fn()
		n++
	}
	return n
}

// Len returns the number of queued callbacks.
func (q *Queue) Len() int {
	return len(q.tasks)
}

// IDGenerator returns a fresh island id on every call.
type IDGenerator func() string

// CounterIDs returns a generator yielding prefix-1, prefix-2, ...
func CounterIDs(prefix string) IDGenerator {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}

// UUIDs returns a generator of random UUID strings.
func UUIDs() IDGenerator {
	return func() string {
		return uuid.NewString()
	}
}

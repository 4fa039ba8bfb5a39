// Package loop drives a single per-frame step through a host frame scheduler.
//
// Steps never talk to the scheduler themselves. The Controller decides once per
// frame whether another frame is requested, so stopping and resuming live in
// one place.
package loop

// Scheduler is the host's frame-scheduling primitive.
// RequestFrame arranges for fn to run once before the next repaint.
type Scheduler interface {
	RequestFrame(fn func())
}

// StepFunc is the procedure run once per frame.
type StepFunc func() error

// Queue is a Scheduler whose requests run on the next Flush.
// The ebiten host flushes it once per tick.
type Queue struct {
	pending []func()
}

// RequestFrame implements Scheduler.
func (q *Queue) RequestFrame(fn func()) {
	q.pending = append(q.pending, fn)
}

// Flush runs the callbacks requested before the call.
// Callbacks requested while flushing wait for the next Flush.
// Returns the number of callbacks run.
func (q *Queue) Flush() int {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Len returns the number of pending callbacks.
func (q *Queue) Len() int {
	return len(q.pending)
}

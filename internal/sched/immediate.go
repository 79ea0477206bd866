package sched

import "github.com/dshills/rxstorm/internal/rx"

// Immediate executes tasks synchronously in the caller's goroutine.
// The returned handle is already spent; started work cannot be cancelled.
type Immediate struct{}

// NewImmediate creates an immediate scheduler.
func NewImmediate() Immediate {
	return Immediate{}
}

// Schedule implements rx.Scheduler.
func (Immediate) Schedule(fn func()) rx.Disposable {
	fn()
	return rx.Disposed()
}

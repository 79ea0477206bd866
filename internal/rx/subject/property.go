package subject

import (
	"sync/atomic"

	"github.com/dshills/rxstorm/internal/rx"
)

// Property is a value holder that is both observable and imperatively
// writable, for state that UI-like consumers bind to. It composes a
// Behavior subject with scheduler-bound emission: every write is
// dispatched onto a fixed scheduler (the process main scheduler by
// default), and a Property can never produce an Error event.
//
// A Property has an explicit end of life: the owner calls Close at a
// well-defined point, which emits Completed to all observers. Writes
// after Close are no-ops.
type Property[T any] struct {
	subject *Behavior[T]
	sched   rx.Scheduler
	closed  atomic.Bool
}

// NewProperty creates a property seeded with initial. If sched is nil the
// process main scheduler is used, resolved at each write so startup
// wiring order does not matter.
func NewProperty[T any](initial T, sched rx.Scheduler) *Property[T] {
	return &Property[T]{subject: NewBehavior(initial), sched: sched}
}

// Subscribe delivers the current value first, then live updates.
func (p *Property[T]) Subscribe(observer rx.Observer[T]) rx.Disposable {
	return p.subject.Subscribe(observer)
}

// Value returns the current value.
func (p *Property[T]) Value() T {
	return p.subject.Value()
}

// Set dispatches the new value onto the bound scheduler. No-op after
// Close.
func (p *Property[T]) Set(value T) {
	if p.closed.Load() {
		return
	}
	p.scheduler().Schedule(func() { p.subject.OnNext(value) })
}

// Close ends the property's life, emitting Completed on the bound
// scheduler. Only the first call has any effect.
func (p *Property[T]) Close() {
	if p.closed.CompareAndSwap(false, true) {
		p.scheduler().Schedule(func() { p.subject.OnCompleted() })
	}
}

// IsClosed reports whether Close has been called.
func (p *Property[T]) IsClosed() bool {
	return p.closed.Load()
}

func (p *Property[T]) scheduler() rx.Scheduler {
	if p.sched != nil {
		return p.sched
	}
	return rx.Main()
}

package sched

import (
	"context"

	"github.com/dshills/rxstorm/internal/rx"
)

// Serial is a background execution context that runs tasks one at a time
// in submission order. It is a Pool with the worker count pinned to 1.
type Serial struct {
	pool *Pool
}

// NewSerial creates a new serial scheduler. WithWorkers options are
// overridden; the queue size and panic handler options apply.
func NewSerial(opts ...Option) *Serial {
	opts = append(opts, WithWorkers(1))
	return &Serial{pool: NewPool(opts...)}
}

// Start brings up the worker goroutine.
func (s *Serial) Start() error {
	return s.pool.Start()
}

// Stop drains outstanding work and stops the worker, bounded by ctx.
func (s *Serial) Stop(ctx context.Context) error {
	return s.pool.Stop(ctx)
}

// IsRunning reports whether the scheduler accepts work.
func (s *Serial) IsRunning() bool {
	return s.pool.IsRunning()
}

// Schedule implements rx.Scheduler.
func (s *Serial) Schedule(fn func()) rx.Disposable {
	return s.pool.Schedule(fn)
}

// TrySchedule submits a task and reports queuing failures.
func (s *Serial) TrySchedule(fn func()) (rx.Disposable, error) {
	return s.pool.TrySchedule(fn)
}

// Stats returns scheduler statistics.
func (s *Serial) Stats() Stats {
	return s.pool.Stats()
}

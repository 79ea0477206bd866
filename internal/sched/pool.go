package sched

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/rxstorm/internal/rx"
)

// nowNano is a variable to allow deterministic timing in tests.
var nowNano = func() int64 { return time.Now().UnixNano() }

// PanicHandler is called when a scheduled task panics.
type PanicHandler func(recovered any, stack []byte)

// defaultPanicHandler discards the panic. Tasks are isolated; a
// misbehaving task must not take down the process.
func defaultPanicHandler(any, []byte) {}

// task is one queued unit of work. Cancellation only prevents tasks that
// have not started.
type task struct {
	fn        func()
	cancelled atomic.Bool
}

// Pool is a concurrent background execution context. At most Workers
// tasks run at the same time; additional tasks wait in a bounded queue.
type Pool struct {
	queueSize    int
	workers      int
	panicHandler PanicHandler

	mu      sync.Mutex // protects queue creation/destruction
	queue   chan *task
	running atomic.Bool
	wg      sync.WaitGroup

	// Stats
	scheduled   atomic.Uint64
	executed    atomic.Uint64
	panicked    atomic.Uint64
	dropped     atomic.Uint64
	cancelled   atomic.Uint64
	totalTimeNs atomic.Int64
}

// NewPool creates a new pool scheduler with the given options.
func NewPool(opts ...Option) *Pool {
	p := &Pool{
		queueSize:    1024,
		workers:      4,
		panicHandler: defaultPanicHandler,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start brings up the worker goroutines.
func (p *Pool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running.Load() {
		return ErrAlreadyRunning
	}

	p.queue = make(chan *task, p.queueSize)
	p.running.Store(true)

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	return nil
}

// Stop stops the pool gracefully. Queued tasks are drained before the
// workers exit, or until the context is cancelled.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.running.Load() {
		p.mu.Unlock()
		return ErrNotRunning
	}
	p.running.Store(false)
	close(p.queue)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsRunning reports whether the pool accepts work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

// Schedule implements rx.Scheduler. If the pool is stopped or the queue
// is full the task is dropped, recorded in Stats, and a spent handle is
// returned. Use TrySchedule when the caller needs the failure.
func (p *Pool) Schedule(fn func()) rx.Disposable {
	d, err := p.TrySchedule(fn)
	if err != nil {
		return rx.Disposed()
	}
	return d
}

// TrySchedule submits a task and reports queuing failures.
// The returned Disposable cancels the task if it has not started.
func (p *Pool) TrySchedule(fn func()) (rx.Disposable, error) {
	if !p.running.Load() {
		p.dropped.Add(1)
		return nil, ErrNotRunning
	}

	t := &task{fn: fn}
	select {
	case p.queue <- t:
		p.scheduled.Add(1)
		return rx.NewDisposable(func() {
			if t.cancelled.CompareAndSwap(false, true) {
				p.cancelled.Add(1)
			}
		}), nil
	default:
		p.dropped.Add(1)
		return nil, ErrQueueFull
	}
}

// worker drains the queue until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()
	for t := range p.queue {
		if t.cancelled.Load() {
			continue
		}
		p.run(t)
	}
}

// run executes one task with panic recovery and timing.
func (p *Pool) run(t *task) {
	start := nowNano()
	defer func() {
		if r := recover(); r != nil {
			p.panicked.Add(1)
			stack := debug.Stack()
			// Protect against the panic handler itself panicking.
			func() {
				defer func() { _ = recover() }()
				p.panicHandler(r, stack)
			}()
		}
		p.totalTimeNs.Add(nowNano() - start)
	}()

	t.fn()
	p.executed.Add(1)
}

// QueueDepth returns the number of tasks waiting in the queue.
// Returns 0 when the pool is stopped.
func (p *Pool) QueueDepth() int {
	if !p.running.Load() {
		return 0
	}
	return len(p.queue)
}

// Stats returns pool statistics.
func (p *Pool) Stats() Stats {
	return Stats{
		Scheduled:  p.scheduled.Load(),
		Executed:   p.executed.Load(),
		Panicked:   p.panicked.Load(),
		Dropped:    p.dropped.Load(),
		Cancelled:  p.cancelled.Load(),
		QueueDepth: p.QueueDepth(),
		TotalNs:    p.totalTimeNs.Load(),
	}
}

// Stats contains scheduler statistics.
type Stats struct {
	// Scheduled is the total number of tasks accepted into the queue.
	Scheduled uint64

	// Executed is the number of tasks that ran to completion.
	Executed uint64

	// Panicked is the number of tasks that panicked.
	Panicked uint64

	// Dropped is the number of tasks rejected (queue full or stopped).
	Dropped uint64

	// Cancelled is the number of tasks cancelled before starting.
	Cancelled uint64

	// QueueDepth is the current number of waiting tasks.
	QueueDepth int

	// TotalNs is the cumulative time spent executing tasks.
	TotalNs int64
}

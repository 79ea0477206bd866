package sched

// Option configures a Pool or Serial scheduler.
type Option func(*Pool)

// WithQueueSize sets the task queue capacity. Values below 1 are ignored.
func WithQueueSize(size int) Option {
	return func(p *Pool) {
		if size > 0 {
			p.queueSize = size
		}
	}
}

// WithWorkers sets the maximum number of concurrently running tasks.
// Values below 1 are ignored. Serial schedulers pin this to 1.
func WithWorkers(count int) Option {
	return func(p *Pool) {
		if count > 0 {
			p.workers = count
		}
	}
}

// WithPanicHandler sets the handler invoked when a task panics.
func WithPanicHandler(h PanicHandler) Option {
	return func(p *Pool) {
		if h != nil {
			p.panicHandler = h
		}
	}
}

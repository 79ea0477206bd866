package rx

import "sync"

// Scheduler abstracts where a unit of work runs. Implementations live in
// internal/sched; this package only consumes the interface.
type Scheduler interface {
	// Schedule submits the task for execution. The returned Disposable
	// cancels the task if it has not started yet; it does not interrupt
	// a task already running.
	Schedule(task func()) Disposable
}

// inlineScheduler runs tasks synchronously on the calling goroutine.
// It is the fallback main scheduler when none has been installed, which
// keeps tests deterministic.
type inlineScheduler struct{}

// Schedule runs the task immediately and returns a spent handle.
func (inlineScheduler) Schedule(task func()) Disposable {
	task()
	return Disposed()
}

// Inline returns a scheduler that executes tasks synchronously in the
// caller's goroutine.
func Inline() Scheduler {
	return inlineScheduler{}
}

var (
	mainMu    sync.RWMutex
	mainSched Scheduler = inlineScheduler{}
)

// Main returns the process-wide main scheduler. Until SetMain is called
// it executes tasks inline.
func Main() Scheduler {
	mainMu.RLock()
	defer mainMu.RUnlock()
	return mainSched
}

// SetMain installs the process-wide main scheduler. Call once at startup;
// tests may substitute a deterministic scheduler.
func SetMain(s Scheduler) {
	if s == nil {
		return
	}
	mainMu.Lock()
	mainSched = s
	mainMu.Unlock()
}

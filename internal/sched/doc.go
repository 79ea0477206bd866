// Package sched provides the execution contexts behind the rx.Scheduler
// abstraction.
//
// Four variants are available:
//
//   - Immediate: runs tasks synchronously in the caller's goroutine.
//   - Serial: a single worker goroutine draining a bounded queue; tasks
//     execute one at a time in submission order.
//   - Pool: a bounded worker pool; at most Workers tasks run concurrently.
//   - Main: a process-wide Serial context designated as the main execution
//     context, initialized once and injectable for tests.
//
// Serial and Pool have an explicit lifecycle: Start brings up the workers,
// Stop drains outstanding work and waits for the workers to exit, bounded
// by the given context. Scheduling a task returns an rx.Disposable that
// cancels the task if it has not started; a running task is never
// interrupted.
//
// All workers recover from task panics. Panics are reported through a
// configurable PanicHandler and never crash the process.
package sched

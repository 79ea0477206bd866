package sched

import "errors"

// Sentinel errors for scheduler lifecycle and queuing.
var (
	// ErrAlreadyRunning is returned when Start is called on a running scheduler.
	ErrAlreadyRunning = errors.New("scheduler is already running")

	// ErrNotRunning is returned when work is submitted to a stopped scheduler.
	ErrNotRunning = errors.New("scheduler is not running")

	// ErrQueueFull is returned when the task queue is at capacity.
	ErrQueueFull = errors.New("scheduler queue is full")
)

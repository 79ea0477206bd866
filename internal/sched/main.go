package sched

import (
	"sync"

	"github.com/dshills/rxstorm/internal/rx"
)

// Compile-time interface checks.
var (
	_ rx.Scheduler = (*Pool)(nil)
	_ rx.Scheduler = (*Serial)(nil)
	_ rx.Scheduler = Immediate{}
)

var (
	mainMu    sync.Mutex
	mainSched *Serial
)

// Main returns the process-wide main execution context, creating and
// starting it on first use. The main context is serial: tasks dispatched
// to it never run concurrently.
func Main() *Serial {
	mainMu.Lock()
	defer mainMu.Unlock()
	if mainSched == nil {
		mainSched = NewSerial()
		// A fresh Serial cannot be running; Start only fails then.
		_ = mainSched.Start()
	}
	return mainSched
}

// SetMain replaces the process-wide main context. The caller owns the
// lifecycle of both the old and the new scheduler. Intended for startup
// wiring and for tests substituting a deterministic context.
func SetMain(s *Serial) {
	mainMu.Lock()
	mainSched = s
	mainMu.Unlock()
}

// Install wires the main context into the rx package so that binders and
// operators using rx.Main observe it. Call once at startup.
func Install() {
	rx.SetMain(Main())
}

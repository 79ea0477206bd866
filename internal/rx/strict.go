package rx

import (
	"fmt"
	"sync/atomic"
)

// strictMode selects the protocol-violation policy: fail-fast in
// development, degrade in production.
var strictMode atomic.Bool

// SetStrict selects the protocol-violation policy. When strict, delivering
// an event after a terminal event panics with a diagnostic; otherwise the
// event is silently dropped. Call once at startup, before pipelines run.
func SetStrict(on bool) {
	strictMode.Store(on)
}

// IsStrict reports whether strict mode is enabled.
func IsStrict() bool {
	return strictMode.Load()
}

// violation reports a protocol violation according to the current policy.
func violation(format string, args ...any) {
	if strictMode.Load() {
		panic("rx: " + fmt.Sprintf(format, args...))
	}
}

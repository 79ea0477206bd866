package subject

import (
	"github.com/dshills/rxstorm/internal/rx"
)

// Subject is an entity that is both a producer and a consumer of events.
type Subject[T any] interface {
	rx.Observable[T]
	rx.Observer[T]

	// OnNext emits a value to the subject.
	OnNext(value T)

	// OnError terminates the subject with a cause.
	OnError(err error)

	// OnCompleted terminates the subject successfully.
	OnCompleted()
}

// Compile-time interface checks.
var (
	_ Subject[int] = (*Publish[int])(nil)
	_ Subject[int] = (*Replay[int])(nil)
	_ Subject[int] = (*Behavior[int])(nil)
	_ Subject[int] = (*Async[int])(nil)
)

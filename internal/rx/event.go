package rx

import "fmt"

// Kind identifies the variant of an Event.
type Kind int

const (
	// KindNext carries a value of the stream's element type.
	KindNext Kind = iota

	// KindError terminates the stream with a cause.
	KindError

	// KindCompleted terminates the stream successfully.
	KindCompleted
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindNext:
		return "next"
	case KindError:
		return "error"
	case KindCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Event is one unit of the Next/Error/Completed grammar flowing from a
// producer to an observer. Events are immutable once created.
type Event[T any] struct {
	kind  Kind
	value T
	err   error
}

// Next creates a value-carrying event.
func Next[T any](value T) Event[T] {
	return Event[T]{kind: KindNext, value: value}
}

// Error creates a terminal event carrying the failure cause.
func Error[T any](err error) Event[T] {
	return Event[T]{kind: KindError, err: err}
}

// Completed creates a terminal event marking successful end of stream.
func Completed[T any]() Event[T] {
	return Event[T]{kind: KindCompleted}
}

// Kind returns the event variant.
func (e Event[T]) Kind() Kind {
	return e.kind
}

// Value returns the carried value. It is only meaningful for KindNext;
// for terminal events it is the zero value of T.
func (e Event[T]) Value() T {
	return e.value
}

// Err returns the failure cause for KindError events, nil otherwise.
func (e Event[T]) Err() error {
	return e.err
}

// IsTerminal reports whether the event ends the stream.
func (e Event[T]) IsTerminal() bool {
	return e.kind != KindNext
}

// String returns a diagnostic representation of the event.
func (e Event[T]) String() string {
	switch e.kind {
	case KindNext:
		return fmt.Sprintf("next(%v)", e.value)
	case KindError:
		return fmt.Sprintf("error(%v)", e.err)
	case KindCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

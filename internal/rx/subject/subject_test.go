package subject

import (
	"sync"

	"github.com/dshills/rxstorm/internal/rx"
)

// recorder collects delivered events for assertions.
type recorder[T any] struct {
	mu     sync.Mutex
	events []rx.Event[T]
}

func (r *recorder[T]) On(event rx.Event[T]) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
}

func (r *recorder[T]) snapshot() []rx.Event[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]rx.Event[T], len(r.events))
	copy(out, r.events)
	return out
}

// values returns the Next payloads in delivery order.
func (r *recorder[T]) values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []T
	for _, ev := range r.events {
		if ev.Kind() == rx.KindNext {
			out = append(out, ev.Value())
		}
	}
	return out
}

// terminal returns the terminal event, if one was delivered.
func (r *recorder[T]) terminal() (rx.Event[T], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ev := range r.events {
		if ev.IsTerminal() {
			return ev, true
		}
	}
	var zero rx.Event[T]
	return zero, false
}

func equalValues[T comparable](got, want []T) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

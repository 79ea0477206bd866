package subject

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/rxstorm/internal/rx"
)

// multicast is the fan-out mechanism shared by all subject variants.
// It owns the observer registry and the recorded terminal event. The
// mutex serializes all bookkeeping: registration, disposal, buffer and
// terminal-state mutation. Variants hold the mutex while replaying to a
// new subscriber so replay stays chronologically consistent with live
// emission; live delivery itself happens outside the lock against a
// snapshot of the registry.
type multicast[T any] struct {
	mu       sync.Mutex
	regs     map[string]rx.Observer[T]
	terminal *rx.Event[T]
}

func newMulticast[T any]() multicast[T] {
	return multicast[T]{regs: make(map[string]rx.Observer[T])}
}

// registerLocked adds a serialized observer under a fresh key and returns
// the subscription handle. The caller must hold mu. The handle severs
// delivery first, then removes the registry entry.
func (m *multicast[T]) registerLocked(observer rx.Observer[T], stop rx.Disposable) rx.Disposable {
	key := uuid.NewString()
	m.regs[key] = observer
	return rx.NewComposite(stop, rx.NewDisposable(func() {
		m.remove(key)
	}))
}

// remove deletes a registration. Safe to call after the subject closed;
// the registry is replaced on termination so stale keys are gone already.
func (m *multicast[T]) remove(key string) {
	m.mu.Lock()
	delete(m.regs, key)
	m.mu.Unlock()
}

// snapshotLocked copies the current observers. The caller must hold mu.
func (m *multicast[T]) snapshotLocked() []rx.Observer[T] {
	if len(m.regs) == 0 {
		return nil
	}
	out := make([]rx.Observer[T], 0, len(m.regs))
	for _, o := range m.regs {
		out = append(out, o)
	}
	return out
}

// emit fans a non-terminal event out to every registered observer.
// No-op once the subject is closed.
func (m *multicast[T]) emit(event rx.Event[T]) {
	m.mu.Lock()
	if m.terminal != nil {
		m.mu.Unlock()
		return
	}
	observers := m.snapshotLocked()
	m.mu.Unlock()

	for _, o := range observers {
		o.On(event)
	}
}

// terminate records the terminal event, clears the registry, and delivers
// prelude events followed by the terminal event to every observer that was
// registered. Only the first call has any effect.
func (m *multicast[T]) terminate(terminal rx.Event[T], prelude ...rx.Event[T]) {
	m.mu.Lock()
	if m.terminal != nil {
		m.mu.Unlock()
		return
	}
	t := terminal
	m.terminal = &t
	observers := m.snapshotLocked()
	m.regs = make(map[string]rx.Observer[T])
	m.mu.Unlock()

	for _, o := range observers {
		for _, ev := range prelude {
			o.On(ev)
		}
		o.On(terminal)
	}
}

// closedLocked reports whether a terminal event has been recorded.
// The caller must hold mu.
func (m *multicast[T]) closedLocked() bool {
	return m.terminal != nil
}

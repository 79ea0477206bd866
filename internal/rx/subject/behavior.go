package subject

import "github.com/dshills/rxstorm/internal/rx"

// Behavior is a subject that holds exactly one current value, seeded at
// construction and overwritten by every emission. New subscribers receive
// the current value first, then join live delivery.
type Behavior[T any] struct {
	m       multicast[T]
	current T
}

// NewBehavior creates a behavior subject with the mandatory initial value.
func NewBehavior[T any](initial T) *Behavior[T] {
	return &Behavior[T]{m: newMulticast[T](), current: initial}
}

// Value returns the current value. After the subject closed it is the
// last value emitted before the terminal event.
func (s *Behavior[T]) Value() T {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.current
}

// Subscribe synchronously delivers the current value, then registers the
// observer for live delivery. If the subject is closed only the terminal
// event is delivered; the current value is not replayed.
func (s *Behavior[T]) Subscribe(observer rx.Observer[T]) rx.Disposable {
	serialized, stop := rx.Serialize(observer)

	s.m.mu.Lock()
	if s.m.closedLocked() {
		terminal := *s.m.terminal
		s.m.mu.Unlock()
		serialized.On(terminal)
		return stop
	}
	serialized.On(rx.Next(s.current))
	d := s.m.registerLocked(serialized, stop)
	s.m.mu.Unlock()
	return d
}

// OnNext replaces the current value and fans it out to live observers.
func (s *Behavior[T]) OnNext(value T) {
	s.m.mu.Lock()
	if s.m.closedLocked() {
		s.m.mu.Unlock()
		return
	}
	s.current = value
	observers := s.m.snapshotLocked()
	s.m.mu.Unlock()

	event := rx.Next(value)
	for _, o := range observers {
		o.On(event)
	}
}

// OnError closes the subject with an error.
func (s *Behavior[T]) OnError(err error) {
	s.m.terminate(rx.Error[T](err))
}

// OnCompleted closes the subject successfully.
func (s *Behavior[T]) OnCompleted() {
	s.m.terminate(rx.Completed[T]())
}

// On implements the rx.Observer interface.
func (s *Behavior[T]) On(event rx.Event[T]) {
	switch event.Kind() {
	case rx.KindNext:
		s.OnNext(event.Value())
	case rx.KindError:
		s.OnError(event.Err())
	case rx.KindCompleted:
		s.OnCompleted()
	}
}

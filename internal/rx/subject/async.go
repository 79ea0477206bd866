package subject

import "github.com/dshills/rxstorm/internal/rx"

// Async is a subject that does not forward values live. It buffers only
// the most recent value; on completion every observer - current and
// future - receives that single value followed by Completed. An error at
// any point discards the buffer and forwards only the error.
type Async[T any] struct {
	m        multicast[T]
	last     T
	hasValue bool
}

// NewAsync creates a new async subject.
func NewAsync[T any]() *Async[T] {
	return &Async[T]{m: newMulticast[T]()}
}

// Subscribe registers the observer. Nothing is delivered until the
// subject terminates; if it already has, the observer immediately
// receives the recorded outcome.
func (s *Async[T]) Subscribe(observer rx.Observer[T]) rx.Disposable {
	serialized, stop := rx.Serialize(observer)

	s.m.mu.Lock()
	if s.m.closedLocked() {
		terminal := *s.m.terminal
		replayValue := s.hasValue && terminal.Kind() == rx.KindCompleted
		last := s.last
		s.m.mu.Unlock()
		if replayValue {
			serialized.On(rx.Next(last))
		}
		serialized.On(terminal)
		return stop
	}
	d := s.m.registerLocked(serialized, stop)
	s.m.mu.Unlock()
	return d
}

// OnNext records the value as the candidate final value. Nothing is
// delivered to observers.
func (s *Async[T]) OnNext(value T) {
	s.m.mu.Lock()
	if !s.m.closedLocked() {
		s.last = value
		s.hasValue = true
	}
	s.m.mu.Unlock()
}

// OnError discards any buffered value and closes the subject with the
// error alone.
func (s *Async[T]) OnError(err error) {
	s.m.mu.Lock()
	if s.m.closedLocked() {
		s.m.mu.Unlock()
		return
	}
	s.hasValue = false
	var zero T
	s.last = zero
	s.m.mu.Unlock()

	s.m.terminate(rx.Error[T](err))
}

// OnCompleted closes the subject, emitting the buffered value (if any)
// followed by Completed to every observer.
func (s *Async[T]) OnCompleted() {
	s.m.mu.Lock()
	hasValue := s.hasValue
	last := s.last
	s.m.mu.Unlock()

	if hasValue {
		s.m.terminate(rx.Completed[T](), rx.Next(last))
	} else {
		s.m.terminate(rx.Completed[T]())
	}
}

// On implements the rx.Observer interface.
func (s *Async[T]) On(event rx.Event[T]) {
	switch event.Kind() {
	case rx.KindNext:
		s.OnNext(event.Value())
	case rx.KindError:
		s.OnError(event.Err())
	case rx.KindCompleted:
		s.OnCompleted()
	}
}

package subject

import "github.com/dshills/rxstorm/internal/rx"

// Publish is a subject with no buffer: values are fanned out to the
// observers registered at emission time, and late subscribers receive
// nothing retroactively.
type Publish[T any] struct {
	m multicast[T]
}

// NewPublish creates a new publish subject.
func NewPublish[T any]() *Publish[T] {
	return &Publish[T]{m: newMulticast[T]()}
}

// Subscribe registers the observer for live delivery. If the subject is
// already closed the observer immediately receives the recorded terminal
// event only.
func (s *Publish[T]) Subscribe(observer rx.Observer[T]) rx.Disposable {
	serialized, stop := rx.Serialize(observer)

	s.m.mu.Lock()
	if s.m.closedLocked() {
		terminal := *s.m.terminal
		s.m.mu.Unlock()
		serialized.On(terminal)
		return stop
	}
	d := s.m.registerLocked(serialized, stop)
	s.m.mu.Unlock()
	return d
}

// OnNext fans the value out to every currently registered observer.
func (s *Publish[T]) OnNext(value T) {
	s.m.emit(rx.Next(value))
}

// OnError closes the subject with an error.
func (s *Publish[T]) OnError(err error) {
	s.m.terminate(rx.Error[T](err))
}

// OnCompleted closes the subject successfully.
func (s *Publish[T]) OnCompleted() {
	s.m.terminate(rx.Completed[T]())
}

// On implements the rx.Observer interface.
func (s *Publish[T]) On(event rx.Event[T]) {
	switch event.Kind() {
	case rx.KindNext:
		s.OnNext(event.Value())
	case rx.KindError:
		s.OnError(event.Err())
	case rx.KindCompleted:
		s.OnCompleted()
	}
}

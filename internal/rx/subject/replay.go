package subject

import "github.com/dshills/rxstorm/internal/rx"

// Replay is a subject that buffers emitted values and replays the buffer,
// in original chronological order, to every new subscriber before live
// delivery begins.
type Replay[T any] struct {
	m      multicast[T]
	buffer []T
	limit  int // 0 means unbounded
}

// NewReplay creates a replay subject keeping the most recent size values.
// A size below 1 means the buffer is unbounded.
func NewReplay[T any](size int) *Replay[T] {
	if size < 0 {
		size = 0
	}
	return &Replay[T]{m: newMulticast[T](), limit: size}
}

// NewReplayAll creates a replay subject that retains every emitted value.
func NewReplayAll[T any]() *Replay[T] {
	return NewReplay[T](0)
}

// Subscribe synchronously replays the buffered values in original order,
// then registers the observer for live delivery. If the subject is closed
// the observer receives the buffer followed by the terminal event.
func (s *Replay[T]) Subscribe(observer rx.Observer[T]) rx.Disposable {
	serialized, stop := rx.Serialize(observer)

	s.m.mu.Lock()
	if s.m.closedLocked() {
		buffered := append([]T(nil), s.buffer...)
		terminal := *s.m.terminal
		s.m.mu.Unlock()
		for _, v := range buffered {
			serialized.On(rx.Next(v))
		}
		serialized.On(terminal)
		return stop
	}
	for _, v := range s.buffer {
		serialized.On(rx.Next(v))
	}
	d := s.m.registerLocked(serialized, stop)
	s.m.mu.Unlock()
	return d
}

// OnNext appends the value to the buffer, evicting the oldest entry when
// the buffer is bounded and full, then fans it out to live observers.
func (s *Replay[T]) OnNext(value T) {
	s.m.mu.Lock()
	if s.m.closedLocked() {
		s.m.mu.Unlock()
		return
	}
	s.buffer = append(s.buffer, value)
	if s.limit > 0 && len(s.buffer) > s.limit {
		s.buffer = s.buffer[len(s.buffer)-s.limit:]
	}
	observers := s.m.snapshotLocked()
	s.m.mu.Unlock()

	event := rx.Next(value)
	for _, o := range observers {
		o.On(event)
	}
}

// OnError closes the subject with an error. The buffer is retained and
// still replayed to late subscribers before the error.
func (s *Replay[T]) OnError(err error) {
	s.m.terminate(rx.Error[T](err))
}

// OnCompleted closes the subject successfully.
func (s *Replay[T]) OnCompleted() {
	s.m.terminate(rx.Completed[T]())
}

// On implements the rx.Observer interface.
func (s *Replay[T]) On(event rx.Event[T]) {
	switch event.Kind() {
	case rx.KindNext:
		s.OnNext(event.Value())
	case rx.KindError:
		s.OnError(event.Err())
	case rx.KindCompleted:
		s.OnCompleted()
	}
}

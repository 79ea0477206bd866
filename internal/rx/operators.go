package rx

import "sync"

// Map transforms each Next value with fn. Terminal events pass through
// unchanged.
func Map[T, U any](src Observable[T], fn func(T) U) Observable[U] {
	return ObservableFunc[U](func(observer Observer[U]) Disposable {
		return src.Subscribe(ObserverFunc[T](func(event Event[T]) {
			switch event.Kind() {
			case KindNext:
				observer.On(Next(fn(event.Value())))
			case KindError:
				observer.On(Error[U](event.Err()))
			case KindCompleted:
				observer.On(Completed[U]())
			}
		}))
	})
}

// Filter drops Next values for which keep returns false. Terminal events
// pass through unchanged.
func Filter[T any](src Observable[T], keep func(T) bool) Observable[T] {
	return ObservableFunc[T](func(observer Observer[T]) Disposable {
		return src.Subscribe(ObserverFunc[T](func(event Event[T]) {
			if event.Kind() == KindNext && !keep(event.Value()) {
				return
			}
			observer.On(event)
		}))
	})
}

// SubscribeOn relocates the act of subscribing - producer-side setup and
// any initial synchronous emission - onto s. It does not affect which
// context later stages observe events on, unless those events happen to
// be emitted from within the relocated setup.
func SubscribeOn[T any](src Observable[T], s Scheduler) Observable[T] {
	return ObservableFunc[T](func(observer Observer[T]) Disposable {
		comp := NewComposite()
		task := s.Schedule(func() {
			comp.Add(src.Subscribe(observer))
		})
		comp.Add(task)
		return comp
	})
}

// ObserveOn redelivers every event to the downstream observer strictly on
// s, regardless of the context that produced it. Per-subscription ordering
// is preserved: events are queued in arrival order and drained by a single
// task at a time.
func ObserveOn[T any](src Observable[T], s Scheduler) Observable[T] {
	return ObservableFunc[T](func(observer Observer[T]) Disposable {
		q := &deliveryQueue[T]{dst: observer, sched: s}
		sub := src.Subscribe(ObserverFunc[T](q.push))
		return NewComposite(NewDisposable(q.stop), sub)
	})
}

// deliveryQueue is the relocation mechanism behind ObserveOn. Events are
// appended under a mutex; at most one drain task exists at any moment, so
// delivery order matches arrival order even on a concurrent scheduler.
type deliveryQueue[T any] struct {
	mu       sync.Mutex
	pending  []Event[T]
	draining bool
	stopped  bool
	dst      Observer[T]
	sched    Scheduler
}

func (q *deliveryQueue[T]) push(event Event[T]) {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return
	}
	q.pending = append(q.pending, event)
	if q.draining {
		q.mu.Unlock()
		return
	}
	q.draining = true
	q.mu.Unlock()
	q.sched.Schedule(q.drain)
}

func (q *deliveryQueue[T]) drain() {
	for {
		q.mu.Lock()
		if q.stopped || len(q.pending) == 0 {
			q.draining = false
			q.mu.Unlock()
			return
		}
		event := q.pending[0]
		q.pending = q.pending[1:]
		q.mu.Unlock()

		q.dst.On(event)
	}
}

func (q *deliveryQueue[T]) stop() {
	q.mu.Lock()
	q.stopped = true
	q.pending = nil
	q.mu.Unlock()
}

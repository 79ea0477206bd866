package rx

// Observer is a sink capable of receiving a sequence of events.
// After receiving a terminal event an observer must not be invoked again
// by a conforming source.
type Observer[T any] interface {
	// On delivers one event to the observer.
	On(event Event[T])
}

// ObserverFunc is a function adapter for Observer.
type ObserverFunc[T any] func(event Event[T])

// On implements the Observer interface.
func (f ObserverFunc[T]) On(event Event[T]) {
	f(event)
}

// NewObserver builds an observer from three independent response handlers.
// Any of them may be nil, in which case the corresponding events are
// discarded. This adapts ad hoc callback logic into the Observer contract
// without defining a named type per use site.
func NewObserver[T any](onNext func(T), onError func(error), onCompleted func()) Observer[T] {
	if onNext == nil {
		onNext = func(T) {}
	}
	if onError == nil {
		onError = func(error) {}
	}
	if onCompleted == nil {
		onCompleted = func() {}
	}
	return ObserverFunc[T](func(event Event[T]) {
		switch event.Kind() {
		case KindNext:
			onNext(event.Value())
		case KindError:
			onError(event.Err())
		case KindCompleted:
			onCompleted()
		}
	})
}

// OnNextObserver builds an observer that only reacts to Next events.
func OnNextObserver[T any](onNext func(T)) Observer[T] {
	return NewObserver[T](onNext, nil, nil)
}

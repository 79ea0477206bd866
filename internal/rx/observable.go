package rx

import "sync"

// Observable is a producer capable of admitting a new observer and
// returning a Disposable for it. Subscribing may begin producing events
// immediately or asynchronously, possibly on a different goroutine than
// the Subscribe call.
type Observable[T any] interface {
	// Subscribe registers the observer and returns a handle that stops
	// further delivery to it when disposed.
	Subscribe(observer Observer[T]) Disposable
}

// ObservableFunc implements Observable with a function, avoiding a new
// type for one-off sources.
type ObservableFunc[T any] func(observer Observer[T]) Disposable

// Subscribe implements the Observable interface.
func (f ObservableFunc[T]) Subscribe(observer Observer[T]) Disposable {
	return f(observer)
}

// gate enforces the event grammar and serializes delivery for a single
// subscription. It is the mechanism behind the per-subscription ordering
// contract: the mutex is held across the downstream On call, so no two
// events reach the same observer concurrently.
type gate[T any] struct {
	mu     sync.Mutex
	done   bool // terminal event delivered
	closed bool // severed by disposal, no violation implied
	dst    Observer[T]
}

// On delivers the event downstream if the subscription is still open.
func (g *gate[T]) On(event Event[T]) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	if g.done {
		violation("event %v delivered after terminal event", event)
		return
	}
	if event.IsTerminal() {
		g.done = true
	}
	g.dst.On(event)
}

// close severs delivery without emitting anything and without treating
// later events as protocol violations.
func (g *gate[T]) close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()
}

// Serialize wraps observer so that events are delivered one at a time and
// the Next* (Error|Completed)? grammar is enforced. Events arriving after
// a terminal event are protocol violations (see SetStrict). Disposing the
// returned handle severs delivery silently.
func Serialize[T any](observer Observer[T]) (Observer[T], Disposable) {
	g := &gate[T]{dst: observer}
	return g, NewDisposable(g.close)
}

// Create builds an observable from a producer function. The producer
// receives a grammar-enforcing observer and returns its own teardown
// logic (e.g. cancelling in-flight work). The Disposable handed to
// subscribers first severs delivery, then runs the producer teardown.
func Create[T any](produce func(observer Observer[T]) Disposable) Observable[T] {
	return ObservableFunc[T](func(observer Observer[T]) Disposable {
		serialized, stop := Serialize(observer)
		teardown := produce(serialized)
		return NewComposite(stop, teardown)
	})
}

// FromSlice emits each element of items in order, then completes. The
// emission happens synchronously within Subscribe.
func FromSlice[T any](items []T) Observable[T] {
	return Create(func(observer Observer[T]) Disposable {
		for _, v := range items {
			observer.On(Next(v))
		}
		observer.On(Completed[T]())
		return Disposed()
	})
}

// FromChan emits every value received from ch and completes when the
// channel is closed. Production runs on its own goroutine; disposing the
// subscription stops it without draining the channel.
func FromChan[T any](ch <-chan T) Observable[T] {
	return Create(func(observer Observer[T]) Disposable {
		stop := make(chan struct{})
		go func() {
			for {
				select {
				case v, ok := <-ch:
					if !ok {
						observer.On(Completed[T]())
						return
					}
					observer.On(Next(v))
				case <-stop:
					return
				}
			}
		}()
		return NewDisposable(func() { close(stop) })
	})
}

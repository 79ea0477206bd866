package rx

import (
	"errors"
	"strings"
	"testing"
)

func TestFromSlice(t *testing.T) {
	rec := &recorder[int]{}
	FromSlice([]int{1, 2, 3}).Subscribe(rec)

	events := rec.snapshot()
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d: %v", len(events), events)
	}
	if !equalValues(rec.values(), []int{1, 2, 3}) {
		t.Errorf("expected values [1 2 3], got %v", rec.values())
	}
	if events[3].Kind() != KindCompleted {
		t.Errorf("expected final event completed, got %v", events[3])
	}
}

func TestFromChan(t *testing.T) {
	ch := make(chan string, 3)
	ch <- "a"
	ch <- "b"
	close(ch)

	done := make(chan struct{})
	rec := &recorder[string]{}
	FromChan(ch).Subscribe(NewObserver(
		rec.onValue,
		nil,
		func() { close(done) },
	))

	<-done
	if !equalValues(rec.values(), []string{"a", "b"}) {
		t.Errorf("expected values [a b], got %v", rec.values())
	}
}

// onValue adapts the recorder for value-only observation.
func (r *recorder[T]) onValue(v T) {
	r.On(Next(v))
}

func TestFromChan_DisposeStopsDelivery(t *testing.T) {
	ch := make(chan int)
	rec := &recorder[int]{}
	sub := FromChan(ch).Subscribe(rec)

	sub.Dispose()
	sub.Dispose() // idempotent

	// The producer goroutine has been told to stop; a send would block
	// forever, so only verify nothing was delivered.
	if len(rec.snapshot()) != 0 {
		t.Errorf("expected no events after dispose, got %v", rec.snapshot())
	}
}

func TestSerialize_EnforcesGrammar(t *testing.T) {
	rec := &recorder[int]{}
	obs, _ := Serialize[int](rec)

	obs.On(Next(1))
	obs.On(Completed[int]())
	obs.On(Next(2)) // protocol violation, dropped in non-strict mode
	obs.On(Error[int](errors.New("boom")))

	events := rec.snapshot()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d: %v", len(events), events)
	}
	if events[1].Kind() != KindCompleted {
		t.Errorf("expected completed, got %v", events[1])
	}
}

func TestSerialize_DisposeSeversSilently(t *testing.T) {
	rec := &recorder[int]{}
	obs, stop := Serialize[int](rec)

	obs.On(Next(1))
	stop.Dispose()
	obs.On(Next(2))
	obs.On(Completed[int]())

	if !equalValues(rec.values(), []int{1}) {
		t.Errorf("expected only value 1, got %v", rec.values())
	}
}

func TestSerialize_StrictPanics(t *testing.T) {
	SetStrict(true)
	defer SetStrict(false)

	rec := &recorder[int]{}
	obs, _ := Serialize[int](rec)
	obs.On(Completed[int]())

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on post-terminal delivery in strict mode")
		}
		msg, ok := r.(string)
		if !ok || !strings.HasPrefix(msg, "rx: ") {
			t.Errorf("unexpected panic value: %v", r)
		}
	}()
	obs.On(Next(1))
}

func TestCreate_ComposesTeardown(t *testing.T) {
	torndown := false
	src := Create(func(observer Observer[int]) Disposable {
		observer.On(Next(1))
		return NewDisposable(func() { torndown = true })
	})

	rec := &recorder[int]{}
	sub := src.Subscribe(rec)
	sub.Dispose()

	if !torndown {
		t.Error("expected producer teardown to run on dispose")
	}
	if !equalValues(rec.values(), []int{1}) {
		t.Errorf("expected value 1, got %v", rec.values())
	}
}

func TestCreate_PostTerminalDropped(t *testing.T) {
	src := Create(func(observer Observer[int]) Disposable {
		observer.On(Next(1))
		observer.On(Completed[int]())
		observer.On(Next(2)) // must not reach the subscriber
		return Disposed()
	})

	rec := &recorder[int]{}
	src.Subscribe(rec)

	events := rec.snapshot()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d: %v", len(events), events)
	}
	if events[0].Kind() != KindNext || events[1].Kind() != KindCompleted {
		t.Errorf("unexpected sequence: %v", events)
	}
}

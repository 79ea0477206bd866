package subject

import (
	"errors"
	"testing"

	"github.com/dshills/rxstorm/internal/rx"
)

func TestPublish_LateSubscriberMissesEarlierValues(t *testing.T) {
	s := NewPublish[string]()

	s1 := &recorder[string]{}
	s.Subscribe(s1)

	s.OnNext("x")
	s.OnNext("y")

	s2 := &recorder[string]{}
	s.Subscribe(s2)

	s.OnNext("z")
	s.OnCompleted()

	wantS1 := []string{"x", "y", "z"}
	if !equalValues(s1.values(), wantS1) {
		t.Errorf("S1 values = %v, want %v", s1.values(), wantS1)
	}
	if term, ok := s1.terminal(); !ok || term.Kind() != rx.KindCompleted {
		t.Errorf("S1 expected completed, got %v", s1.snapshot())
	}

	wantS2 := []string{"z"}
	if !equalValues(s2.values(), wantS2) {
		t.Errorf("S2 values = %v, want %v", s2.values(), wantS2)
	}
	if term, ok := s2.terminal(); !ok || term.Kind() != rx.KindCompleted {
		t.Errorf("S2 expected completed, got %v", s2.snapshot())
	}
}

func TestPublish_SubscribeAfterTerminal(t *testing.T) {
	s := NewPublish[int]()
	s.OnNext(1)
	s.OnCompleted()

	late := &recorder[int]{}
	s.Subscribe(late)

	events := late.snapshot()
	if len(events) != 1 || events[0].Kind() != rx.KindCompleted {
		t.Errorf("late subscriber expected only completed, got %v", events)
	}
}

func TestPublish_SubscribeAfterError(t *testing.T) {
	cause := errors.New("boom")
	s := NewPublish[int]()
	s.OnError(cause)

	late := &recorder[int]{}
	s.Subscribe(late)

	events := late.snapshot()
	if len(events) != 1 || events[0].Kind() != rx.KindError {
		t.Fatalf("late subscriber expected only error, got %v", events)
	}
	if !errors.Is(events[0].Err(), cause) {
		t.Errorf("expected cause preserved, got %v", events[0].Err())
	}
}

func TestPublish_NoEventsAfterTerminal(t *testing.T) {
	s := NewPublish[int]()
	rec := &recorder[int]{}
	s.Subscribe(rec)

	s.OnNext(1)
	s.OnCompleted()
	s.OnNext(2)
	s.OnError(errors.New("boom"))
	s.OnCompleted()

	events := rec.snapshot()
	if len(events) != 2 {
		t.Fatalf("expected exactly 2 events, got %v", events)
	}
	if events[1].Kind() != rx.KindCompleted {
		t.Errorf("expected single terminal completed, got %v", events)
	}
}

func TestPublish_DisposeStopsDelivery(t *testing.T) {
	s := NewPublish[int]()
	rec := &recorder[int]{}
	sub := s.Subscribe(rec)

	s.OnNext(1)
	sub.Dispose()
	sub.Dispose() // idempotent
	s.OnNext(2)
	s.OnCompleted()

	if !equalValues(rec.values(), []int{1}) {
		t.Errorf("expected only value 1 after dispose, got %v", rec.values())
	}
	if _, ok := rec.terminal(); ok {
		t.Error("disposed subscriber must not receive the terminal event")
	}
}

func TestPublish_AsObserver(t *testing.T) {
	s := NewPublish[int]()
	rec := &recorder[int]{}
	s.Subscribe(rec)

	// Feed the subject through its Observer side.
	rx.FromSlice([]int{1, 2, 3}).Subscribe(s)

	if !equalValues(rec.values(), []int{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %v", rec.values())
	}
	if term, ok := rec.terminal(); !ok || term.Kind() != rx.KindCompleted {
		t.Error("expected completion to propagate through the subject")
	}
}

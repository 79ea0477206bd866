package subject

import (
	"errors"
	"testing"

	"github.com/dshills/rxstorm/internal/rx"
)

func TestAsync_DeliversOnlyLastValueOnCompletion(t *testing.T) {
	s := NewAsync[string]()

	early := &recorder[string]{}
	s.Subscribe(early)

	s.OnNext("a")
	s.OnNext("b")

	if len(early.snapshot()) != 0 {
		t.Fatalf("async subject must not deliver before completion, got %v", early.snapshot())
	}

	s.OnNext("c")
	s.OnCompleted()

	if !equalValues(early.values(), []string{"c"}) {
		t.Errorf("early subscriber values = %v, want [c]", early.values())
	}
	if term, ok := early.terminal(); !ok || term.Kind() != rx.KindCompleted {
		t.Errorf("expected completed, got %v", early.snapshot())
	}

	late := &recorder[string]{}
	s.Subscribe(late)

	if !equalValues(late.values(), []string{"c"}) {
		t.Errorf("late subscriber values = %v, want [c]", late.values())
	}
	if term, ok := late.terminal(); !ok || term.Kind() != rx.KindCompleted {
		t.Errorf("late subscriber expected completed, got %v", late.snapshot())
	}
}

func TestAsync_EmptyCompletion(t *testing.T) {
	s := NewAsync[int]()
	rec := &recorder[int]{}
	s.Subscribe(rec)

	s.OnCompleted()

	events := rec.snapshot()
	if len(events) != 1 || events[0].Kind() != rx.KindCompleted {
		t.Errorf("expected only completed, got %v", events)
	}
}

func TestAsync_ErrorDiscardsBufferedValue(t *testing.T) {
	cause := errors.New("boom")
	s := NewAsync[string]()

	early := &recorder[string]{}
	s.Subscribe(early)

	s.OnNext("a")
	s.OnError(cause)

	events := early.snapshot()
	if len(events) != 1 || events[0].Kind() != rx.KindError {
		t.Fatalf("expected only the error, got %v", events)
	}
	if !errors.Is(events[0].Err(), cause) {
		t.Errorf("expected cause preserved, got %v", events[0].Err())
	}

	late := &recorder[string]{}
	s.Subscribe(late)
	if events := late.snapshot(); len(events) != 1 || events[0].Kind() != rx.KindError {
		t.Errorf("late subscriber expected only the error, got %v", events)
	}
}

func TestAsync_ValuesAfterTerminalIgnored(t *testing.T) {
	s := NewAsync[int]()
	s.OnNext(1)
	s.OnCompleted()
	s.OnNext(2)

	rec := &recorder[int]{}
	s.Subscribe(rec)

	if !equalValues(rec.values(), []int{1}) {
		t.Errorf("expected value recorded before terminal, got %v", rec.values())
	}
}

func TestAsync_DisposeBeforeCompletion(t *testing.T) {
	s := NewAsync[int]()
	rec := &recorder[int]{}
	sub := s.Subscribe(rec)

	s.OnNext(1)
	sub.Dispose()
	s.OnCompleted()

	if len(rec.snapshot()) != 0 {
		t.Errorf("disposed subscriber must receive nothing, got %v", rec.snapshot())
	}
}

package subject

import (
	"errors"
	"testing"

	"github.com/dshills/rxstorm/internal/rx"
)

func TestReplay_BoundedBufferReplaysMostRecent(t *testing.T) {
	s := NewReplay[string](1)

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

	// S2 gets the buffered "y" on subscription, then the live "z".
	wantS2 := []string{"y", "z"}
	if !equalValues(s2.values(), wantS2) {
		t.Errorf("S2 values = %v, want %v", s2.values(), wantS2)
	}
	if term, ok := s2.terminal(); !ok || term.Kind() != rx.KindCompleted {
		t.Errorf("S2 expected completed, got %v", s2.snapshot())
	}
}

func TestReplay_UnboundedReplaysEverything(t *testing.T) {
	s := NewReplayAll[int]()
	for i := 1; i <= 5; i++ {
		s.OnNext(i)
	}

	rec := &recorder[int]{}
	s.Subscribe(rec)

	if !equalValues(rec.values(), []int{1, 2, 3, 4, 5}) {
		t.Errorf("expected full history, got %v", rec.values())
	}
}

func TestReplay_Eviction(t *testing.T) {
	s := NewReplay[int](3)
	for i := 1; i <= 6; i++ {
		s.OnNext(i)
	}

	rec := &recorder[int]{}
	s.Subscribe(rec)

	if !equalValues(rec.values(), []int{4, 5, 6}) {
		t.Errorf("expected last 3 values, got %v", rec.values())
	}
}

func TestReplay_SubscribeAfterCompleted(t *testing.T) {
	s := NewReplay[int](2)
	s.OnNext(1)
	s.OnNext(2)
	s.OnNext(3)
	s.OnCompleted()

	rec := &recorder[int]{}
	s.Subscribe(rec)

	if !equalValues(rec.values(), []int{2, 3}) {
		t.Errorf("expected buffer replay [2 3], got %v", rec.values())
	}
	if term, ok := rec.terminal(); !ok || term.Kind() != rx.KindCompleted {
		t.Errorf("expected completed after replay, got %v", rec.snapshot())
	}
}

func TestReplay_SubscribeAfterErrorReplaysBufferFirst(t *testing.T) {
	cause := errors.New("boom")
	s := NewReplay[int](0)
	s.OnNext(1)
	s.OnNext(2)
	s.OnError(cause)

	rec := &recorder[int]{}
	s.Subscribe(rec)

	if !equalValues(rec.values(), []int{1, 2}) {
		t.Errorf("expected buffer replay before error, got %v", rec.values())
	}
	term, ok := rec.terminal()
	if !ok || term.Kind() != rx.KindError {
		t.Fatalf("expected error terminal, got %v", rec.snapshot())
	}
	if !errors.Is(term.Err(), cause) {
		t.Errorf("expected cause preserved, got %v", term.Err())
	}
}

func TestReplay_NegativeSizeMeansUnbounded(t *testing.T) {
	s := NewReplay[int](-5)
	for i := 1; i <= 4; i++ {
		s.OnNext(i)
	}

	rec := &recorder[int]{}
	s.Subscribe(rec)

	if !equalValues(rec.values(), []int{1, 2, 3, 4}) {
		t.Errorf("expected full history, got %v", rec.values())
	}
}

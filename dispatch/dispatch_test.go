package dispatch

import (
	"sync"
	"testing"

	"go.aimuz.me/swatch/internal/types"
)

func TestDispatcher_PreservesOrder(t *testing.T) {
	d := New(8)

	go func() {
		for i := range 100 {
			d.Publish(Event{Kind: KindCapture, Sample: types.ColorSample{X: i}})
		}
		d.Close()
	}()

	var got []int
	for ev := range d.Events() {
		got = append(got, ev.Sample.X)
	}

	if len(got) != 100 {
		t.Fatalf("delivered %d events, want 100", len(got))
	}
	for i, x := range got {
		if x != i {
			t.Fatalf("event %d has X = %d, want %d (reordered)", i, x, i)
		}
	}
}

func TestDispatcher_ExactlyOnceAcrossProducers(t *testing.T) {
	d := New(4)

	const perProducer = 50
	var wg sync.WaitGroup
	for p := range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			kind := KindCapture
			if p == 1 {
				kind = KindLive
			}
			for i := range perProducer {
				d.Publish(Event{Kind: kind, Sample: types.ColorSample{X: i}})
			}
		}()
	}
	go func() {
		wg.Wait()
		d.Close()
	}()

	// Per-producer order must survive the merge, and nothing may be
	// duplicated or lost.
	next := map[Kind]int{KindCapture: 0, KindLive: 0}
	total := 0
	for ev := range d.Events() {
		if ev.Sample.X != next[ev.Kind] {
			t.Fatalf("%s event has X = %d, want %d", ev.Kind, ev.Sample.X, next[ev.Kind])
		}
		next[ev.Kind]++
		total++
	}
	if total != 2*perProducer {
		t.Fatalf("delivered %d events, want %d", total, 2*perProducer)
	}
}

func TestDispatcher_CloseIsIdempotent(t *testing.T) {
	d := New(0)
	d.Close()
	d.Close() // must not panic

	if _, ok := <-d.Events(); ok {
		t.Fatal("Events() yielded an event after Close on empty dispatcher")
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindCapture, "capture"},
		{KindLive, "live"},
		{Kind(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

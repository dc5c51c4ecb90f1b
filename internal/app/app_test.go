package app

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.aimuz.me/swatch/config"
	"go.aimuz.me/swatch/history"
	"go.aimuz.me/swatch/hotkey"
	"go.aimuz.me/swatch/internal/types"
)

// fakeSampler produces a distinct sample per call.
type fakeSampler struct {
	n atomic.Int64
}

func (f *fakeSampler) Sample() (types.ColorSample, error) {
	n := int(f.n.Add(1))
	r := uint8(n)
	return types.ColorSample{
		ID:  fmt.Sprintf("s-%d", n),
		X:   n,
		Y:   n,
		R:   r,
		Hex: types.HexString(r, 0, 0),
	}, nil
}

// fakeHotkeyBackend lets tests fire the capture trigger directly.
type fakeHotkeyBackend struct {
	mu      sync.Mutex
	trigger func()
}

func (f *fakeHotkeyBackend) Register(_ hotkey.Combo, onTrigger func()) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trigger = onTrigger
	return nil
}

func (f *fakeHotkeyBackend) UnregisterAll() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trigger = nil
	return nil
}

func (f *fakeHotkeyBackend) Name() string { return "fake" }

func (f *fakeHotkeyBackend) press() {
	f.mu.Lock()
	trigger := f.trigger
	f.mu.Unlock()
	if trigger != nil {
		trigger()
	}
}

// newTestService wires a Service with fakes. pollInterval controls how
// noisy the live producer is; tests that only care about captures use a
// very long interval.
func newTestService(t *testing.T, pollInterval time.Duration) (*Service, *fakeHotkeyBackend) {
	t.Helper()

	cfg := &config.Config{
		Hotkey:         config.DefaultHotkey,
		PollIntervalMS: int(pollInterval / time.Millisecond),
	}
	store := history.NewStore(filepath.Join(t.TempDir(), history.LogFilename))
	backend := &fakeHotkeyBackend{}

	s := New("test")
	s.initCore(cfg, store, &fakeSampler{}, backend)
	t.Cleanup(s.Shutdown)
	return s, backend
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal(msg)
}

func TestService_CaptureAppendsToHistory(t *testing.T) {
	s, backend := newTestService(t, time.Hour)

	backend.press()
	backend.press()
	backend.press()

	waitFor(t, func() bool { return len(s.GetHistory()) == 3 },
		"captures never reached the history log")

	got := s.GetHistory()
	for i, sample := range got {
		if sample.X != i+1 {
			t.Errorf("history[%d].X = %d, want %d (order not preserved)", i, sample.X, i+1)
		}
	}
}

func TestService_CaptureEvictsOldest(t *testing.T) {
	s, backend := newTestService(t, time.Hour)

	for range history.MaxRecords + 1 {
		backend.press()
	}

	waitFor(t, func() bool {
		h := s.GetHistory()
		return len(h) == history.MaxRecords && h[len(h)-1].X == history.MaxRecords+1
	}, "history never settled at capacity")

	got := s.GetHistory()
	if got[0].X != 2 {
		t.Errorf("oldest sample is %d, want 2 (first capture evicted)", got[0].X)
	}
}

func TestService_LiveSamplesNeverPersisted(t *testing.T) {
	s, _ := newTestService(t, time.Millisecond)

	// Let the live poller run for a while with no captures at all.
	time.Sleep(50 * time.Millisecond)

	if n := len(s.GetHistory()); n != 0 {
		t.Fatalf("history has %d entries from live polling alone, want 0", n)
	}
}

func TestService_LivePollingDoesNotBlockCaptures(t *testing.T) {
	s, backend := newTestService(t, time.Millisecond)

	backend.press()
	backend.press()

	waitFor(t, func() bool { return len(s.GetHistory()) == 2 },
		"captures lost while live polling was active")

	// Still only the two captures, regardless of live event volume.
	got := s.GetHistory()
	if len(got) != 2 || got[0].Hex == "" {
		t.Fatalf("history = %+v, want exactly the 2 captured samples", got)
	}
}

func TestService_ClearHistory(t *testing.T) {
	s, backend := newTestService(t, time.Hour)

	backend.press()
	waitFor(t, func() bool { return len(s.GetHistory()) == 1 }, "capture never landed")

	if err := s.ClearHistory(); err != nil {
		t.Fatalf("ClearHistory() error = %v", err)
	}
	if n := len(s.GetHistory()); n != 0 {
		t.Fatalf("history has %d entries after clear, want 0", n)
	}
}

func TestService_FailedHotkeyChangeDisablesCapture(t *testing.T) {
	s, backend := newTestService(t, time.Hour)

	if err := s.ChangeHotkey("not a valid spec!!"); err == nil {
		t.Fatal("ChangeHotkey() accepted a garbage spec")
	}
	if got := s.GetHotkey(); got != "" {
		t.Fatalf("active hotkey = %q after failed change, want none", got)
	}

	// The old trigger is gone: presses do nothing now.
	backend.press()
	time.Sleep(20 * time.Millisecond)
	if n := len(s.GetHistory()); n != 0 {
		t.Fatalf("history has %d entries after disabled press, want 0", n)
	}
}

func TestService_ShutdownDrainsQueuedCaptures(t *testing.T) {
	cfg := &config.Config{Hotkey: config.DefaultHotkey, PollIntervalMS: int(time.Hour / time.Millisecond)}
	store := history.NewStore(filepath.Join(t.TempDir(), history.LogFilename))
	backend := &fakeHotkeyBackend{}

	s := New("test")
	s.initCore(cfg, store, &fakeSampler{}, backend)

	backend.press()
	backend.press()
	s.Shutdown()

	if n := len(s.GetHistory()); n != 2 {
		t.Fatalf("history has %d entries after shutdown, want 2 (queued events drained)", n)
	}
}

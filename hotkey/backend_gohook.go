package hotkey

import (
	"errors"
	"sync"

	hook "github.com/robotn/gohook"
)

// gohookBackend subscribes to global key-down events through gohook.
// gohook keeps one process-wide event loop, so the backend tracks whether
// the loop is running and tears it down fully on UnregisterAll.
type gohookBackend struct {
	mu      sync.Mutex
	running bool
	done    chan struct{}
}

// NewGohookBackend returns the production hotkey backend.
func NewGohookBackend() Backend {
	return &gohookBackend{}
}

func (b *gohookBackend) Name() string { return "gohook" }

func (b *gohookBackend) Register(combo Combo, onTrigger func()) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.running {
		return errors.New("event loop already running")
	}

	hook.Register(hook.KeyDown, combo.Keys(), func(hook.Event) {
		onTrigger()
	})

	events := hook.Start()
	done := make(chan struct{})
	go func() {
		// Blocks until hook.End; no trigger fires after it returns.
		<-hook.Process(events)
		close(done)
	}()

	b.running = true
	b.done = done
	return nil
}

func (b *gohookBackend) UnregisterAll() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.running {
		return nil
	}

	// End stops the event loop and drops all registered hooks. Waiting on
	// done guarantees no callback runs after we return.
	hook.End()
	<-b.done

	b.running = false
	b.done = nil
	return nil
}

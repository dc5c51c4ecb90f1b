// Package hotkey owns the single active global hotkey registration.
//
// The OS-level subscription primitive lives behind the Backend interface;
// backend_gohook.go provides the production implementation. The Listener
// enforces the registration protocol: at most one active registration at
// any time, and a spec change that fails to register leaves the system
// with no active hotkey rather than a stale one.
package hotkey

import (
	"errors"
	"fmt"
	"sync"
)

// ErrAlreadyRegistered reports a Start while a registration is active.
var ErrAlreadyRegistered = errors.New("hotkey already registered")

// Backend is the OS interface for global hotkey subscriptions.
type Backend interface {
	// Register binds the combo to onTrigger. The callback runs on the
	// backend's own goroutine whenever the combo is pressed.
	Register(combo Combo, onTrigger func()) error

	// UnregisterAll removes every registration. After it returns no
	// further trigger is delivered.
	UnregisterAll() error

	// Name identifies the backend for logging.
	Name() string
}

// Listener owns one active hotkey registration.
//
// The trigger callback runs on the backend's goroutine, concurrently with
// everything else; it must only hand work off (sample and enqueue), never
// touch shared state directly.
type Listener struct {
	mu         sync.Mutex
	backend    Backend
	onTrigger  func()
	spec       string
	registered bool
}

// NewListener returns an unregistered listener. onTrigger is invoked on
// the backend's goroutine for every hotkey press.
func NewListener(backend Backend, onTrigger func()) *Listener {
	return &Listener{backend: backend, onTrigger: onTrigger}
}

// Start registers spec with the OS. Fails with ErrAlreadyRegistered while
// a registration is active, and with ErrInvalidSpec for a spec the parser
// or the OS rejects.
func (l *Listener) Start(spec string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.registered {
		return fmt.Errorf("%w: %q is active", ErrAlreadyRegistered, l.spec)
	}
	return l.startLocked(spec)
}

// ChangeSpec swaps the active registration: unregister the old spec, then
// register the new one. Between the two steps no trigger is delivered. If
// registering the new spec fails the listener is left with NO active
// hotkey and ErrInvalidSpec is returned; the caller decides whether to
// retry with the previous spec.
func (l *Listener) ChangeSpec(newSpec string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.registered {
		if err := l.backend.UnregisterAll(); err != nil {
			return fmt.Errorf("unregister %q: %w", l.spec, err)
		}
		l.registered = false
		l.spec = ""
	}
	return l.startLocked(newSpec)
}

// Stop removes the active registration, if any.
func (l *Listener) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.registered {
		return
	}
	_ = l.backend.UnregisterAll()
	l.registered = false
	l.spec = ""
}

// Spec returns the active spec, or "" when nothing is registered.
func (l *Listener) Spec() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.spec
}

// Registered reports whether a registration is active.
func (l *Listener) Registered() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registered
}

// startLocked parses and registers spec. Must be called with l.mu held
// and no registration active.
func (l *Listener) startLocked(spec string) error {
	combo, err := ParseSpec(spec)
	if err != nil {
		return err
	}
	if err := l.backend.Register(combo, l.onTrigger); err != nil {
		return fmt.Errorf("%w: %s rejected %q: %v", ErrInvalidSpec, l.backend.Name(), spec, err)
	}
	l.spec = spec
	l.registered = true
	return nil
}

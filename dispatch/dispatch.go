// Package dispatch hands color-sample events from producer goroutines to a
// single consumer, preserving arrival order across producers.
package dispatch

import (
	"sync"

	"go.aimuz.me/swatch/internal/types"
)

// Kind classifies a sample event.
type Kind uint8

const (
	// KindCapture is a hotkey-triggered sample destined for the history log.
	KindCapture Kind = iota
	// KindLive is a periodic preview sample; never persisted.
	KindLive
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindCapture:
		return "capture"
	case KindLive:
		return "live"
	default:
		return "unknown"
	}
}

// Event is a single item handed from a producer to the consumer.
type Event struct {
	Kind   Kind
	Sample types.ColorSample
}

// DefaultBuffer is the default dispatcher queue depth.
const DefaultBuffer = 64

// Dispatcher is an ordered single-consumer queue. Producers call Publish
// from any goroutine; the consumer ranges over Events. Every published
// event is delivered exactly once, in the order Publish calls completed.
type Dispatcher struct {
	ch        chan Event
	closeOnce sync.Once
}

// New returns a Dispatcher with the given queue depth.
// A depth <= 0 falls back to DefaultBuffer.
func New(buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Dispatcher{ch: make(chan Event, buffer)}
}

// Publish enqueues an event. Blocks while the queue is full so that no
// accepted event is ever dropped. Must not be called after Close.
func (d *Dispatcher) Publish(ev Event) {
	d.ch <- ev
}

// Events returns the consumer channel. It is closed by Close after all
// published events have been drained by the consumer.
func (d *Dispatcher) Events() <-chan Event {
	return d.ch
}

// Close ends the stream. All producers must have stopped publishing.
// Events still queued remain readable until the channel is drained.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() { close(d.ch) })
}

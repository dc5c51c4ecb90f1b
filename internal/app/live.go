package app

import (
	"context"
	"sync"
	"time"

	"go.aimuz.me/swatch/dispatch"
	"go.aimuz.me/swatch/internal/types"
)

// Sampler reads one color sample under the cursor.
type Sampler interface {
	Sample() (types.ColorSample, error)
}

// Poller periodically samples the color under the cursor and publishes it
// as a live preview event. Live samples are display-only: they never reach
// the history log. A failed read emits nothing; the preview just stays
// stale until the next successful tick.
type Poller struct {
	mu       sync.Mutex
	sampler  Sampler
	bus      *dispatch.Dispatcher
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewPoller returns a stopped poller.
func NewPoller(sampler Sampler, bus *dispatch.Dispatcher, interval time.Duration) *Poller {
	return &Poller{sampler: sampler, bus: bus, interval: interval}
}

// Start begins polling. Stops any previous run first.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done

	go p.run(ctx, done)
}

// Stop halts polling and waits for the poll goroutine to exit.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Poller) stopLocked() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
	p.cancel = nil
	p.done = nil
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick()
		}
	}
}

// tick reads one sample and publishes it for live display.
func (p *Poller) tick() {
	sample, err := p.sampler.Sample()
	if err != nil {
		return
	}
	p.bus.Publish(dispatch.Event{Kind: dispatch.KindLive, Sample: sample})
}

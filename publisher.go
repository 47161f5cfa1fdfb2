package ifuel

import (
	"context"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Publisher forwards the newest snapshot to a renderer at most once per
// interval. Snapshots offered in between replace each other in a single
// slot so only the latest one is delivered.
type Publisher struct {
	renderer Renderer
	limiter  *rate.Limiter

	pending atomic.Pointer[Snapshot]
	closed  atomic.Bool
	notify  chan struct{}
}

func NewPublisher(renderer Renderer, interval time.Duration) *Publisher {
	if interval <= 0 {
		interval = defaultPublishInterval
	}
	return &Publisher{
		renderer: renderer,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		notify:   make(chan struct{}, 1),
	}
}

// Offer stores snap as the next snapshot to deliver. It never blocks.
func (p *Publisher) Offer(snap *Snapshot) {
	if p.closed.Load() {
		return
	}
	if prev := p.pending.Swap(snap); prev != nil {
		snapshotsCoalesced.Inc()
	}
	select {
	case p.notify <- struct{}{}:
	default:
	}
}

// Run delivers pending snapshots until ctx is done or the publisher is closed.
func (p *Publisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.notify:
		}
		if err := p.limiter.Wait(ctx); err != nil {
			return err
		}
		snap := p.take()
		if snap == nil {
			continue
		}
		if err := p.renderer.Deliver(snap); err != nil {
			deliveryErrors.Inc()
			log.WithField("err", err).Error("unable to deliver snapshot")
			continue
		}
		snapshotsDelivered.Inc()
	}
}

// Close drops the pending snapshot, nothing is delivered afterwards.
func (p *Publisher) Close() {
	p.closed.Store(true)
	p.pending.Store(nil)
}

func (p *Publisher) take() *Snapshot {
	if p.closed.Load() {
		return nil
	}
	return p.pending.Swap(nil)
}

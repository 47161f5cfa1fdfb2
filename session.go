package ifuel

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Session owns the engine and publisher of one telemetry connection. A new
// connection gets a new session and so starts from an empty lap log.
type Session struct {
	ID string

	engine    *Engine
	publisher *Publisher
	log       *log.Entry

	cancel context.CancelFunc
	done   chan struct{}
}

func NewSession(ctx context.Context, opts *OptionsStore, renderer Renderer) *Session {
	ctx, cancel := context.WithCancel(ctx)
	id := uuid.New().String()
	s := &Session{
		ID:        id,
		engine:    NewEngine(opts),
		publisher: NewPublisher(renderer, opts.Load().PublishInterval.Duration),
		log:       log.WithField("session", id),
		cancel:    cancel,
		done:      make(chan struct{}),
	}
	go func() {
		defer close(s.done)
		_ = s.publisher.Run(ctx)
	}()
	s.log.Info("session started")
	return s
}

// Process computes the snapshot for sample and queues it for delivery.
func (s *Session) Process(sample RawSample) *Snapshot {
	snap := s.engine.Process(sample)
	s.publisher.Offer(snap)
	return snap
}

// Close cancels any pending delivery and waits for the publisher to stop.
func (s *Session) Close() {
	s.publisher.Close()
	s.cancel()
	<-s.done
	s.log.WithField("laps", s.engine.Laps()).Info("session closed")
}

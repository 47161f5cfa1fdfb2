package ifuel

import (
	"context"
)

// Renderer receives throttled snapshots. Deliver is only ever called from
// the publisher goroutine of a session.
type Renderer interface {
	Deliver(*Snapshot) error
}

type RendererFunc func(*Snapshot) error

func (fn RendererFunc) Deliver(snap *Snapshot) error {
	return fn(snap)
}

// Retryable is a connection that Retry keeps alive.
type Retryable interface {
	Open() error
	Close() error
	Start(ctx context.Context) error
	Name() string
}

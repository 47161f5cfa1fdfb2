package forwarder

import (
	"github.com/jd3nn1s/ifuel"
	"github.com/pkg/errors"
)

// Fanout delivers to every renderer and returns the first error seen.
type Fanout []ifuel.Renderer

func (f Fanout) Deliver(snap *ifuel.Snapshot) error {
	var firstErr error
	for _, r := range f {
		if err := r.Deliver(snap); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "renderer %T", r)
		}
	}
	return firstErr
}

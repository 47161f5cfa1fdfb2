package ifuel

import (
	"github.com/pkg/errors"
)

type rendererStub struct {
	snapChan chan *Snapshot
	err      error
}

func createRendererStub() *rendererStub {
	return &rendererStub{
		snapChan: make(chan *Snapshot, 16),
	}
}

func (r *rendererStub) Deliver(snap *Snapshot) error {
	r.snapChan <- snap
	return r.err
}

var errRenderer = errors.New("renderer unavailable")

func ptr[T any](v T) *T {
	return &v
}

// lapSample builds a sample for a car that has completed lapCompleted laps.
func lapSample(fuel float64, lapCompleted int, lastLapTime float64) RawSample {
	return RawSample{
		FuelLevel:    fuel,
		Lap:          ptr(lapCompleted + 1),
		LapCompleted: lapCompleted,
		LastLapTime:  lastLapTime,
	}
}

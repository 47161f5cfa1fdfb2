package ifuel

import (
	log "github.com/sirupsen/logrus"
)

// Detector turns the lapCompleted counter into lap boundaries and measures
// the fuel used between consecutive boundaries.
type Detector struct {
	initialized      bool
	lastLapCompleted int
	lapStartFuel     float64
}

// Observe feeds one sample. It returns a LapSample when a boundary was
// crossed and the lap passed the validity filters in opts.
//
// fuelUsed may be negative after a mid-lap refuel. It is only rejected when
// it does not exceed MinFuelUsedPerLap, so with a negative minimum a
// negative lap is accepted.
func (d *Detector) Observe(sample RawSample, opts Options) (LapSample, bool) {
	if !d.initialized {
		d.initialized = true
		d.lastLapCompleted = sample.LapCompleted
		d.lapStartFuel = sample.FuelLevel
		return LapSample{}, false
	}
	if sample.LapCompleted <= d.lastLapCompleted {
		return LapSample{}, false
	}

	fuelUsed := d.lapStartFuel - sample.FuelLevel
	d.lapStartFuel = sample.FuelLevel
	d.lastLapCompleted = sample.LapCompleted

	fields := log.Fields{
		"lap":      sample.LapCompleted,
		"fuelUsed": fuelUsed,
		"lapTime":  sample.LastLapTime,
	}
	if sample.LastLapTime <= opts.MinLapTimeSeconds {
		log.WithFields(fields).Debug("lap rejected: lap time below minimum")
		lapsRejected.WithLabelValues("lap_time").Inc()
		return LapSample{}, false
	}
	if fuelUsed <= opts.MinFuelUsedPerLap {
		log.WithFields(fields).Debug("lap rejected: fuel used below minimum")
		lapsRejected.WithLabelValues("fuel_used").Inc()
		return LapSample{}, false
	}
	log.WithFields(fields).Debug("lap accepted")
	lapsAccepted.Inc()
	return LapSample{
		LapNumber: sample.LapCompleted,
		FuelUsed:  fuelUsed,
		LapTime:   sample.LastLapTime,
	}, true
}

package ifuel

import (
	"fmt"
	"math"
)

const (
	shortHistoryLaps = 5
	longHistoryLaps  = 30
)

// Engine holds the fuel state of one connection. Process must be called
// from a single goroutine in sample arrival order.
type Engine struct {
	opts *OptionsStore

	detector    Detector
	laps        LapLog
	maxFuelSeen float64
}

func NewEngine(opts *OptionsStore) *Engine {
	return &Engine{
		opts: opts,
	}
}

// Laps returns the number of accepted laps.
func (e *Engine) Laps() int {
	return e.laps.Len()
}

// Process runs one sample through lap detection, aggregation, estimation
// and planning and returns a new snapshot.
func (e *Engine) Process(sample RawSample) *Snapshot {
	opts := e.opts.Load()
	samplesProcessed.Inc()

	if sample.FuelLevel > e.maxFuelSeen {
		e.maxFuelSeen = sample.FuelLevel
	}
	if lap, ok := e.detector.Observe(sample, opts); ok {
		e.laps.Append(lap)
	}

	consumption := Aggregate(&e.laps, sample.FuelMax, e.maxFuelSeen)
	rate := consumption.ReferenceRate()
	est := EstimateRange(EstimateInput{
		FuelLevel:           sample.FuelLevel,
		LoggedLaps:          e.laps.Len(),
		ReferenceRate:       rate,
		AvgLapTime:          consumption.AvgLapTime,
		SessionLapsRemainEx: sample.SessionLapsRemainEx,
		SessionTimeRemain:   sample.SessionTimeRemain,
		SafetyExtraLaps:     opts.SafetyExtraLaps,
	})
	plan := PlanStints(PlanInput{
		Lap:                 sample.Lap,
		LoggedLaps:          e.laps.Len(),
		FuelCapacity:        consumption.FuelCapacity,
		ReferenceRate:       rate,
		AvgLapTime:          consumption.AvgLapTime,
		EstLaps:             est.EstLaps,
		SessionLapsRemainEx: sample.SessionLapsRemainEx,
		SessionTimeRemain:   sample.SessionTimeRemain,
	})

	snap := &Snapshot{
		Fuel:                sample.FuelLevel,
		FuelMax:             copyFloat(sample.FuelMax),
		FuelCapacity:        consumption.FuelCapacity,
		LapNumber:           copyInt(sample.Lap),
		FuelLast:            consumption.FuelLast,
		FuelAvg:             consumption.FuelAvg,
		FuelAvg2:            consumption.FuelAvg2,
		FuelAvg5:            consumption.FuelAvg5,
		FuelAvg10:           consumption.FuelAvg10,
		FuelAvgSelected:     consumption.Selected(opts.AvgWindow),
		FuelLevelRatio:      fuelLevelRatio(sample.FuelLevel, consumption.FuelCapacity, sample.FuelMax),
		EstLaps:             est.EstLaps,
		EstRefuel:           est.EstRefuel,
		FuelTime:            est.FuelTime,
		SessionLapsRemainEx: copyInt(sample.SessionLapsRemainEx),
		SessionTimeRemain:   copyFloat(sample.SessionTimeRemain),
		AirTemp:             copyFloat(sample.AirTemp),
		TrackTemp:           copyFloat(sample.TrackTemp),
		EarliestPitLap:      plan.EarliestPitLap,
		TotalStops:          plan.TotalStops,
		StintLaps:           plan.StintLaps,
		LapHistoryLast5:     e.laps.Tail(shortHistoryLaps),
		LapHistoryLast30:    e.laps.Tail(longHistoryLaps),
	}
	if sample.LastLapTime != 0 {
		snap.LapTime = float64Ptr(sample.LastLapTime)
	}
	if snap.FuelLast != nil && snap.FuelAvgSelected != nil {
		snap.FuelLastDelta = float64Ptr(*snap.FuelLast - *snap.FuelAvgSelected)
	}
	snap.SessionFormat, snap.SessionLabel = sessionLabel(sample.SessionLapsRemainEx, sample.SessionTimeRemain)
	return snap
}

// fuelLevelRatio is fuel over the best known capacity, clamped to [0, 1].
func fuelLevelRatio(fuel float64, capacity, fuelMax *float64) float64 {
	denominator := fuel
	if capacity != nil {
		denominator = *capacity
	} else if fuelMax != nil {
		denominator = *fuelMax
	}
	if denominator <= 0 {
		return 0
	}
	return math.Min(1, math.Max(0, fuel/denominator))
}

func sessionLabel(lapsRemain *int, timeRemain *float64) (SessionFormat, string) {
	switch {
	case lapsLimited(lapsRemain):
		return SessionLapsLimited, fmt.Sprintf("%d LAPS LEFT", *lapsRemain)
	case timeLimited(timeRemain):
		return SessionTimeLimited, formatClock(*timeRemain) + " LEFT"
	}
	return SessionNone, "--"
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return float64Ptr(*v)
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	return intPtr(*v)
}

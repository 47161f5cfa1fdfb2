package ifuel

import (
	"math"
)

type PlanInput struct {
	Lap                 *int
	LoggedLaps          int
	FuelCapacity        *float64
	ReferenceRate       *float64
	AvgLapTime          float64
	EstLaps             *float64
	SessionLapsRemainEx *int
	SessionTimeRemain   *float64
}

type Plan struct {
	TotalStops     *int
	StintLaps      []int
	EarliestPitLap *int
}

// PlanStints works out how many stops the rest of the race needs, where to put
// them so stints are even, and the earliest lap a stop still gets the car
// to the finish. Lap limited races need the current lap, time limited races
// need two logged laps.
func PlanStints(in PlanInput) Plan {
	plan := Plan{StintLaps: []int{}}
	if in.ReferenceRate == nil || *in.ReferenceRate <= 0 ||
		in.FuelCapacity == nil || *in.FuelCapacity <= 0 {
		return plan
	}
	switch {
	case in.Lap != nil && lapsLimited(in.SessionLapsRemainEx):
		planLapsLimited(in, &plan)
	case timeLimited(in.SessionTimeRemain) && in.LoggedLaps >= 2:
		planTimeLimited(in, &plan)
	}
	return plan
}

func planLapsLimited(in PlanInput, plan *Plan) {
	rate := *in.ReferenceRate
	lap := float64(*in.Lap)
	lapsRemain := float64(*in.SessionLapsRemainEx)

	maxStintLaps := *in.FuelCapacity / rate
	raceLaps := lap + lapsRemain
	if maxStintLaps > 0 && raceLaps > 0 {
		stops := stopCount(raceLaps, maxStintLaps)
		approxStint := raceLaps / float64(stops+1)
		for i := 0; i < stops; i++ {
			plan.StintLaps = append(plan.StintLaps, roundHalfUp(approxStint*float64(i+1)))
		}
		plan.TotalStops = intPtr(stops)
	}

	if in.EstLaps == nil || *in.EstLaps <= 0 {
		return
	}
	estLaps := *in.EstLaps
	if lapsRemain <= estLaps {
		return
	}
	lapsShort := lapsRemain - estLaps
	if lapsShort <= maxStintLaps {
		plan.EarliestPitLap = intPtr(*in.Lap + int(math.Floor(estLaps)))
		return
	}
	extraLaps := lapsShort - maxStintLaps
	plan.EarliestPitLap = intPtr(*in.Lap + int(math.Floor(estLaps+extraLaps)))
}

func planTimeLimited(in PlanInput, plan *Plan) {
	if in.AvgLapTime <= 0 {
		return
	}
	rate := *in.ReferenceRate
	timeRemain := *in.SessionTimeRemain
	lap := 0.0
	if in.Lap != nil {
		lap = float64(*in.Lap)
	}

	stintTimeMax := *in.FuelCapacity / rate * in.AvgLapTime
	raceTime := lap*in.AvgLapTime + timeRemain
	if stintTimeMax > 0 && raceTime > 0 {
		stops := stopCount(raceTime, stintTimeMax)
		approxStintTime := raceTime / float64(stops+1)
		for i := 0; i < stops; i++ {
			plan.StintLaps = append(plan.StintLaps, roundHalfUp(approxStintTime*float64(i+1)/in.AvgLapTime))
		}
		plan.TotalStops = intPtr(stops)
	}

	if in.EstLaps == nil || *in.EstLaps <= 0 || stintTimeMax <= 0 {
		return
	}
	secondsOfFuel := *in.EstLaps * in.AvgLapTime
	secondsShort := timeRemain - secondsOfFuel
	if secondsShort <= 0 {
		return
	}
	extraFromFull := stintTimeMax - secondsOfFuel
	if extraFromFull > 0 {
		plan.EarliestPitLap = intPtr(roundHalfUp(lap + secondsShort/extraFromFull))
		return
	}
	if in.Lap != nil {
		plan.EarliestPitLap = intPtr(*in.Lap)
	}
}

// stopCount is the number of stops needed to cover total with stints of at
// most stint each.
func stopCount(total, stint float64) int {
	stops := int(math.Ceil(total/stint)) - 1
	if stops < 0 {
		return 0
	}
	return stops
}

// roundHalfUp rounds .5 towards positive infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

package ifuel

import (
	"fmt"
	"math"
)

const fuelTimePlaceholder = "--:--"

type EstimateInput struct {
	FuelLevel           float64
	LoggedLaps          int
	ReferenceRate       *float64
	AvgLapTime          float64
	SessionLapsRemainEx *int
	SessionTimeRemain   *float64
	SafetyExtraLaps     float64
}

type Estimate struct {
	EstLaps   *float64
	EstRefuel *float64
	FuelTime  string
}

// EstimateRange projects the laps left in the tank and the fuel to add to reach
// the end of the session plus the safety margin. Nothing is projected until
// two laps are logged and the reference rate is positive.
func EstimateRange(in EstimateInput) Estimate {
	est := Estimate{FuelTime: fuelTimePlaceholder}
	if in.LoggedLaps < 2 || in.ReferenceRate == nil || *in.ReferenceRate <= 0 {
		return est
	}
	rate := *in.ReferenceRate
	estLaps := in.FuelLevel / rate
	est.EstLaps = float64Ptr(estLaps)

	refuel := 0.0
	switch {
	case lapsLimited(in.SessionLapsRemainEx):
		fuelNeeded := (float64(*in.SessionLapsRemainEx) + in.SafetyExtraLaps) * rate
		refuel = math.Max(0, fuelNeeded-in.FuelLevel)
	case timeLimited(in.SessionTimeRemain) && in.AvgLapTime > 0:
		secondsOfFuel := estLaps * in.AvgLapTime
		targetSeconds := *in.SessionTimeRemain + in.SafetyExtraLaps*in.AvgLapTime
		extraSeconds := targetSeconds - secondsOfFuel
		if extraSeconds > 0 {
			refuel = extraSeconds / in.AvgLapTime * rate
		}
	}
	est.EstRefuel = float64Ptr(refuel)

	if in.AvgLapTime > 0 {
		est.FuelTime = formatMinutes(estLaps * in.AvgLapTime)
	}
	return est
}

func lapsLimited(lapsRemain *int) bool {
	return lapsRemain != nil && *lapsRemain > 0 && *lapsRemain < lapsLimitSentinel
}

func timeLimited(timeRemain *float64) bool {
	return timeRemain != nil && *timeRemain > 0
}

// formatMinutes renders seconds as MM:SS, minutes are not wrapped into hours.
func formatMinutes(seconds float64) string {
	mm := int(math.Floor(seconds / 60))
	ss := int(math.Floor(math.Mod(seconds, 60)))
	return fmt.Sprintf("%02d:%02d", mm, ss)
}

// formatClock renders seconds as HH:MM:SS.
func formatClock(seconds float64) string {
	total := int(math.Floor(seconds))
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

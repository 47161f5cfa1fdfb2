package ifuel

// Consumption is the set of averages derived from the lap log.
type Consumption struct {
	FuelCapacity *float64
	FuelLast     *float64
	FuelAvg      *float64
	FuelAvg2     *float64
	FuelAvg5     *float64
	FuelAvg10    *float64
	// AvgLapTime is the all-time mean lap time, zero on an empty log.
	AvgLapTime float64
}

// Aggregate derives consumption figures from laps. fuelMax is the reported
// tank size, maxFuelSeen the largest fuel level observed so far.
func Aggregate(laps *LapLog, fuelMax *float64, maxFuelSeen float64) Consumption {
	c := Consumption{
		FuelCapacity: fuelCapacity(fuelMax, maxFuelSeen),
	}
	if last, ok := laps.Last(); ok {
		c.FuelLast = float64Ptr(last.FuelUsed)
	}
	c.FuelAvg = meanFuel(laps, 0)
	c.FuelAvg2 = meanFuel(laps, 2)
	c.FuelAvg5 = meanFuel(laps, 5)
	c.FuelAvg10 = meanFuel(laps, 10)
	if avg, ok := laps.MeanLapTime(); ok {
		c.AvgLapTime = avg
	}
	return c
}

// ReferenceRate prefers the five lap average and falls back to the all-time one.
func (c Consumption) ReferenceRate() *float64 {
	if c.FuelAvg5 != nil {
		return c.FuelAvg5
	}
	return c.FuelAvg
}

// Selected returns the rolling average for window 2, 5 or 10.
func (c Consumption) Selected(window int) *float64 {
	switch window {
	case 2:
		return c.FuelAvg2
	case 10:
		return c.FuelAvg10
	}
	return c.FuelAvg5
}

func fuelCapacity(fuelMax *float64, maxFuelSeen float64) *float64 {
	if fuelMax != nil && *fuelMax > 0 {
		return float64Ptr(*fuelMax)
	}
	if maxFuelSeen > 0 {
		return float64Ptr(maxFuelSeen)
	}
	return nil
}

func meanFuel(laps *LapLog, n int) *float64 {
	if avg, ok := laps.MeanFuel(n); ok {
		return float64Ptr(avg)
	}
	return nil
}

package ifuel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanNeedsRateAndCapacity(t *testing.T) {
	inputs := []PlanInput{
		{Lap: ptr(10), SessionLapsRemainEx: ptr(5), FuelCapacity: ptr(50.0)},
		{Lap: ptr(10), SessionLapsRemainEx: ptr(5), FuelCapacity: ptr(50.0), ReferenceRate: ptr(0.0)},
		{Lap: ptr(10), SessionLapsRemainEx: ptr(5), ReferenceRate: ptr(2.0)},
		{Lap: ptr(10), SessionLapsRemainEx: ptr(5), ReferenceRate: ptr(2.0), FuelCapacity: ptr(0.0)},
	}
	for _, in := range inputs {
		plan := PlanStints(in)
		assert.Nil(t, plan.TotalStops)
		assert.Nil(t, plan.EarliestPitLap)
		assert.Equal(t, []int{}, plan.StintLaps)
	}
}

func TestPlanLapsLimitedNoStop(t *testing.T) {
	plan := PlanStints(PlanInput{
		Lap:                 ptr(10),
		LoggedLaps:          4,
		FuelCapacity:        ptr(50.0),
		ReferenceRate:       ptr(2.0),
		SessionLapsRemainEx: ptr(5),
	})
	require.NotNil(t, plan.TotalStops)
	assert.Equal(t, 0, *plan.TotalStops)
	assert.Equal(t, []int{}, plan.StintLaps)
	assert.Nil(t, plan.EarliestPitLap)
}

func TestPlanLapsLimitedStops(t *testing.T) {
	plan := PlanStints(PlanInput{
		Lap:                 ptr(1),
		LoggedLaps:          4,
		FuelCapacity:        ptr(50.0),
		ReferenceRate:       ptr(2.5),
		EstLaps:             ptr(12.0),
		SessionLapsRemainEx: ptr(59),
	})
	require.NotNil(t, plan.TotalStops)
	assert.Equal(t, 2, *plan.TotalStops)
	assert.Equal(t, []int{20, 40}, plan.StintLaps)
	// 47 laps short is more than one full tank
	require.NotNil(t, plan.EarliestPitLap)
	assert.Equal(t, 40, *plan.EarliestPitLap)

	plan = PlanStints(PlanInput{
		Lap:                 ptr(1),
		LoggedLaps:          4,
		FuelCapacity:        ptr(50.0),
		ReferenceRate:       ptr(2.5),
		EstLaps:             ptr(12.0),
		SessionLapsRemainEx: ptr(30),
	})
	assert.Equal(t, 1, *plan.TotalStops)
	assert.Equal(t, []int{16}, plan.StintLaps, "15.5 rounds up")
	require.NotNil(t, plan.EarliestPitLap)
	assert.Equal(t, 13, *plan.EarliestPitLap)
}

func TestPlanLapsLimitedFuelCoversRace(t *testing.T) {
	plan := PlanStints(PlanInput{
		Lap:                 ptr(20),
		LoggedLaps:          4,
		FuelCapacity:        ptr(50.0),
		ReferenceRate:       ptr(2.0),
		EstLaps:             ptr(8.0),
		SessionLapsRemainEx: ptr(8),
	})
	assert.Nil(t, plan.EarliestPitLap)
}

func TestPlanLapsLimitedWithOneLoggedLap(t *testing.T) {
	// the lap limited plan does not wait for a second lap, only the
	// earliest pit lap needs an estimate
	plan := PlanStints(PlanInput{
		Lap:                 ptr(2),
		LoggedLaps:          1,
		FuelCapacity:        ptr(20.0),
		ReferenceRate:       ptr(2.0),
		SessionLapsRemainEx: ptr(28),
	})
	require.NotNil(t, plan.TotalStops)
	assert.Equal(t, 2, *plan.TotalStops)
	assert.Equal(t, []int{10, 20}, plan.StintLaps)
	assert.Nil(t, plan.EarliestPitLap)
}

func TestPlanLapsLimitedNeedsLap(t *testing.T) {
	plan := PlanStints(PlanInput{
		LoggedLaps:          1,
		FuelCapacity:        ptr(20.0),
		ReferenceRate:       ptr(2.0),
		SessionLapsRemainEx: ptr(28),
	})
	assert.Nil(t, plan.TotalStops)
	assert.Equal(t, []int{}, plan.StintLaps)
}

func TestPlanTimeLimited(t *testing.T) {
	plan := PlanStints(PlanInput{
		Lap:                 ptr(10),
		LoggedLaps:          2,
		FuelCapacity:        ptr(40.0),
		ReferenceRate:       ptr(2.0),
		AvgLapTime:          60,
		EstLaps:             ptr(5.0),
		SessionLapsRemainEx: ptr(2000),
		SessionTimeRemain:   ptr(600.0),
	})
	// stint time max is 1200s, race time is 10*60 + 600
	require.NotNil(t, plan.TotalStops)
	assert.Equal(t, 0, *plan.TotalStops)
	assert.Equal(t, []int{}, plan.StintLaps)
	// 300s short, a full tank adds 900s
	require.NotNil(t, plan.EarliestPitLap)
	assert.Equal(t, 10, *plan.EarliestPitLap)
}

func TestPlanTimeLimitedStops(t *testing.T) {
	plan := PlanStints(PlanInput{
		Lap:               ptr(0),
		LoggedLaps:        3,
		FuelCapacity:      ptr(40.0),
		ReferenceRate:     ptr(2.0),
		AvgLapTime:        60,
		EstLaps:           ptr(2.0),
		SessionTimeRemain: ptr(3000.0),
	})
	// 3000s race, 1200s per tank
	assert.Equal(t, 2, *plan.TotalStops)
	assert.Equal(t, []int{17, 33}, plan.StintLaps)
	// 2880s short, a full tank adds 1080s
	assert.Equal(t, 3, *plan.EarliestPitLap)
}

func TestPlanTimeLimitedNeedsTwoLaps(t *testing.T) {
	plan := PlanStints(PlanInput{
		Lap:               ptr(3),
		LoggedLaps:        1,
		FuelCapacity:      ptr(40.0),
		ReferenceRate:     ptr(2.0),
		AvgLapTime:        60,
		SessionTimeRemain: ptr(600.0),
	})
	assert.Nil(t, plan.TotalStops)
	assert.Equal(t, []int{}, plan.StintLaps)
	assert.Nil(t, plan.EarliestPitLap)
}

func TestPlanTimeLimitedFullTankNotEnough(t *testing.T) {
	// already carrying more than a tank's worth, e.g. capacity is stale
	plan := PlanStints(PlanInput{
		Lap:               ptr(4),
		LoggedLaps:        3,
		FuelCapacity:      ptr(10.0),
		ReferenceRate:     ptr(2.0),
		AvgLapTime:        60,
		EstLaps:           ptr(6.0),
		SessionTimeRemain: ptr(600.0),
	})
	require.NotNil(t, plan.EarliestPitLap)
	assert.Equal(t, 4, *plan.EarliestPitLap)

	plan = PlanStints(PlanInput{
		LoggedLaps:        3,
		FuelCapacity:      ptr(10.0),
		ReferenceRate:     ptr(2.0),
		AvgLapTime:        60,
		EstLaps:           ptr(6.0),
		SessionTimeRemain: ptr(600.0),
	})
	assert.Nil(t, plan.EarliestPitLap, "unknown lap has no pit lap to report")
}

func TestPlanTimeLimitedFuelCoversRace(t *testing.T) {
	plan := PlanStints(PlanInput{
		Lap:               ptr(4),
		LoggedLaps:        3,
		FuelCapacity:      ptr(40.0),
		ReferenceRate:     ptr(2.0),
		AvgLapTime:        60,
		EstLaps:           ptr(15.0),
		SessionTimeRemain: ptr(600.0),
	})
	assert.Nil(t, plan.EarliestPitLap)
}

func TestPlanNeitherFormat(t *testing.T) {
	plan := PlanStints(PlanInput{
		Lap:                 ptr(4),
		LoggedLaps:          3,
		FuelCapacity:        ptr(40.0),
		ReferenceRate:       ptr(2.0),
		AvgLapTime:          60,
		EstLaps:             ptr(5.0),
		SessionLapsRemainEx: ptr(32767),
	})
	assert.Nil(t, plan.TotalStops)
	assert.Equal(t, []int{}, plan.StintLaps)
	assert.Nil(t, plan.EarliestPitLap)
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 16, roundHalfUp(15.5))
	assert.Equal(t, 15, roundHalfUp(15.49))
	assert.Equal(t, 0, roundHalfUp(0.2))
}

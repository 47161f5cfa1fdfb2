package ifuel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateEmptyLog(t *testing.T) {
	c := Aggregate(&LapLog{}, nil, 0)
	assert.Nil(t, c.FuelCapacity)
	assert.Nil(t, c.FuelLast)
	assert.Nil(t, c.FuelAvg)
	assert.Nil(t, c.FuelAvg2)
	assert.Nil(t, c.FuelAvg5)
	assert.Nil(t, c.FuelAvg10)
	assert.Nil(t, c.ReferenceRate())
	assert.Equal(t, 0.0, c.AvgLapTime)
}

func TestAggregateAverages(t *testing.T) {
	c := Aggregate(fillLapLog(3, 1, 2, 2, 2, 4, 3), nil, 40)

	require.NotNil(t, c.FuelLast)
	assert.InDelta(t, 3, *c.FuelLast, 1e-9)
	assert.InDelta(t, 17.0/7, *c.FuelAvg, 1e-9)
	assert.InDelta(t, 3.5, *c.FuelAvg2, 1e-9)
	assert.InDelta(t, 13.0/5, *c.FuelAvg5, 1e-9)
	assert.InDelta(t, 17.0/7, *c.FuelAvg10, 1e-9)
	assert.InDelta(t, 63, c.AvgLapTime, 1e-9)

	assert.Equal(t, c.FuelAvg5, c.ReferenceRate())
	assert.Equal(t, c.FuelAvg2, c.Selected(2))
	assert.Equal(t, c.FuelAvg5, c.Selected(5))
	assert.Equal(t, c.FuelAvg10, c.Selected(10))
}

func TestAggregateSingleLap(t *testing.T) {
	c := Aggregate(fillLapLog(2.5), nil, 0)
	for _, v := range []*float64{c.FuelLast, c.FuelAvg, c.FuelAvg2, c.FuelAvg5, c.FuelAvg10} {
		require.NotNil(t, v)
		assert.InDelta(t, 2.5, *v, 1e-9)
	}
}

func TestFuelCapacity(t *testing.T) {
	assert.Nil(t, fuelCapacity(nil, 0))
	assert.Equal(t, ptr(35.0), fuelCapacity(nil, 35))
	assert.Equal(t, ptr(60.0), fuelCapacity(ptr(60.0), 35))
	// a zero tank size is treated as unknown
	assert.Equal(t, ptr(35.0), fuelCapacity(ptr(0.0), 35))
	assert.Nil(t, fuelCapacity(ptr(0.0), 0))
}

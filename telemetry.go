package ifuel

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// lapsLimitSentinel and above in sessionLapsRemainEx means the session is not lap limited.
const lapsLimitSentinel = 1000

var ErrMalformedSample = errors.New("malformed sample")

// RawSample is one telemetry tick as delivered by the transport. Optional
// fields are nil when the message did not carry them.
type RawSample struct {
	FuelLevel           float64
	Lap                 *int
	LapCompleted        int
	LastLapTime         float64
	SessionTimeRemain   *float64
	SessionLapsRemainEx *int
	FuelMax             *float64
	AirTemp             *float64
	TrackTemp           *float64
}

type rawMessage struct {
	FuelLevel           *float64 `json:"fuelLevel"`
	Lap                 *float64 `json:"lap"`
	LapCompleted        *float64 `json:"lapCompleted"`
	LastLapTime         *float64 `json:"lastLapTime"`
	SessionTimeRemain   *float64 `json:"sessionTimeRemain"`
	SessionLapsRemainEx *float64 `json:"sessionLapsRemainEx"`
	FuelMax             *float64 `json:"fuelMax"`
	AirTemp             *float64 `json:"airTemp"`
	TrackTemp           *float64 `json:"trackTemp"`
}

// ParseSample decodes a single JSON telemetry message.
func ParseSample(data []byte) (RawSample, error) {
	msg := rawMessage{}
	if err := json.Unmarshal(data, &msg); err != nil {
		return RawSample{}, errors.Wrap(ErrMalformedSample, err.Error())
	}
	if msg.FuelLevel == nil {
		return RawSample{}, errors.Wrap(ErrMalformedSample, "fuelLevel missing")
	}
	if *msg.FuelLevel < 0 {
		return RawSample{}, errors.Wrapf(ErrMalformedSample, "negative fuelLevel %v", *msg.FuelLevel)
	}
	if msg.LapCompleted == nil {
		return RawSample{}, errors.Wrap(ErrMalformedSample, "lapCompleted missing")
	}

	sample := RawSample{
		FuelLevel:         *msg.FuelLevel,
		LapCompleted:      int(*msg.LapCompleted),
		SessionTimeRemain: msg.SessionTimeRemain,
		FuelMax:           msg.FuelMax,
		AirTemp:           msg.AirTemp,
		TrackTemp:         msg.TrackTemp,
	}
	if msg.LastLapTime != nil {
		sample.LastLapTime = *msg.LastLapTime
	}
	if msg.Lap != nil {
		lap := int(*msg.Lap)
		sample.Lap = &lap
	}
	if msg.SessionLapsRemainEx != nil {
		laps := int(*msg.SessionLapsRemainEx)
		sample.SessionLapsRemainEx = &laps
	}
	return sample, nil
}

// LapSample is the fuel used over one completed, valid lap.
type LapSample struct {
	LapNumber int     `json:"lapNumber"`
	FuelUsed  float64 `json:"fuelUsed"`
	LapTime   float64 `json:"lapTime"`
}

type SessionFormat string

const (
	SessionNone        SessionFormat = "none"
	SessionLapsLimited SessionFormat = "laps"
	SessionTimeLimited SessionFormat = "time"
)

// Snapshot is the immutable result of processing one sample. Nil pointers
// mean the value's preconditions did not hold for that sample.
type Snapshot struct {
	Fuel         float64  `json:"fuel"`
	FuelMax      *float64 `json:"fuelMax"`
	FuelCapacity *float64 `json:"fuelCapacity"`
	LapNumber    *int     `json:"lapNumber"`
	LapTime      *float64 `json:"lapTime"`

	FuelLast        *float64 `json:"fuelLast"`
	FuelAvg         *float64 `json:"fuelAvg"`
	FuelAvg2        *float64 `json:"fuelAvg2"`
	FuelAvg5        *float64 `json:"fuelAvg5"`
	FuelAvg10       *float64 `json:"fuelAvg10"`
	FuelAvgSelected *float64 `json:"fuelAvgSelected"`
	FuelLastDelta   *float64 `json:"fuelLastDelta"`
	FuelLevelRatio  float64  `json:"fuelLevelRatio"`

	EstLaps   *float64 `json:"estLaps"`
	EstRefuel *float64 `json:"estRefuel"`
	FuelTime  string   `json:"fuelTime"`

	SessionFormat       SessionFormat `json:"sessionFormat"`
	SessionLabel        string        `json:"sessionLabel"`
	SessionLapsRemainEx *int          `json:"sessionLapsRemainEx"`
	SessionTimeRemain   *float64      `json:"sessionTimeRemain"`
	AirTemp             *float64      `json:"airTemp"`
	TrackTemp           *float64      `json:"trackTemp"`

	EarliestPitLap *int  `json:"earliestPitLap"`
	TotalStops     *int  `json:"totalStops"`
	StintLaps      []int `json:"stintLaps"`

	LapHistoryLast5  []LapSample `json:"lapHistoryLast5"`
	LapHistoryLast30 []LapSample `json:"lapHistoryLast30"`
}

func float64Ptr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}

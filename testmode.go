package ifuel

import (
	"context"
	"time"
)

// SimulatorConfig describes the synthetic session produced in test mode.
type SimulatorConfig struct {
	TankSize    float64
	FuelPerLap  float64
	LapTime     float64
	TicksPerLap int
	SessionTime float64
	Interval    time.Duration
}

func DefaultSimulatorConfig() SimulatorConfig {
	return SimulatorConfig{
		TankSize:    60,
		FuelPerLap:  2.5,
		LapTime:     90,
		TicksPerLap: 90,
		SessionTime: 45 * 60,
		Interval:    20 * time.Millisecond,
	}
}

// Simulator generates a time limited session: fuel burns at a steady rate,
// laps complete every TicksPerLap samples and the car pits for a full tank
// when the next lap would not make it.
type Simulator struct {
	cfg SimulatorConfig

	fuel         float64
	tick         int
	lapCompleted int
	lastLapTime  float64
	timeRemain   float64
	pitNext      bool
}

func NewSimulator(cfg SimulatorConfig) *Simulator {
	if cfg.TicksPerLap <= 0 {
		cfg.TicksPerLap = 1
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultSimulatorConfig().Interval
	}
	return &Simulator{
		cfg:        cfg,
		fuel:       cfg.TankSize,
		timeRemain: cfg.SessionTime,
	}
}

// Next advances the simulation by one tick.
func (s *Simulator) Next() RawSample {
	if s.tick > 0 {
		if s.pitNext {
			s.fuel = s.cfg.TankSize
			s.pitNext = false
		}
		s.fuel -= s.cfg.FuelPerLap / float64(s.cfg.TicksPerLap)
		if s.fuel < 0 {
			s.fuel = 0
		}
		s.timeRemain -= s.cfg.LapTime / float64(s.cfg.TicksPerLap)
		if s.timeRemain < 0 {
			s.timeRemain = 0
		}
		if s.tick%s.cfg.TicksPerLap == 0 {
			s.lapCompleted++
			// slower laps every third lap so averages move
			s.lastLapTime = s.cfg.LapTime + float64(s.lapCompleted%3)
			s.pitNext = s.fuel < s.cfg.FuelPerLap
		}
	}
	s.tick++

	lap := s.lapCompleted + 1
	timeRemain := s.timeRemain
	lapsRemain := 32767
	fuelMax := s.cfg.TankSize
	airTemp := 21.5
	trackTemp := 30.0
	return RawSample{
		FuelLevel:           s.fuel,
		Lap:                 &lap,
		LapCompleted:        s.lapCompleted,
		LastLapTime:         s.lastLapTime,
		SessionTimeRemain:   &timeRemain,
		SessionLapsRemainEx: &lapsRemain,
		FuelMax:             &fuelMax,
		AirTemp:             &airTemp,
		TrackTemp:           &trackTemp,
	}
}

// Run sends a sample every Interval until ctx is done.
func (s *Simulator) Run(ctx context.Context, samples chan<- RawSample) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
		select {
		case samples <- s.Next():
		case <-ctx.Done():
			return
		}
	}
}

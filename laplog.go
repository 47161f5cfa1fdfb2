package ifuel

// LapLog is the append-only, insertion-ordered record of accepted laps.
// Entries are never reordered or modified once appended.
type LapLog struct {
	laps []LapSample
}

func (l *LapLog) Append(lap LapSample) {
	l.laps = append(l.laps, lap)
}

func (l *LapLog) Len() int {
	return len(l.laps)
}

// Last returns the most recent lap, ok is false on an empty log.
func (l *LapLog) Last() (lap LapSample, ok bool) {
	if len(l.laps) == 0 {
		return LapSample{}, false
	}
	return l.laps[len(l.laps)-1], true
}

// Tail copies the last min(n, Len()) laps in insertion order, n <= 0 copies all.
func (l *LapLog) Tail(n int) []LapSample {
	window := l.window(n)
	out := make([]LapSample, len(window))
	copy(out, window)
	return out
}

// MeanFuel averages fuelUsed over the last n laps, n <= 0 means all of them.
func (l *LapLog) MeanFuel(n int) (float64, bool) {
	window := l.window(n)
	if len(window) == 0 {
		return 0, false
	}
	total := 0.0
	for _, lap := range window {
		total += lap.FuelUsed
	}
	return total / float64(len(window)), true
}

// MeanLapTime averages lapTime over the whole log.
func (l *LapLog) MeanLapTime() (float64, bool) {
	if len(l.laps) == 0 {
		return 0, false
	}
	total := 0.0
	for _, lap := range l.laps {
		total += lap.LapTime
	}
	return total / float64(len(l.laps)), true
}

func (l *LapLog) window(n int) []LapSample {
	if n <= 0 || n >= len(l.laps) {
		return l.laps
	}
	return l.laps[len(l.laps)-n:]
}

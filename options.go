package ifuel

import (
	"io"
	"io/ioutil"
	"os"
	"sync/atomic"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const defaultPublishInterval = 50 * time.Millisecond

// Options tune lap validation, the safety margin and delivery cadence.
type Options struct {
	MinLapTimeSeconds float64
	MinFuelUsedPerLap float64
	// SafetyExtraLaps is added to every refuel and strategy projection, in laps.
	SafetyExtraLaps float64
	// AvgWindow picks the rolling average surfaced as the selected one: 2, 5 or 10.
	AvgWindow       int
	PublishInterval Duration
}

type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q", string(text))
	}
	d.Duration = v
	return nil
}

func DefaultOptions() Options {
	return Options{
		MinLapTimeSeconds: 1,
		MinFuelUsedPerLap: 0.0,
		SafetyExtraLaps:   1,
		AvgWindow:         5,
		PublishInterval:   Duration{defaultPublishInterval},
	}
}

// LoadOptions reads TOML options on top of the defaults.
func LoadOptions(r io.Reader) (Options, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return Options{}, errors.Wrap(err, "unable to read options")
	}
	opts := DefaultOptions()
	if _, err := toml.Decode(string(data), &opts); err != nil {
		return Options{}, errors.Wrap(err, "unable to decode options")
	}
	switch opts.AvgWindow {
	case 2, 5, 10:
	default:
		return Options{}, errors.Errorf("AvgWindow must be 2, 5 or 10, got %d", opts.AvgWindow)
	}
	if opts.PublishInterval.Duration <= 0 {
		opts.PublishInterval.Duration = defaultPublishInterval
	}
	return opts, nil
}

func LoadOptionsFile(fileName string) (Options, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return Options{}, errors.Wrapf(err, "unable to open file %s", fileName)
	}
	defer file.Close()
	return LoadOptions(file)
}

// OptionsStore hands the latest options to the engine. Store may be called
// from any goroutine, the new value applies to the next sample.
type OptionsStore struct {
	v atomic.Pointer[Options]
}

func NewOptionsStore(opts Options) *OptionsStore {
	s := &OptionsStore{}
	s.Store(opts)
	return s
}

func (s *OptionsStore) Load() Options {
	return *s.v.Load()
}

func (s *OptionsStore) Store(opts Options) {
	s.v.Store(&opts)
}

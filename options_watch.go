package ifuel

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// WatchOptionsFile reloads fileName into store whenever it is written. A
// file that fails to load leaves the previous options in place.
func WatchOptionsFile(ctx context.Context, fileName string, store *OptionsStore) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "unable to create options watcher")
	}
	defer watcher.Close()

	// editors often replace the file, so watch the directory
	fileName = filepath.Clean(fileName)
	if err := watcher.Add(filepath.Dir(fileName)); err != nil {
		return errors.Wrapf(err, "unable to watch %s", fileName)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != fileName || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			opts, err := LoadOptionsFile(fileName)
			if err != nil {
				log.WithField("err", err).Warn("keeping previous options")
				continue
			}
			store.Store(opts)
			log.WithFields(log.Fields{
				"minLapTime":  opts.MinLapTimeSeconds,
				"minFuelUsed": opts.MinFuelUsedPerLap,
				"safetyLaps":  opts.SafetyExtraLaps,
				"avgWindow":   opts.AvgWindow,
			}).Info("options reloaded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithField("err", err).Warn("options watcher error")
		}
	}
}

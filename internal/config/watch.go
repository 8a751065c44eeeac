package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"orbiter/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it is written and delivers the
// validated result on Updates. Invalid files are logged and skipped so the
// previous configuration stays in effect.
type Watcher struct {
	path      string
	fsWatcher *fsnotify.Watcher
	updates   chan *Config
	stopChan  chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// Watch starts watching path. The parent directory is watched rather than
// the file so editors that replace the file on save are still seen.
func Watch(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		path:      filepath.Clean(path),
		fsWatcher: fsWatcher,
		updates:   make(chan *Config, 1),
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
	}
	go w.loop()

	log.LogWithFields(log.F("path", path)).Info("Watching config file")
	return w, nil
}

// Updates delivers each successfully reloaded configuration.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Close stops the watcher and closes Updates.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.stopChan)
		err = w.fsWatcher.Close()
		<-w.done
		close(w.updates)
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}

			cfg, err := LoadConfigFile(w.path)
			if err != nil {
				log.LogWithError(err).Warn("Ignoring invalid config reload")
				continue
			}

			// Keep only the newest config if the consumer is behind
			select {
			case <-w.updates:
			default:
			}
			select {
			case w.updates <- cfg:
			case <-w.stopChan:
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-w.stopChan:
			return
		}
	}
}

// SPDX-License-Identifier: MIT
// Package: appledore/scenario
//
// watch.go - reload a scenario file whenever it changes on disk.

package scenario

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces the burst of events editors emit on save.
const reloadDebounce = 100 * time.Millisecond

// Watcher monitors a scenario file and hands every successfully reloaded
// Scenario to its callback. Reload failures are logged and skipped.
type Watcher struct {
	path     string
	callback func(*Scenario)
	logger   *slog.Logger
	stop     chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

// NewWatcher creates a watcher for path. A nil logger discards log output.
func NewWatcher(path string, callback func(*Scenario), logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Watcher{
		path:     path,
		callback: callback,
		logger:   logger.With("path", path),
		stop:     make(chan struct{}),
	}
}

// Start begins watching. It returns once the watch is registered; events are
// processed on a background goroutine until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	// The directory is watched so atomic saves (rename over the file) are seen.
	if err = fsw.Add(filepath.Dir(w.path)); err != nil {
		_ = fsw.Close()
		return err
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer fsw.Close()

		w.logger.Info("watching scenario")

		// Reloads run on this goroutine, so Stop never returns mid-callback.
		var (
			timer *time.Timer
			fire  <-chan time.Time
		)
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		for {
			select {
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(w.path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(reloadDebounce)
				} else {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(reloadDebounce)
				}
				fire = timer.C

			case <-fire:
				fire = nil
				w.reload()

			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				w.logger.Warn("watcher error", "error", err)

			case <-w.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the watcher and waits for its goroutine. Safe to call twice.
func (w *Watcher) Stop() {
	w.once.Do(func() { close(w.stop) })
	w.wg.Wait()
}

func (w *Watcher) reload() {
	s, err := Load(w.path)
	if err != nil {
		w.logger.Error("reload failed", "error", err)
		return
	}
	w.logger.Debug("scenario reloaded", "name", s.Name)
	if w.callback != nil {
		w.callback(s)
	}
}

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a single config file.
type Watcher struct {
	path      string
	fs        *fsnotify.Watcher
	debouncer *Debouncer
}

// NewWatcher starts watching path. The containing directory is watched
// rather than the file so that editors which replace the file by rename
// are still seen.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config.NewWatcher: %w", err)
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config.NewWatcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("config.NewWatcher: watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{path: abs, fs: fs, debouncer: NewDebouncer(debounce)}, nil
}

// Run calls onChange, debounced, whenever the file is written, created or
// renamed into place, and onError for watcher failures. It blocks until ctx
// is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context, onChange func(), onError func(error)) {
	defer w.debouncer.Cancel()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				w.debouncer.Trigger(onChange)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.debouncer.Cancel()
	return w.fs.Close()
}

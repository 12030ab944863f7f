// Package watcher reruns generation when the source tree changes.
package watcher

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a directory tree and invokes a rebuild callback after a
// quiet period following a burst of filesystem events.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	onChange func()
	skipDir  func(name string) bool
}

// New creates a watcher. onChange runs on the watcher goroutine after each
// debounced burst. skipDir filters directory names that must stay out of the
// watch set (hidden directories); nil watches everything.
func New(debounce time.Duration, onChange func(), skipDir func(string) bool) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if skipDir == nil {
		skipDir = func(string) bool { return false }
	}
	return &Watcher{
		fsw:      fsw,
		debounce: debounce,
		onChange: onChange,
		skipDir:  skipDir,
	}, nil
}

// Run watches root and its subdirectories until ctx is cancelled.
// Directories created while watching join the watch set.
func (w *Watcher) Run(ctx context.Context, root string) error {
	defer w.fsw.Close()

	if err := w.addWatches(root); err != nil {
		return err
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			slog.Debug("fs event", "op", event.Op.String(), "path", event.Name)

			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if !w.skipDir(filepath.Base(event.Name)) {
						if err := w.addWatches(event.Name); err != nil {
							slog.Warn("failed to watch new directory", "path", event.Name, "err", err)
						}
					}
				}
			}

			if pending && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
			pending = true

		case <-timer.C:
			pending = false
			w.onChange()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "err", err)
		}
	}
}

// addWatches registers root and every non-skipped subdirectory beneath it.
func (w *Watcher) addWatches(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && w.skipDir(d.Name()) {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

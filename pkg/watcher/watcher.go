// Package watcher re-triggers analysis when the route facts or journey
// registry files change on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/perqvist/nav-analyzer/pkg/logging"
)

// ChangeEvent is a debounced batch of file changes
type ChangeEvent struct {
	Paths     []string
	Timestamp time.Time
}

// FileWatcher watches a fixed set of input files for modification. Editors
// typically replace files rather than write them in place, so the watch is
// on the parent directories with a filename filter.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool // absolute paths being watched
	events  chan ChangeEvent
}

// NewFileWatcher creates a watcher for the given files. Empty paths are
// skipped so callers can pass an unset registry path directly.
func NewFileWatcher(paths ...string) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher: w,
		files:   make(map[string]bool),
		events:  make(chan ChangeEvent, 16),
	}

	dirs := make(map[string]bool)
	for _, path := range paths {
		if path == "" {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		fw.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	return fw, nil
}

// Start begins watching; events are delivered until ctx is done
func (fw *FileWatcher) Start(ctx context.Context) {
	logging.Info("watching input files", "count", len(fw.files))
	go fw.processEvents(ctx)
}

// Events returns the channel of debounced change events
func (fw *FileWatcher) Events() <-chan ChangeEvent {
	return fw.events
}

// processEvents batches raw fsnotify events so one save does not trigger
// several re-analysis runs.
func (fw *FileWatcher) processEvents(ctx context.Context) {
	var pending []string

	flushTimer := time.NewTimer(0)
	if !flushTimer.Stop() {
		<-flushTimer.C
	}

	for {
		select {
		case <-ctx.Done():
			fw.watcher.Close()
			close(fw.events)
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			abs, err := filepath.Abs(event.Name)
			if err != nil || !fw.files[abs] {
				continue
			}

			pending = append(pending, abs)
			flushTimer.Reset(100 * time.Millisecond)

		case <-flushTimer.C:
			if len(pending) == 0 {
				continue
			}
			fw.events <- ChangeEvent{Paths: pending, Timestamp: time.Now()}
			pending = nil

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			logging.Error("watcher error", "error", err)
		}
	}
}

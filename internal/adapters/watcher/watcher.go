// Package watcher reports changes to a graph file so it can be reloaded.
package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/framegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 16

// Watcher watches the directory holding a file and reports events for that file only.
// Editors often replace files by rename, so watching the file itself would lose it.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	target    string
	events    chan ports.WatchEvent
	stopOnce  sync.Once
}

// NewWatcher creates a file watcher that reports watcher errors to logger.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}
	return &Watcher{
		fsWatcher: fw,
		logger:    logger,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching the directory of path.
func (w *Watcher) Start(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve watched path"), "path", path)
	}
	w.target = filepath.Clean(abs)

	if err := w.fsWatcher.Add(filepath.Dir(w.target)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", filepath.Dir(w.target))
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		err = w.fsWatcher.Close()
	})
	return err
}

// Events returns an iterator of events for the watched file. It ends when the
// watcher stops or the context given to Start is done.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.target {
				continue
			}
			watchEvent, ok := convertEvent(event)
			if !ok {
				continue
			}
			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Warn("file watcher error", "error", err)
			}
		}
	}
}

func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	out := ports.WatchEvent{Path: event.Name}
	switch {
	case event.Has(fsnotify.Write):
		out.Operation = ports.OpWrite
	case event.Has(fsnotify.Create):
		out.Operation = ports.OpCreate
	case event.Has(fsnotify.Remove):
		out.Operation = ports.OpRemove
	case event.Has(fsnotify.Rename):
		out.Operation = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}
	return out, true
}

// Package watch regenerates output when a source table file changes.
//
// Watch mode keeps a generated type in sync with its assignment table while
// the table is being edited: the watcher runs the regenerate callback once
// up front, then again after every write to the watched file. Editor saves
// often arrive as several filesystem events, so writes are debounced.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the settle time between a write event and the
// regenerate callback.
const DefaultDebounce = 200 * time.Millisecond

// Watcher re-runs a callback whenever one file changes.
type Watcher struct {
	path     string
	debounce time.Duration
	fsw      *fsnotify.Watcher

	// OnError, when set, receives non-fatal callback and watch errors.
	// Watching continues; a half-saved table should not end watch mode.
	OnError func(error)
}

// New creates a watcher for path. The parent directory is watched rather
// than the file itself, which survives editors that replace the file on
// save.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		fsw:      fsw,
	}, nil
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run invokes fn once immediately, then after every debounced write to the
// watched file, until ctx is cancelled. Errors from fn are reported through
// OnError and do not stop the watch.
func (w *Watcher) Run(ctx context.Context, fn func() error) error {
	w.invoke(fn)

	base := filepath.Base(w.path)
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-fire:
			w.invoke(fn)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.report(err)
		}
	}
}

func (w *Watcher) invoke(fn func() error) {
	if err := fn(); err != nil {
		w.report(err)
	}
}

func (w *Watcher) report(err error) {
	if w.OnError != nil {
		w.OnError(err)
	}
}

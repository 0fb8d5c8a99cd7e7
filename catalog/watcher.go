package catalog

import (
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/c360/forgekit/errors"
)

// DefaultDebounce is the quiet period the watcher waits after the last
// write before reporting a change. Editors and atomic-save tools produce
// bursts of events per save; the debounce collapses each burst into one
// notification.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors a catalog file and signals after it changes. It watches
// the containing directory, so replace-by-rename saves are seen too.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	debounce  time.Duration
	onChange  chan struct{}
	done      chan struct{}
	stopped   atomic.Bool
}

// NewWatcher creates a watcher for the catalog file at path. A
// non-positive debounce falls back to DefaultDebounce.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	if path == "" {
		return nil, errors.WrapInvalid(
			fmt.Errorf("catalog path must not be empty"),
			"Watcher", "NewWatcher", "validate path")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "Watcher", "NewWatcher", "create filesystem watcher")
	}

	return &Watcher{
		fsWatcher: fsw,
		path:      path,
		debounce:  debounce,
		onChange:  make(chan struct{}, 1),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching and returns the channel that receives a signal
// after each debounced change. The channel has capacity one; a signal that
// arrives while a previous one is still unread is dropped, so a slow
// consumer sees at most one pending notification.
func (w *Watcher) Start() (<-chan struct{}, error) {
	dir := filepath.Dir(w.path)
	if err := w.fsWatcher.Add(dir); err != nil {
		return nil, errors.Wrap(err, "Watcher", "Start",
			fmt.Sprintf("watch directory %q", dir))
	}

	go w.loop()

	return w.onChange, nil
}

// Stop terminates the watcher and releases its resources. Stop is
// idempotent.
func (w *Watcher) Stop() error {
	if !w.stopped.CompareAndSwap(false, true) {
		return nil
	}
	close(w.done)
	return w.fsWatcher.Close()
}

// loop processes filesystem events with debouncing.
func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		pending bool
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if !w.isRelevantEvent(event) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					// Drain the timer channel if it already fired
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			pending = true

		case <-func() <-chan time.Time {
			if timer != nil {
				return timer.C
			}
			return nil
		}():
			if pending {
				select {
				case w.onChange <- struct{}{}:
				default:
				}
				pending = false
			}

		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Keep watching; callers that need error visibility can wrap
			// the watcher.

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// isRelevantEvent reports whether the event concerns the watched catalog
// file.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Base(event.Name) == filepath.Base(w.path)
}

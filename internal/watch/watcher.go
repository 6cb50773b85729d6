// Package watch reports changes to a single file, coalescing bursts of
// filesystem events into one notification.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period before a change is reported.
const DefaultDebounce = 100 * time.Millisecond

// Event reports that the watched file changed.
type Event struct {
	Path    string
	Removed bool
	Time    time.Time
}

// Watcher monitors one file. It watches the parent directory so that
// editors which replace the file on save are still seen.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *log.Logger
}

// NewWatcher creates a watcher for path.
func NewWatcher(path string, debounce time.Duration, logger *log.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = log.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	dir := filepath.Dir(abs)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch directory %s: %w", dir, err)
	}

	return &Watcher{
		path:     abs,
		watcher:  fsw,
		debounce: debounce,
		logger:   logger,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Watch starts watching and returns a channel of change events.
// Cancelling the context stops watching. The returned channel is closed
// when the context is cancelled or the underlying watcher is closed.
func (w *Watcher) Watch(ctx context.Context) <-chan Event {
	out := make(chan Event, 1)

	go func() {
		defer close(out)

		var (
			pending bool
			removed bool
		)

		// Initialize a stopped timer
		timer := time.NewTimer(0)
		if !timer.Stop() {
			<-timer.C
		}
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if !w.relevant(ev) {
					continue
				}
				pending = true
				removed = ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
				timer.Reset(w.debounce)

			case <-timer.C:
				if !pending {
					continue
				}
				pending = false
				w.logger.Debug("file changed", "file", w.path, "removed", removed)
				select {
				case out <- Event{Path: w.path, Removed: removed, Time: time.Now()}:
				case <-ctx.Done():
					return
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				// Keep watching
				w.logger.Warn("watch error", "file", w.path, "err", err)
			}
		}
	}()

	return out
}

// Close stops watching and cleans up resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// relevant filters directory events down to the watched file, ignoring
// editor swap and backup files.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	name := filepath.Base(ev.Name)
	if strings.HasSuffix(name, "~") || strings.HasSuffix(name, ".swp") || strings.Contains(name, ".tmp-") {
		return false
	}
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
		ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}

// Package watcher regenerates activity data when notes change.
package watcher

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"vibegraph/internal/domain"
)

// DefaultDelay is how long the folder must be quiet before a rebuild
const DefaultDelay = 300 * time.Millisecond

// Watcher watches a notes folder and its subfolders
type Watcher struct {
	root      string
	fsWatcher *fsnotify.Watcher
	logger    *slog.Logger
	delay     time.Duration

	changes chan struct{}
	mu      sync.Mutex
	timer   *time.Timer
}

// New creates a watcher for every non-hidden directory under root
func New(root string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		root:      root,
		fsWatcher: fsWatcher,
		logger:    logger,
		delay:     DefaultDelay,
		changes:   make(chan struct{}, 1),
	}

	if err := w.addTree(root); err != nil {
		_ = fsWatcher.Close()
		return nil, err
	}
	return w, nil
}

// WithDelay sets the debounce delay
func (w *Watcher) WithDelay(d time.Duration) *Watcher {
	w.delay = d
	return w
}

// Run blocks until ctx is done, calling onChange once per burst of note
// changes. Errors from onChange are logged and watching continues.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	defer w.stop()

	w.logger.Info("watching notes", "root", w.root)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "error", err)
		case <-w.changes:
			if err := onChange(ctx); err != nil {
				w.logger.Error("rebuild failed", "error", err)
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if hidden(event.Name) {
		return
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				w.logger.Warn("failed to watch folder", "path", event.Name, "error", err)
			}
			// notes may have been moved in with the folder
			w.schedule()
			return
		}
	}

	if !IsNoteEvent(event) {
		return
	}

	w.logger.Debug("note changed", "path", event.Name, "op", event.Op.String())
	w.schedule()
}

// IsNoteEvent reports whether an event can change the parsed records
func IsNoteEvent(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), domain.NoteExt) {
		return false
	}
	// Rename fires on the old name; atomic saves also Create the new one
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0
}

// schedule restarts the debounce timer
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, func() {
		select {
		case w.changes <- struct{}{}:
		default: // a rebuild is already pending
		}
	})
}

func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && hidden(path) {
			return filepath.SkipDir
		}
		return w.fsWatcher.Add(path)
	})
}

func (w *Watcher) stop() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	_ = w.fsWatcher.Close()
}

func hidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

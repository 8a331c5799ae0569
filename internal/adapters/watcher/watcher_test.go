package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNoteEvent(t *testing.T) {
	tests := []struct {
		name     string
		event    fsnotify.Event
		expected bool
	}{
		{"write", fsnotify.Event{Name: "/n/a.md", Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: "/n/a.md", Op: fsnotify.Create}, true},
		{"rename", fsnotify.Event{Name: "/n/a.md", Op: fsnotify.Rename}, true},
		{"remove", fsnotify.Event{Name: "/n/a.md", Op: fsnotify.Remove}, true},
		{"upper case extension", fsnotify.Event{Name: "/n/A.MD", Op: fsnotify.Write}, true},
		{"chmod only", fsnotify.Event{Name: "/n/a.md", Op: fsnotify.Chmod}, false},
		{"not a note", fsnotify.Event{Name: "/n/a.png", Op: fsnotify.Write}, false},
		{"swap file", fsnotify.Event{Name: "/n/.a.md.swp", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNoteEvent(tt.event))
		})
	}
}

func TestHidden(t *testing.T) {
	assert.True(t, hidden("/notes/.obsidian"))
	assert.True(t, hidden("/notes/.trash/old.md"))
	assert.False(t, hidden("/notes/Tracker.md"))
}

func runWatcher(t *testing.T, root string) <-chan struct{} {
	t.Helper()

	w, err := New(root, nil)
	require.NoError(t, err)
	w.WithDelay(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	fired := make(chan struct{}, 16)

	go func() {
		defer close(done)
		_ = w.Run(ctx, func(context.Context) error {
			fired <- struct{}{}
			return nil
		})
	}()

	t.Cleanup(func() {
		cancel()
		<-done
	})
	return fired
}

func waitFired(t *testing.T, fired <-chan struct{}) {
	t.Helper()
	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("expected a rebuild")
	}
}

func TestRun_NoteWriteTriggersRebuild(t *testing.T) {
	root := t.TempDir()
	fired := runWatcher(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(root, "Tracker.md"), []byte("## 2026-01-22\nwork"), 0644))
	waitFired(t, fired)
}

func TestRun_BurstIsDebounced(t *testing.T) {
	root := t.TempDir()
	fired := runWatcher(t, root)

	path := filepath.Join(root, "Tracker.md")
	for i := range 5 {
		require.NoError(t, os.WriteFile(path, []byte{byte('a' + i)}, 0644))
	}
	waitFired(t, fired)

	// Give a second timer the chance to fire if debouncing were broken
	time.Sleep(200 * time.Millisecond)
	assert.LessOrEqual(t, len(fired), 1)
}

func TestRun_WatchesNewSubfolders(t *testing.T) {
	root := t.TempDir()
	fired := runWatcher(t, root)

	sub := filepath.Join(root, "2026")
	require.NoError(t, os.Mkdir(sub, 0755))
	waitFired(t, fired)

	// wait for the folder to be added before writing inside it
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(sub, "Nested.md"), []byte("text"), 0644))
	waitFired(t, fired)
}

func TestNew_MissingRoot(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)
}

package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibegraph/internal/domain"
)

func openTestCache(t *testing.T, root string) *Cache {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	c := NewCache("")
	require.NoError(t, c.Open(root))
	t.Cleanup(func() { c.Close() })
	return c
}

func cachedNote(path string, mtime time.Time) *domain.CachedNote {
	cost := "$12"
	return &domain.CachedNote{
		Path:  path,
		Mtime: mtime.UnixNano(),
		Size:  128,
		Records: []domain.ActivityRecord{{
			ID:        "tracker",
			Date:      "2026-01-22",
			Title:     "Tracker",
			Tools:     []string{"Claude"},
			Stack:     []string{},
			Learnings: []string{"should cache"},
			Cost:      &cost,
			Status:    domain.StatusCompleted,
			Intensity: 2,
			FilePath:  path,
		}},
	}
}

func TestCache_PutGet(t *testing.T) {
	c := openTestCache(t, "/notes")
	mtime := time.Date(2026, 1, 22, 10, 0, 0, 42, time.UTC)
	note := cachedNote("/notes/Tracker.md", mtime)

	tx, err := c.BeginTx()
	require.NoError(t, err)
	require.NoError(t, tx.Put(note))
	require.NoError(t, tx.Commit())

	got, err := c.Get(note.Path)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, note, got)
	assert.True(t, got.Fresh(domain.NoteFile{Path: note.Path, ModTime: mtime, Size: 128}))
}

func TestCache_GetMissing(t *testing.T) {
	c := openTestCache(t, "/notes")

	got, err := c.Get("/notes/none.md")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_RollbackDiscards(t *testing.T) {
	c := openTestCache(t, "/notes")

	tx, err := c.BeginTx()
	require.NoError(t, err)
	require.NoError(t, tx.Put(cachedNote("/notes/a.md", time.Now())))
	require.NoError(t, tx.Rollback())

	paths, err := c.Paths()
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestCache_DeleteAndClear(t *testing.T) {
	c := openTestCache(t, "/notes")

	tx, err := c.BeginTx()
	require.NoError(t, err)
	for _, p := range []string{"/notes/b.md", "/notes/a.md", "/notes/c.md"} {
		require.NoError(t, tx.Put(cachedNote(p, time.Now())))
	}
	require.NoError(t, tx.Commit())

	paths, err := c.Paths()
	require.NoError(t, err)
	assert.Equal(t, []string{"/notes/a.md", "/notes/b.md", "/notes/c.md"}, paths)

	tx, err = c.BeginTx()
	require.NoError(t, err)
	require.NoError(t, tx.Delete("/notes/b.md"))
	require.NoError(t, tx.Commit())

	paths, err = c.Paths()
	require.NoError(t, err)
	assert.Equal(t, []string{"/notes/a.md", "/notes/c.md"}, paths)

	require.NoError(t, c.Clear())
	paths, err = c.Paths()
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestCache_PersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")

	first := NewCache(dbPath)
	require.NoError(t, first.Open("/notes"))
	tx, err := first.BeginTx()
	require.NoError(t, err)
	require.NoError(t, tx.Put(cachedNote("/notes/a.md", time.Now())))
	require.NoError(t, tx.Commit())
	require.NoError(t, first.Close())

	second := NewCache(dbPath)
	require.NoError(t, second.Open("/notes"))
	defer second.Close()

	got, err := second.Get("/notes/a.md")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.False(t, second.NeedsRebuild())
}

func TestCache_ResetsForAnotherFolder(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")

	first := NewCache(dbPath)
	require.NoError(t, first.Open("/notes"))
	tx, err := first.BeginTx()
	require.NoError(t, err)
	require.NoError(t, tx.Put(cachedNote("/notes/a.md", time.Now())))
	require.NoError(t, tx.Commit())
	require.NoError(t, first.Close())

	second := NewCache(dbPath)
	require.NoError(t, second.Open("/elsewhere"))
	defer second.Close()

	paths, err := second.Paths()
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestCache_ResetsForOlderSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")

	first := NewCache(dbPath)
	require.NoError(t, first.Open("/notes"))
	tx, err := first.BeginTx()
	require.NoError(t, err)
	require.NoError(t, tx.Put(cachedNote("/notes/a.md", time.Now())))
	require.NoError(t, tx.Commit())
	require.NoError(t, first.Close())

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	_, err = db.Exec("UPDATE meta SET value = '1' WHERE key = 'schema_version'")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	second := NewCache(dbPath)
	require.NoError(t, second.Open("/notes"))
	defer second.Close()

	paths, err := second.Paths()
	require.NoError(t, err)
	assert.Empty(t, paths, "entries parsed under an older schema are dropped")
	assert.False(t, second.NeedsRebuild())
}

func TestDatabasePath(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	a := DatabasePath("/vault/Vibing")
	b := DatabasePath("/vault/Other")

	assert.Equal(t, filepath.Join(dataHome, "vibegraph"), filepath.Dir(a))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, DatabasePath("/vault/Vibing"))
	assert.Len(t, filepath.Base(a), 16+len(".db"))
}

func TestCache_OpenCreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "cache.db")

	c := NewCache(dbPath)
	require.NoError(t, c.Open("/notes"))
	defer c.Close()

	_, err := os.Stat(dbPath)
	assert.NoError(t, err)
	assert.Equal(t, dbPath, c.Path())
}

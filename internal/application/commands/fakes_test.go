package commands

import (
	"context"
	"errors"
	"maps"
	"slices"
	"time"

	"vibegraph/internal/domain"
	"vibegraph/internal/ports"
)

// fakeSource serves notes from memory
type fakeSource struct {
	files    []domain.NoteFile
	contents map[string]string
	reads    int
}

func newFakeSource() *fakeSource {
	return &fakeSource{contents: make(map[string]string)}
}

func (s *fakeSource) add(path, content string, mtime time.Time) {
	s.files = append(s.files, domain.NoteFile{Path: path, ModTime: mtime, Size: int64(len(content))})
	s.contents[path] = content
}

func (s *fakeSource) Root() string { return "/notes" }

func (s *fakeSource) List(ctx context.Context) ([]domain.NoteFile, error) {
	return slices.Clone(s.files), nil
}

func (s *fakeSource) Read(f domain.NoteFile) (domain.Note, error) {
	s.reads++
	content, ok := s.contents[f.Path]
	if !ok {
		return domain.Note{}, errors.New("file vanished")
	}
	return domain.Note{Path: f.Path, Content: content, ModTime: f.ModTime}, nil
}

// fakeCache is an in-memory RecordCache
type fakeCache struct {
	entries map[string]*domain.CachedNote
}

var _ ports.RecordCache = (*fakeCache)(nil)

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]*domain.CachedNote)}
}

func (c *fakeCache) Open(string) error { return nil }
func (c *fakeCache) Close() error      { return nil }
func (c *fakeCache) Clear() error {
	clear(c.entries)
	return nil
}

func (c *fakeCache) Get(path string) (*domain.CachedNote, error) {
	return c.entries[path], nil
}

func (c *fakeCache) Paths() ([]string, error) {
	return slices.Sorted(maps.Keys(c.entries)), nil
}

func (c *fakeCache) BeginTx() (ports.CacheTx, error) {
	return &fakeTx{cache: c, puts: map[string]*domain.CachedNote{}}, nil
}

type fakeTx struct {
	cache   *fakeCache
	puts    map[string]*domain.CachedNote
	deletes []string
}

func (t *fakeTx) Put(n *domain.CachedNote) error {
	t.puts[n.Path] = n
	return nil
}

func (t *fakeTx) Delete(path string) error {
	t.deletes = append(t.deletes, path)
	return nil
}

func (t *fakeTx) Commit() error {
	for _, p := range t.deletes {
		delete(t.cache.entries, p)
	}
	maps.Copy(t.cache.entries, t.puts)
	return nil
}

func (t *fakeTx) Rollback() error { return nil }

// fakeWriter records saved documents
type fakeWriter struct {
	saved []*domain.Document
	err   error
}

func (w *fakeWriter) Save(ctx context.Context, doc *domain.Document) error {
	if w.err != nil {
		return w.err
	}
	w.saved = append(w.saved, doc)
	return nil
}

func (w *fakeWriter) Destinations() []string {
	return []string{"data/activity-data.json", "site/data/activity-data.json"}
}

// staticDocs serves a fixed document
type staticDocs struct {
	doc *domain.Document
	err error
}

func (s staticDocs) Load(ctx context.Context) (*domain.Document, error) {
	return s.doc, s.err
}

func day(date string) time.Time {
	t, err := time.ParseInLocation(domain.DateLayout, date, time.Local)
	if err != nil {
		panic(err)
	}
	return t.Add(12 * time.Hour)
}

func testRecord(id, date string, tools, stack []string) domain.ActivityRecord {
	return domain.ActivityRecord{
		ID:        id,
		Date:      date,
		Title:     id,
		Tools:     tools,
		Stack:     stack,
		Learnings: []string{},
		Status:    domain.StatusCompleted,
		Intensity: 1,
	}
}

package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"vibegraph/internal/application"
)

func setupTestNotes(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	files := map[string]string{
		"Activity Tracker.md":      "---\nVibeTools: [Cursor]\n---\nbody",
		"b-project.MD":             "## 2026-01-22\nwork",
		"nested/Deep Note.md":      "deep",
		"nested/image.png":         "not a note",
		".obsidian/workspace.md":   "hidden dir",
		".draft.md":                "hidden file",
		"nested/.trash/Deleted.md": "hidden nested dir",
		"readme.txt":               "not a note",
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return root
}

func TestSourceList(t *testing.T) {
	root := setupTestNotes(t)

	files, err := NewSource(root).List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	var got []string
	for _, f := range files {
		rel, _ := filepath.Rel(root, f.Path)
		got = append(got, filepath.ToSlash(rel))
	}

	expected := []string{"Activity Tracker.md", "b-project.MD", "nested/Deep Note.md"}
	if !slices.Equal(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestSourceList_CarriesModTimeAndSize(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "note.md")
	if err := os.WriteFile(path, []byte("12345"), 0644); err != nil {
		t.Fatal(err)
	}
	mtime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}

	src := NewSource(root)
	files, err := src.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if !files[0].ModTime.Equal(mtime) {
		t.Errorf("expected mtime %v, got %v", mtime, files[0].ModTime)
	}
	if files[0].Size != 5 {
		t.Errorf("expected size 5, got %d", files[0].Size)
	}

	note, err := src.Read(files[0])
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if note.Content != "12345" || note.Path != path || note.Title() != "note" {
		t.Errorf("unexpected note %+v", note)
	}
}

func TestSourceList_EmptyFolder(t *testing.T) {
	files, err := NewSource(t.TempDir()).List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %d", len(files))
	}
}

func TestSourceList_MissingRoot(t *testing.T) {
	_, err := NewSource(filepath.Join(t.TempDir(), "missing")).List(context.Background())
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestSourceRead_MissingFile(t *testing.T) {
	root := setupTestNotes(t)
	src := NewSource(root)

	files, err := src.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(files[0].Path); err != nil {
		t.Fatal(err)
	}

	if _, err := src.Read(files[0]); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestResolveRoot(t *testing.T) {
	base := t.TempDir()
	primary := filepath.Join(base, "vault", "Vibing")
	fallbackA := filepath.Join(base, "workspace", "vibing")
	fallbackB := filepath.Join(base, "workspace", "Vibing")
	notADir := filepath.Join(base, "file")
	if err := os.WriteFile(notADir, nil, 0644); err != nil {
		t.Fatal(err)
	}

	mkdir := func(dir string) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("nothing exists", func(t *testing.T) {
		_, err := ResolveRoot(primary, []string{fallbackA, notADir, fallbackB})
		if !errors.Is(err, application.ErrNotesRootNotFound) {
			t.Fatalf("expected ErrNotesRootNotFound, got %v", err)
		}
		var rootErr *application.RootError
		if !errors.As(err, &rootErr) || len(rootErr.Tried) != 4 {
			t.Errorf("expected all four paths in error, got %v", err)
		}
	})

	t.Run("second fallback", func(t *testing.T) {
		mkdir(fallbackB)
		got, err := ResolveRoot(primary, []string{fallbackA, fallbackB})
		if err != nil || got != fallbackB {
			t.Errorf("expected %s, got %s (%v)", fallbackB, got, err)
		}
	})

	t.Run("first fallback wins", func(t *testing.T) {
		mkdir(fallbackA)
		got, err := ResolveRoot(primary, []string{fallbackA, fallbackB})
		if err != nil || got != fallbackA {
			t.Errorf("expected %s, got %s (%v)", fallbackA, got, err)
		}
	})

	t.Run("primary wins", func(t *testing.T) {
		mkdir(primary)
		got, err := ResolveRoot(primary, []string{fallbackA, fallbackB})
		if err != nil || got != primary {
			t.Errorf("expected %s, got %s (%v)", primary, got, err)
		}
	})

	t.Run("fallback disabled", func(t *testing.T) {
		_, err := ResolveRoot(filepath.Join(base, "absent"), nil)
		if !errors.Is(err, application.ErrNotesRootNotFound) {
			t.Errorf("expected ErrNotesRootNotFound, got %v", err)
		}
	})
}

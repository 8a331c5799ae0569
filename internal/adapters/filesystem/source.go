package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"vibegraph/internal/application"
	"vibegraph/internal/domain"
	"vibegraph/internal/ports"
)

// Source implements ports.NoteSource over a directory of markdown notes
type Source struct {
	root string
}

// Ensure Source implements NoteSource
var _ ports.NoteSource = (*Source)(nil)

// NewSource creates a note source rooted at an existing directory
func NewSource(root string) *Source {
	return &Source{root: root}
}

// ResolveRoot returns the first of primary and then fallbacks that is an
// existing directory. When none is, the error lists every path tried and
// matches application.ErrNotesRootNotFound.
func ResolveRoot(primary string, fallbacks []string) (string, error) {
	candidates := append([]string{primary}, fallbacks...)
	for _, dir := range candidates {
		if dir == "" {
			continue
		}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return "", &application.RootError{Tried: candidates}
}

// Root returns the notes directory
func (s *Source) Root() string {
	return s.root
}

// List walks the notes directory in lexical order and returns every .md file.
// Hidden files and directories are skipped, as are entries that cannot be read.
func (s *Source) List(ctx context.Context) ([]domain.NoteFile, error) {
	var files []domain.NoteFile

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == s.root {
				return err
			}
			return nil // Skip unreadable entries
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if path != s.root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isNote(d.Name()) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil // Removed between listing and stat
		}

		files = append(files, domain.NoteFile{
			Path:    path,
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk notes folder: %w", err)
	}

	return files, nil
}

// Read loads a note's content
func (s *Source) Read(f domain.NoteFile) (domain.Note, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return domain.Note{}, err
	}
	return domain.Note{
		Path:    f.Path,
		Content: string(data),
		ModTime: f.ModTime,
	}, nil
}

func isNote(name string) bool {
	return strings.EqualFold(filepath.Ext(name), domain.NoteExt)
}

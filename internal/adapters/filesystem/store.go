package filesystem

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vibegraph/internal/application"
	"vibegraph/internal/domain"
	"vibegraph/internal/ports"
)

// Store reads and writes the activity document as indented JSON files
type Store struct {
	paths []string
}

// Ensure Store implements both document ports
var (
	_ ports.DocumentReader = (*Store)(nil)
	_ ports.DocumentWriter = (*Store)(nil)
)

// NewStore creates a store writing to every path; Load reads the first one present
func NewStore(paths []string) *Store {
	return &Store{paths: paths}
}

// Destinations returns the output paths
func (s *Store) Destinations() []string {
	return s.paths
}

// Save writes the document to every path, creating parent directories.
// Each file is replaced atomically.
func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	data, err := encode(doc)
	if err != nil {
		return fmt.Errorf("failed to encode activity data: %w", err)
	}

	for _, path := range s.paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeAtomic(path, data); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

// Load reads the first output file that exists
func (s *Store) Load(ctx context.Context) (*domain.Document, error) {
	for _, path := range s.paths {
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		var doc domain.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		if doc.DailyContributions == nil {
			doc.DailyContributions = map[string]domain.DailySummary{}
		}
		if doc.Projects == nil {
			doc.Projects = []domain.ActivityRecord{}
		}
		return &doc, nil
	}
	return nil, fmt.Errorf("%w at %s", application.ErrNoActivityData, strings.Join(s.paths, ", "))
}

// encode renders the document with two-space indentation and without
// escaping <, > and &
func encode(doc *domain.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

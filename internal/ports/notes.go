package ports

import (
	"context"

	"vibegraph/internal/domain"
)

// NoteSource provides access to the markdown notes folder
type NoteSource interface {
	// Root returns the resolved notes directory
	Root() string

	// List walks the notes directory and returns every note file in discovery order.
	// Hidden files and directories are skipped.
	List(ctx context.Context) ([]domain.NoteFile, error)

	// Read loads the content of a listed note
	Read(file domain.NoteFile) (domain.Note, error)
}

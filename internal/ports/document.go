package ports

import (
	"context"

	"vibegraph/internal/domain"
)

// DocumentReader provides an activity document to the query commands
type DocumentReader interface {
	Load(ctx context.Context) (*domain.Document, error)
}

// DocumentWriter persists a generated activity document
type DocumentWriter interface {
	// Save writes the document to every configured destination
	Save(ctx context.Context, doc *domain.Document) error

	// Destinations returns where Save writes
	Destinations() []string
}

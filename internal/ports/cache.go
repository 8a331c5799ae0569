package ports

import "vibegraph/internal/domain"

// RecordCache remembers parsed records per note so unchanged notes are not
// parsed again. It is disposable: deleting it only costs a full re-parse.
type RecordCache interface {
	// Lifecycle
	Open(notesRoot string) error
	Close() error

	// Get returns the cached entry for a note, or nil when there is none
	Get(path string) (*domain.CachedNote, error)

	// Paths returns every note path present in the cache
	Paths() ([]string, error)

	// Clear removes every cached entry
	Clear() error

	// Batch updates at the end of a parse run
	BeginTx() (CacheTx, error)
}

// CacheTx represents a transaction for atomic cache updates
type CacheTx interface {
	Put(note *domain.CachedNote) error
	Delete(path string) error

	// Transaction control
	Commit() error
	Rollback() error
}

package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"vibegraph/internal/domain"
	"vibegraph/internal/ports"
)

// cacheTx implements ports.CacheTx
type cacheTx struct {
	tx *sql.Tx
}

// Ensure cacheTx implements CacheTx
var _ ports.CacheTx = (*cacheTx)(nil)

// Put inserts or replaces a note's parse result
func (t *cacheTx) Put(note *domain.CachedNote) error {
	records, err := json.Marshal(note.Records)
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	_, err = t.tx.Exec(`
		INSERT OR REPLACE INTO notes (path, mtime, size, records)
		VALUES (?, ?, ?, ?)
	`, note.Path, note.Mtime, note.Size, string(records))
	return err
}

// Delete removes a note by path
func (t *cacheTx) Delete(path string) error {
	_, err := t.tx.Exec(`DELETE FROM notes WHERE path = ?`, path)
	return err
}

// Commit commits the transaction
func (t *cacheTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *cacheTx) Rollback() error {
	return t.tx.Rollback()
}

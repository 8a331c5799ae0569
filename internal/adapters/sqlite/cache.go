package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"vibegraph/internal/domain"
	"vibegraph/internal/ports"

	_ "modernc.org/sqlite"
)

// schemaVersion changes whenever the table layout or the stored record
// encoding changes; a mismatch empties the cache
const schemaVersion = "2"

// Cache implements ports.RecordCache using SQLite
type Cache struct {
	db        *sql.DB
	notesRoot string
	dbPath    string
}

// Ensure Cache implements RecordCache
var _ ports.RecordCache = (*Cache)(nil)

// NewCache creates a new SQLite cache. An empty dbPath selects a
// per-folder database under $XDG_DATA_HOME/vibegraph.
func NewCache(dbPath string) *Cache {
	return &Cache{dbPath: dbPath}
}

// Open initializes the cache for the given notes folder
func (c *Cache) Open(notesRoot string) error {
	c.notesRoot = notesRoot
	if c.dbPath == "" {
		c.dbPath = DatabasePath(notesRoot)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(c.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", c.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	c.db = db

	// Pragmas + schema in single batch
	_, err = db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS notes (
			path TEXT PRIMARY KEY,
			mtime INTEGER NOT NULL,
			size INTEGER NOT NULL,
			records TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if c.NeedsRebuild() {
		if err := c.Clear(); err != nil {
			db.Close()
			return fmt.Errorf("failed to reset cache: %w", err)
		}
	}

	if err := c.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Path returns the database file location
func (c *Cache) Path() string {
	return c.dbPath
}

// NeedsRebuild returns true if the stored entries were written by another
// schema or for another notes folder
func (c *Cache) NeedsRebuild() bool {
	var version, rootHash string

	c.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	c.db.QueryRow("SELECT value FROM meta WHERE key = 'notes_root_hash'").Scan(&rootHash)

	return version != schemaVersion || rootHash != hashPath(c.notesRoot)
}

// DatabasePath returns the default database location for a notes folder
func DatabasePath(notesRoot string) string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "vibegraph", hashPath(notesRoot)+".db")
}

// hashPath returns a short hash of a folder path
func hashPath(path string) string {
	h := sha256.Sum256([]byte(path))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

func (c *Cache) updateMeta() error {
	_, err := c.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('notes_root_hash', ?);
	`, schemaVersion, hashPath(c.notesRoot))
	return err
}

// Get retrieves the cached entry for a note, or nil when there is none
func (c *Cache) Get(path string) (*domain.CachedNote, error) {
	var (
		note    domain.CachedNote
		records string
	)

	err := c.db.QueryRow(`
		SELECT path, mtime, size, records
		FROM notes WHERE path = ?
	`, path).Scan(&note.Path, &note.Mtime, &note.Size, &records)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(records), &note.Records); err != nil {
		return nil, fmt.Errorf("failed to decode cached records for %s: %w", path, err)
	}

	return &note, nil
}

// Paths returns every cached note path
func (c *Cache) Paths() ([]string, error) {
	rows, err := c.db.Query(`SELECT path FROM notes ORDER BY path`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}

	return paths, rows.Err()
}

// Clear removes every cached note
func (c *Cache) Clear() error {
	_, err := c.db.Exec(`DELETE FROM notes`)
	return err
}

// BeginTx starts a new transaction
func (c *Cache) BeginTx() (ports.CacheTx, error) {
	tx, err := c.db.Begin()
	if err != nil {
		return nil, err
	}
	return &cacheTx{tx: tx}, nil
}

package domain

import "time"

// NoteFile is a note found while walking the notes folder
type NoteFile struct {
	Path    string // Full path to the note
	ModTime time.Time
	Size    int64
}

// CachedNote is a parse result remembered between runs
type CachedNote struct {
	Path    string // Full path to the note (primary key)
	Mtime   int64  // Unix nanoseconds of the note when it was parsed
	Size    int64
	Records []ActivityRecord
}

// Fresh reports whether the cached entry still matches the file on disk
func (c *CachedNote) Fresh(f NoteFile) bool {
	return c != nil && c.Mtime == f.ModTime.UnixNano() && c.Size == f.Size
}

// SyncStats holds statistics from a parse run
type SyncStats struct {
	NotesScanned int
	NotesParsed  int
	NotesCached  int // served from the cache without re-parsing
	NotesFailed  int
	NotesPruned  int // cache entries whose file disappeared
	Duration     time.Duration
}

// SearchResult is a record matched by a search query
type SearchResult struct {
	Record      ActivityRecord
	MatchedText string
	Score       int
}

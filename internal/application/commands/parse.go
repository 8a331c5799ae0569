package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vibegraph/internal/application"
	"vibegraph/internal/domain"
	"vibegraph/internal/ports"
)

// ParseResult is the outcome of parsing every note in the notes folder
type ParseResult struct {
	Records  []domain.ActivityRecord // in discovery order
	Failures []*application.NoteError
	Stats    domain.SyncStats
}

// ParseNotesCommand parses every note into activity records. A note that
// fails is reported in the result and skipped; the batch carries on.
type ParseNotesCommand struct {
	source ports.NoteSource
	cache  ports.RecordCache // nil disables caching
	logger *slog.Logger
}

// NewParseNotesCommand creates a new ParseNotesCommand
func NewParseNotesCommand(source ports.NoteSource, cache ports.RecordCache, logger *slog.Logger) *ParseNotesCommand {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ParseNotesCommand{
		source: source,
		cache:  cache,
		logger: logger,
	}
}

// Execute runs the parse command
func (c *ParseNotesCommand) Execute(ctx context.Context) (*ParseResult, error) {
	start := time.Now()

	files, err := c.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	result := &ParseResult{Records: []domain.ActivityRecord{}}
	seen := make(map[string]bool, len(files))
	var (
		updates []*domain.CachedNote
		stale   []string
	)

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		seen[f.Path] = true
		result.Stats.NotesScanned++

		cached := c.lookup(f)
		if cached.Fresh(f) {
			result.Records = append(result.Records, cached.Records...)
			result.Stats.NotesCached++
			continue
		}

		records, err := c.parse(f)
		if err != nil {
			result.Failures = append(result.Failures, &application.NoteError{Path: f.Path, Err: err})
			result.Stats.NotesFailed++
			if cached != nil {
				stale = append(stale, f.Path)
			}
			c.logger.Warn("skipping note", "path", f.Path, "error", err)
			continue
		}

		c.logger.Debug("parsed note", "title", records[0].Title, "dates", len(records))
		result.Records = append(result.Records, records...)
		result.Stats.NotesParsed++
		updates = append(updates, &domain.CachedNote{
			Path:    f.Path,
			Mtime:   f.ModTime.UnixNano(),
			Size:    f.Size,
			Records: records,
		})
	}

	if c.cache != nil {
		pruned, err := c.updateCache(updates, stale, seen)
		if err != nil {
			c.logger.Warn("failed to update parse cache", "error", err)
		}
		result.Stats.NotesPruned = pruned
	}

	result.Stats.Duration = time.Since(start)
	return result, nil
}

func (c *ParseNotesCommand) lookup(f domain.NoteFile) *domain.CachedNote {
	if c.cache == nil {
		return nil
	}
	cached, err := c.cache.Get(f.Path)
	if err != nil {
		c.logger.Warn("failed to read parse cache", "path", f.Path, "error", err)
		return nil
	}
	return cached
}

func (c *ParseNotesCommand) parse(f domain.NoteFile) ([]domain.ActivityRecord, error) {
	note, err := c.source.Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read note: %w", err)
	}
	return domain.ParseNote(note)
}

// updateCache stores fresh parse results and drops entries for notes that
// failed or no longer exist. It returns the number of vanished notes pruned.
func (c *ParseNotesCommand) updateCache(updates []*domain.CachedNote, stale []string, seen map[string]bool) (int, error) {
	paths, err := c.cache.Paths()
	if err != nil {
		return 0, fmt.Errorf("failed to list cached notes: %w", err)
	}

	tx, err := c.cache.BeginTx()
	if err != nil {
		return 0, fmt.Errorf("failed to begin cache transaction: %w", err)
	}

	for _, u := range updates {
		if err := tx.Put(u); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to cache %s: %w", u.Path, err)
		}
	}
	for _, p := range stale {
		if err := tx.Delete(p); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to drop %s: %w", p, err)
		}
	}

	pruned := 0
	for _, p := range paths {
		if seen[p] {
			continue
		}
		if err := tx.Delete(p); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to prune %s: %w", p, err)
		}
		pruned++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit cache: %w", err)
	}
	return pruned, nil
}

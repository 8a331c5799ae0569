// Package session wires the configured adapters together for the front ends.
package session

import (
	"log/slog"

	"vibegraph/internal/adapters/filesystem"
	"vibegraph/internal/adapters/sqlite"
	"vibegraph/internal/application/commands"
	"vibegraph/internal/config"
	"vibegraph/internal/ports"
)

// Session holds the adapters for one resolved notes folder
type Session struct {
	Root   string
	Source *filesystem.Source
	Cache  ports.RecordCache // nil when caching is disabled or unavailable
	Store  *filesystem.Store
	Logger *slog.Logger
}

// Open resolves the notes folder and opens the record cache. A cache that
// cannot be opened is logged and skipped; a missing notes folder is an error
// matching application.ErrNotesRootNotFound.
func Open(cfg *config.Config, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	root, err := filesystem.ResolveRoot(cfg.NotesRoot(), cfg.FallbackDirs())
	if err != nil {
		return nil, err
	}
	if root != cfg.NotesRoot() {
		logger.Warn("notes folder not found, using fallback", "configured", cfg.NotesRoot(), "using", root)
	}

	s := &Session{
		Root:   root,
		Source: filesystem.NewSource(root),
		Store:  filesystem.NewStore(OutputPaths(cfg)),
		Logger: logger,
	}

	if cfg.Cache.Enabled {
		cache := sqlite.NewCache(config.ExpandHome(cfg.Cache.Path))
		if err := cache.Open(root); err != nil {
			logger.Warn("record cache unavailable, parsing every note", "error", err)
		} else {
			logger.Debug("record cache opened", "path", cache.Path())
			s.Cache = cache
		}
	}

	return s, nil
}

// OutputPaths returns the configured JSON destinations with ~ expanded
func OutputPaths(cfg *config.Config) []string {
	paths := make([]string, 0, len(cfg.Output.Paths))
	for _, p := range cfg.Output.Paths {
		paths = append(paths, config.ExpandHome(p))
	}
	return paths
}

// Close releases the record cache
func (s *Session) Close() error {
	if s.Cache == nil {
		return nil
	}
	return s.Cache.Close()
}

// Builder returns a command that parses the notes into a fresh document
func (s *Session) Builder() *commands.BuildDocumentCommand {
	return commands.NewBuildDocumentCommand(s.Source, s.Cache, s.Logger)
}

// Generator returns a command that parses the notes and writes every output
func (s *Session) Generator() *commands.GenerateCommand {
	return commands.NewGenerateCommand(s.Source, s.Cache, s.Store, s.Logger)
}

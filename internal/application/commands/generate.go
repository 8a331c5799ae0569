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

// BuildResult contains an assembled document and how it was produced
type BuildResult struct {
	Document *domain.Document
	Failures []*application.NoteError
	Stats    domain.SyncStats
}

// BuildDocumentCommand parses the notes folder and assembles the activity
// document without writing it anywhere
type BuildDocumentCommand struct {
	parse *ParseNotesCommand
	Now   func() time.Time
}

// Ensure BuildDocumentCommand can serve the query commands directly
var _ ports.DocumentReader = (*BuildDocumentCommand)(nil)

// NewBuildDocumentCommand creates a new BuildDocumentCommand
func NewBuildDocumentCommand(source ports.NoteSource, cache ports.RecordCache, logger *slog.Logger) *BuildDocumentCommand {
	return &BuildDocumentCommand{
		parse: NewParseNotesCommand(source, cache, logger),
		Now:   time.Now,
	}
}

// Execute runs the build command
func (c *BuildDocumentCommand) Execute(ctx context.Context) (*BuildResult, error) {
	parsed, err := c.parse.Execute(ctx)
	if err != nil {
		return nil, err
	}

	return &BuildResult{
		Document: domain.BuildDocument(parsed.Records, c.Now()),
		Failures: parsed.Failures,
		Stats:    parsed.Stats,
	}, nil
}

// Load builds a fresh document from the notes
func (c *BuildDocumentCommand) Load(ctx context.Context) (*domain.Document, error) {
	result, err := c.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return result.Document, nil
}

// Summary describes a generated document for the end-of-run report
type Summary struct {
	TotalRecords int
	ActiveDays   int
	DateRange    domain.DateRange
	Tools        []string
	Stack        []string
}

// SummarizeDocument computes the run summary for a document
func SummarizeDocument(doc *domain.Document) Summary {
	return Summary{
		TotalRecords: len(doc.Projects),
		ActiveDays:   len(doc.DailyContributions),
		DateRange:    doc.Metadata.DateRange,
		Tools:        doc.DistinctTools(),
		Stack:        doc.DistinctStack(),
	}
}

// GenerateResult contains the result of a generate run
type GenerateResult struct {
	BuildResult
	Destinations []string
	Summary      Summary
}

// GenerateCommand builds the activity document and writes it to every
// configured destination. Nothing is written if the build is interrupted.
type GenerateCommand struct {
	build  *BuildDocumentCommand
	writer ports.DocumentWriter
	logger *slog.Logger
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(source ports.NoteSource, cache ports.RecordCache, writer ports.DocumentWriter, logger *slog.Logger) *GenerateCommand {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &GenerateCommand{
		build:  NewBuildDocumentCommand(source, cache, logger),
		writer: writer,
		logger: logger,
	}
}

// WithClock overrides the clock used for the generated timestamp
func (c *GenerateCommand) WithClock(now func() time.Time) *GenerateCommand {
	c.build.Now = now
	return c
}

// Execute runs the generate command
func (c *GenerateCommand) Execute(ctx context.Context) (*GenerateResult, error) {
	built, err := c.build.Execute(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.writer.Save(ctx, built.Document); err != nil {
		return nil, fmt.Errorf("failed to write activity data: %w", err)
	}

	result := &GenerateResult{
		BuildResult:  *built,
		Destinations: c.writer.Destinations(),
		Summary:      SummarizeDocument(built.Document),
	}

	c.logger.Info("generated activity data",
		"records", result.Summary.TotalRecords,
		"days", result.Summary.ActiveDays,
		"failed", len(result.Failures),
		"cached", result.Stats.NotesCached,
		"duration", result.Stats.Duration,
	)

	return result, nil
}

package commands

import (
	"context"
	"strings"

	"vibegraph/internal/application"
	"vibegraph/internal/domain"
	"vibegraph/internal/ports"
)

// DayEntry is one active day with its aggregate
type DayEntry struct {
	Date string
	domain.DailySummary
}

// ListDaysCommand lists active days in ascending order, optionally bounded
type ListDaysCommand struct {
	docs ports.DocumentReader
	From string // inclusive, empty for unbounded
	To   string // inclusive, empty for unbounded
}

// NewListDaysCommand creates a new ListDaysCommand
func NewListDaysCommand(docs ports.DocumentReader, from, to string) *ListDaysCommand {
	return &ListDaysCommand{
		docs: docs,
		From: from,
		To:   to,
	}
}

// Validate checks the date bounds
func (c *ListDaysCommand) Validate() error {
	return application.ValidateDateRange(c.From, c.To)
}

// Execute runs the list days command
func (c *ListDaysCommand) Execute(ctx context.Context) ([]DayEntry, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	doc, err := c.docs.Load(ctx)
	if err != nil {
		return nil, err
	}

	var entries []DayEntry
	for _, date := range doc.ActiveDays() {
		if c.From != "" && date < c.From {
			continue
		}
		if c.To != "" && date > c.To {
			continue
		}
		entries = append(entries, DayEntry{Date: date, DailySummary: doc.DailyContributions[date]})
	}
	return entries, nil
}

// ListProjectsCommand lists records newest first, optionally filtered
type ListProjectsCommand struct {
	docs  ports.DocumentReader
	Limit int    // 0 for no limit
	Tool  string // case-insensitive exact match on a tool
	Stack string // case-insensitive exact match on a stack entry
}

// NewListProjectsCommand creates a new ListProjectsCommand
func NewListProjectsCommand(docs ports.DocumentReader, limit int) *ListProjectsCommand {
	return &ListProjectsCommand{
		docs:  docs,
		Limit: limit,
	}
}

// Execute runs the list projects command
func (c *ListProjectsCommand) Execute(ctx context.Context) ([]domain.ActivityRecord, error) {
	doc, err := c.docs.Load(ctx)
	if err != nil {
		return nil, err
	}

	var records []domain.ActivityRecord
	for _, r := range doc.Projects {
		if c.Tool != "" && !containsFold(r.Tools, c.Tool) {
			continue
		}
		if c.Stack != "" && !containsFold(r.Stack, c.Stack) {
			continue
		}
		records = append(records, r)
		if c.Limit > 0 && len(records) == c.Limit {
			break
		}
	}
	return records, nil
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

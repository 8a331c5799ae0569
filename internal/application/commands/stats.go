package commands

import (
	"cmp"
	"context"
	"slices"
	"strconv"
	"strings"
	"time"

	"vibegraph/internal/domain"
	"vibegraph/internal/ports"
)

// Count is a name with how many records mention it
type Count struct {
	Name  string
	Count int
}

// Stats aggregates a whole activity document
type Stats struct {
	TotalRecords  int
	ActiveDays    int
	CurrentStreak int
	LongestStreak int
	BusiestDay    string // most records on a single day; earliest wins ties
	BusiestCount  int
	TotalCost     int // sum of detected dollar amounts
	Tools         []Count
	Stack         []Count
}

// StatsCommand computes usage statistics over the activity document
type StatsCommand struct {
	docs  ports.DocumentReader
	Today func() time.Time
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(docs ports.DocumentReader) *StatsCommand {
	return &StatsCommand{
		docs:  docs,
		Today: time.Now,
	}
}

// Execute runs the stats command
func (c *StatsCommand) Execute(ctx context.Context) (*Stats, error) {
	doc, err := c.docs.Load(ctx)
	if err != nil {
		return nil, err
	}

	days := doc.ActiveDays()
	stats := &Stats{
		TotalRecords: len(doc.Projects),
		ActiveDays:   len(days),
	}
	stats.CurrentStreak, stats.LongestStreak = domain.Streaks(days, c.Today())

	for _, d := range days {
		if n := doc.DailyContributions[d].ProjectCount; n > stats.BusiestCount {
			stats.BusiestDay, stats.BusiestCount = d, n
		}
	}

	for _, r := range doc.Projects {
		if n, err := strconv.Atoi(strings.TrimPrefix(r.CostString(), "$")); err == nil {
			stats.TotalCost += n
		}
	}

	stats.Tools = countValues(doc.Projects, func(r domain.ActivityRecord) []string { return r.Tools })
	stats.Stack = countValues(doc.Projects, func(r domain.ActivityRecord) []string { return r.Stack })

	return stats, nil
}

// countValues counts records per value, most used first, then by name
func countValues(records []domain.ActivityRecord, field func(domain.ActivityRecord) []string) []Count {
	counts := make(map[string]int)
	for _, r := range records {
		for _, v := range field(r) {
			counts[v]++
		}
	}

	out := make([]Count, 0, len(counts))
	for name, n := range counts {
		out = append(out, Count{Name: name, Count: n})
	}
	slices.SortFunc(out, func(a, b Count) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

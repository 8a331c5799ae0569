package domain

import (
	"slices"
	"strings"
)

// DateLayout is the calendar-day format used for every record and summary key
const DateLayout = "2006-01-02"

// StatusCompleted is the only status a parsed record can carry
const StatusCompleted = "completed"

// ActivityRecord is one day of work extracted from a note
type ActivityRecord struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Title       string   `json:"title"`
	Tools       []string `json:"vibeTools"`
	Stack       []string `json:"stack"`
	Description string   `json:"description"`
	Learnings   []string `json:"learnings"`
	Cost        *string  `json:"cost"` // nil when no $<digits> appears in the section
	Status      string   `json:"status"`
	Intensity   int      `json:"intensity"` // 1-4
	FilePath    string   `json:"filePath"`
}

// HasCost reports whether a cost was detected
func (r ActivityRecord) HasCost() bool {
	return r.Cost != nil
}

// CostString returns the cost or an empty string
func (r ActivityRecord) CostString() string {
	if r.Cost == nil {
		return ""
	}
	return *r.Cost
}

// DailySummary aggregates all records that share a date
type DailySummary struct {
	Intensity    int      `json:"intensity"`
	ProjectCount int      `json:"projectCount"`
	Tools        []string `json:"vibeTools"`
}

// DateRange is the inclusive span of dates present in a document
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Metadata describes a generated document
type Metadata struct {
	Generated     string    `json:"generated"`
	TotalProjects int       `json:"totalProjects"`
	DateRange     DateRange `json:"dateRange"`
}

// Document is the JSON output consumed by the graph renderers
type Document struct {
	Metadata           Metadata                `json:"metadata"`
	DailyContributions map[string]DailySummary `json:"dailyContributions"`
	Projects           []ActivityRecord        `json:"projects"`
}

// RecordsOn returns the records for a single day, keeping document order
func (d *Document) RecordsOn(date string) []ActivityRecord {
	var out []ActivityRecord
	for _, r := range d.Projects {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

// ActiveDays returns the dates with contributions in ascending order
func (d *Document) ActiveDays() []string {
	days := make([]string, 0, len(d.DailyContributions))
	for date := range d.DailyContributions {
		days = append(days, date)
	}
	slices.Sort(days)
	return days
}

// Recent returns at most n records from the head of the (newest first) project list
func (d *Document) Recent(n int) []ActivityRecord {
	if n <= 0 || n >= len(d.Projects) {
		return d.Projects
	}
	return d.Projects[:n]
}

// FindRecord looks a record up by id
func (d *Document) FindRecord(id string) (ActivityRecord, bool) {
	for _, r := range d.Projects {
		if r.ID == id {
			return r, true
		}
	}
	return ActivityRecord{}, false
}

// DistinctTools returns every tool used across the document, in first-seen order
func (d *Document) DistinctTools() []string {
	return distinct(d.Projects, func(r ActivityRecord) []string { return r.Tools })
}

// DistinctStack returns every stack entry across the document, in first-seen order
func (d *Document) DistinctStack() []string {
	return distinct(d.Projects, func(r ActivityRecord) []string { return r.Stack })
}

func distinct(records []ActivityRecord, field func(ActivityRecord) []string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, r := range records {
		for _, v := range field(r) {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// Slugify lowercases a title and replaces whitespace runs with dashes
func Slugify(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}

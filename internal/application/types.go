package application

import (
	"time"

	"vibegraph/internal/domain"
)

// Re-export domain types for use by adapters
type (
	ActivityRecord = domain.ActivityRecord
	DailySummary   = domain.DailySummary
	Document       = domain.Document
	Calendar       = domain.Calendar
	CalendarCell   = domain.CalendarCell
	SearchResult   = domain.SearchResult
)

const (
	DateLayout   = domain.DateLayout
	DaysPerWeek  = domain.DaysPerWeek
	MinIntensity = domain.MinIntensity
	MaxIntensity = domain.MaxIntensity
	BulletGlyph  = domain.BulletGlyph
)

// BuildCalendar lays out the contribution graph for the year ending with today's month
func BuildCalendar(today time.Time, doc *Document) *Calendar {
	return domain.BuildCalendar(today, doc)
}

// Streaks returns the current and longest runs of consecutive active days
func Streaks(days []string, today time.Time) (current, longest int) {
	return domain.Streaks(days, today)
}

// HeadingLine returns the 1-based line of the heading for date, or 0
func HeadingLine(content, date string) int {
	return domain.HeadingLine(content, date)
}

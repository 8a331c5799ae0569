package domain

import (
	"slices"
	"strings"
	"time"
)

// GeneratedLayout matches JavaScript's Date.toISOString output
const GeneratedLayout = "2006-01-02T15:04:05.000Z07:00"

// Summarize reduces records into per-day summaries in a single pass
func Summarize(records []ActivityRecord) map[string]DailySummary {
	days := make(map[string]DailySummary)
	for _, r := range records {
		day, ok := days[r.Date]
		if !ok {
			day = DailySummary{Tools: []string{}}
		}
		day.Intensity = max(day.Intensity, r.Intensity)
		day.ProjectCount++
		for _, tool := range r.Tools {
			if !slices.Contains(day.Tools, tool) {
				day.Tools = append(day.Tools, tool)
			}
		}
		days[r.Date] = day
	}
	return days
}

// BuildDocument assembles the output document. Records are copied and
// ordered newest first; records on the same day keep their input order.
func BuildDocument(records []ActivityRecord, now time.Time) *Document {
	days := Summarize(records)

	projects := slices.Clone(records)
	if projects == nil {
		projects = []ActivityRecord{}
	}
	slices.SortStableFunc(projects, func(a, b ActivityRecord) int {
		return strings.Compare(b.Date, a.Date)
	})

	doc := &Document{
		Metadata: Metadata{
			Generated:     now.UTC().Format(GeneratedLayout),
			TotalProjects: len(projects),
		},
		DailyContributions: days,
		Projects:           projects,
	}

	dates := doc.ActiveDays()
	if len(dates) == 0 {
		today := now.Local().Format(DateLayout)
		doc.Metadata.DateRange = DateRange{Start: today, End: today}
	} else {
		doc.Metadata.DateRange = DateRange{Start: dates[0], End: dates[len(dates)-1]}
	}

	return doc
}

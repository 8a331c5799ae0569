package commands

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibegraph/internal/application"
	"vibegraph/internal/domain"
)

func sampleDocs() staticDocs {
	records := []domain.ActivityRecord{
		testRecord("parser-2026-01-20", "2026-01-20", []string{"Claude"}, []string{"Go"}),
		testRecord("graph", "2026-01-21", []string{"Cursor"}, []string{"TypeScript"}),
		testRecord("parser-2026-01-22", "2026-01-22", []string{"Claude", "Cursor"}, []string{"Go"}),
		testRecord("site", "2026-01-22", []string{"Windsurf"}, []string{"CSS"}),
	}
	records[0].Title = "Parser"
	records[0].Description = "Wrote the heading scanner and a regex cleaner"
	records[0].Learnings = []string{"should handle CRLF line endings"}
	records[0].Cost = ptr("$20")
	records[2].Title = "Parser"
	records[2].Cost = ptr("$5")
	records[3].Title = "Site"

	return staticDocs{doc: domain.BuildDocument(records, time.Now())}
}

func ptr(s string) *string { return &s }

func TestListDaysCommand(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		expected []string
	}{
		{"all", "", "", []string{"2026-01-20", "2026-01-21", "2026-01-22"}},
		{"from", "2026-01-21", "", []string{"2026-01-21", "2026-01-22"}},
		{"to", "", "2026-01-20", []string{"2026-01-20"}},
		{"window", "2026-01-21", "2026-01-21", []string{"2026-01-21"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := NewListDaysCommand(sampleDocs(), tt.from, tt.to).Execute(context.Background())
			require.NoError(t, err)

			var dates []string
			for _, e := range entries {
				dates = append(dates, e.Date)
			}
			assert.Equal(t, tt.expected, dates)
		})
	}
}

func TestListDaysCommand_RejectsBadRange(t *testing.T) {
	_, err := NewListDaysCommand(sampleDocs(), "2026-02-01", "2026-01-01").Execute(context.Background())
	var valErr *application.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestListProjectsCommand(t *testing.T) {
	cmd := NewListProjectsCommand(sampleDocs(), 0)
	records, err := cmd.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "2026-01-22", records[0].Date)

	cmd.Tool = "claude"
	records, err = cmd.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "parser-2026-01-22", records[0].ID)

	cmd.Tool = ""
	cmd.Stack = "go"
	cmd.Limit = 1
	records, err = cmd.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "parser-2026-01-22", records[0].ID)
}

func TestShowDayCommand(t *testing.T) {
	detail, err := NewShowDayCommand(sampleDocs(), "2026-01-22").Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, detail.Summary.ProjectCount)
	require.Len(t, detail.Records, 2)
	assert.Equal(t, "parser-2026-01-22", detail.Records[0].ID)
	assert.Equal(t, "site", detail.Records[1].ID)
}

func TestShowDayCommand_Errors(t *testing.T) {
	_, err := NewShowDayCommand(sampleDocs(), "2026-01-23").Execute(context.Background())
	require.ErrorIs(t, err, application.ErrNotFound)

	_, err = NewShowDayCommand(sampleDocs(), "22/01/2026").Execute(context.Background())
	require.ErrorIs(t, err, application.ErrInvalidDate)
}

func TestShowRecordCommand(t *testing.T) {
	r, err := NewShowRecordCommand(sampleDocs(), "graph").Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-01-21", r.Date)

	_, err = NewShowRecordCommand(sampleDocs(), "nope").Execute(context.Background())
	require.ErrorIs(t, err, application.ErrNotFound)

	_, err = NewShowRecordCommand(sampleDocs(), "").Execute(context.Background())
	var valErr *application.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestStatsCommand(t *testing.T) {
	cmd := NewStatsCommand(sampleDocs())
	cmd.Today = func() time.Time { return time.Date(2026, 1, 23, 9, 0, 0, 0, time.Local) }

	stats, err := cmd.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalRecords)
	assert.Equal(t, 3, stats.ActiveDays)
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 3, stats.LongestStreak)
	assert.Equal(t, "2026-01-22", stats.BusiestDay)
	assert.Equal(t, 2, stats.BusiestCount)
	assert.Equal(t, 25, stats.TotalCost)
	assert.Equal(t, []Count{{"Claude", 2}, {"Cursor", 2}, {"Windsurf", 1}}, stats.Tools)
	assert.Equal(t, Count{"Go", 2}, stats.Stack[0])
}

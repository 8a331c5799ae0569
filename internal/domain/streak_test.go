package domain

import (
	"testing"
	"time"
)

func TestStreaks(t *testing.T) {
	today := time.Date(2026, 1, 22, 18, 0, 0, 0, time.Local)

	tests := []struct {
		name            string
		days            []string
		expectedCurrent int
		expectedLongest int
	}{
		{"no days", nil, 0, 0},
		{"single day today", []string{"2026-01-22"}, 1, 1},
		{"ends yesterday", []string{"2026-01-20", "2026-01-21"}, 2, 2},
		{"broken before today", []string{"2026-01-18", "2026-01-19", "2026-01-20"}, 0, 3},
		{
			name:            "longest in the past",
			days:            []string{"2025-12-01", "2025-12-02", "2025-12-03", "2025-12-04", "2026-01-21", "2026-01-22"},
			expectedCurrent: 2,
			expectedLongest: 4,
		},
		{"across month boundary", []string{"2025-12-31", "2026-01-01"}, 0, 2},
		{"invalid dates skipped", []string{"not-a-date", "2026-01-22"}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, longest := Streaks(tt.days, today)
			if current != tt.expectedCurrent {
				t.Errorf("current = %d, expected %d", current, tt.expectedCurrent)
			}
			if longest != tt.expectedLongest {
				t.Errorf("longest = %d, expected %d", longest, tt.expectedLongest)
			}
		})
	}
}

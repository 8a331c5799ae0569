package domain

import "time"

// Streaks returns the current and longest runs of consecutive active days.
// days must be sorted ascending. The current streak counts back from today,
// or from yesterday when today has no activity yet.
func Streaks(days []string, today time.Time) (current, longest int) {
	var (
		run  int
		prev time.Time
	)
	for _, d := range days {
		t, err := time.Parse(DateLayout, d)
		if err != nil {
			continue
		}
		if run > 0 && t.Equal(prev.AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
		prev = t
	}

	if run == 0 {
		return 0, 0
	}

	y, m, dd := today.Date()
	todayUTC := time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
	if prev.Equal(todayUTC) || prev.Equal(todayUTC.AddDate(0, 0, -1)) {
		current = run
	}
	return current, longest
}

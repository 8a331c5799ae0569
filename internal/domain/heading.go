package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// HeadingPrefix marks a second-level heading line
const HeadingPrefix = "## "

var (
	exactDatePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	embeddedDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	headingMarker       = regexp.MustCompile(`^##\s*`)
	yearPattern         = regexp.MustCompile(`(^|\D)\d{4}(\D|$)`)
	leadingWeekday      = regexp.MustCompile(`(?i)^(mon|tue|tues|wed|thu|thur|thurs|fri|sat|sun)(day|nesday|sday|urday)?\.?,?\s+`)
)

// IsSectionHeading reports whether a line is a second-level heading
func IsSectionHeading(line string) bool {
	return strings.HasPrefix(line, HeadingPrefix)
}

// ParseHeadingDate resolves a heading line to a YYYY-MM-DD date.
// The second return value is false when the heading is not a date;
// that is never an error.
func ParseHeadingDate(heading string) (string, bool) {
	text := strings.TrimSpace(headingMarker.ReplaceAllString(heading, ""))
	if text == "" {
		return "", false
	}

	if exactDatePattern.MatchString(text) && isCalendarDate(text) {
		return text, true
	}

	for _, candidate := range embeddedDatePattern.FindAllString(text, -1) {
		if isCalendarDate(candidate) {
			return candidate, true
		}
	}

	return parseNaturalDate(text)
}

func isCalendarDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// parseNaturalDate accepts free-form dates only when they name a year;
// times of day and bare month/day pairs are not dates.
func parseNaturalDate(text string) (date string, ok bool) {
	if !yearPattern.MatchString(text) {
		return "", false
	}
	text = leadingWeekday.ReplaceAllString(text, "")

	// dateparse has panicked on malformed input before
	defer func() {
		if recover() != nil {
			date, ok = "", false
		}
	}()

	t, err := dateparse.ParseIn(text, time.Local)
	if err != nil || t.Year() < 1 {
		return "", false
	}
	return t.Format(DateLayout), true
}

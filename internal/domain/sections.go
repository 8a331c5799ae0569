package domain

import (
	"slices"
	"strings"
)

// Section is a run of body lines that belong to one calendar day
type Section struct {
	Date  string
	Lines []string
}

// Content joins the section lines back into text
func (s Section) Content() string {
	return strings.Join(s.Lines, "\n")
}

// SplitSections scans a note body for "## <date>" headings and returns one
// section per date, oldest first. Lines before the first date heading are
// dropped. A nil result means the body has no date headings.
func SplitSections(body string) []Section {
	var (
		sections    []Section
		currentDate string
		buffer      []string
	)

	flush := func() {
		if currentDate != "" && len(buffer) > 0 {
			sections = append(sections, Section{Date: currentDate, Lines: buffer})
		}
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if IsSectionHeading(line) {
			if date, ok := ParseHeadingDate(line); ok {
				flush()
				currentDate = date
				buffer = nil
				continue
			}
		}

		if currentDate != "" {
			buffer = append(buffer, line)
		}
	}
	flush()

	return mergeSameDay(sections)
}

// mergeSameDay sorts sections by date and folds repeated dates into one
// section so record ids stay unique within a note
func mergeSameDay(sections []Section) []Section {
	if len(sections) == 0 {
		return nil
	}

	slices.SortStableFunc(sections, func(a, b Section) int {
		return strings.Compare(a.Date, b.Date)
	})

	merged := []Section{sections[0]}
	for _, s := range sections[1:] {
		last := &merged[len(merged)-1]
		if last.Date == s.Date {
			last.Lines = slices.Concat(last.Lines, []string{""}, s.Lines)
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// HeadingLine returns the 1-based line of the first heading in content that
// resolves to date, or 0 when there is none
func HeadingLine(content, date string) int {
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !IsSectionHeading(line) {
			continue
		}
		if d, ok := ParseHeadingDate(line); ok && d == date {
			return i + 1
		}
	}
	return 0
}

package domain

import "time"

// CalendarMonths is how many calendar months the contribution graph spans
const CalendarMonths = 12

// DaysPerWeek is the number of rows in the graph (Monday first)
const DaysPerWeek = 7

// CalendarCell is one day square of the contribution graph
type CalendarCell struct {
	Date  string
	Level int // 0 when the day has no records, otherwise the day's intensity
}

// MonthLabel marks the first week column of a month
type MonthLabel struct {
	Week  int
	Label string
}

// Calendar is the week-major grid behind the contribution graph.
// Cells[week*7+row] holds the day, with row 0 being Monday.
type Calendar struct {
	Start  time.Time
	End    time.Time
	Weeks  int
	Cells  []CalendarCell
	Months []MonthLabel
}

// BuildCalendar lays out the twelve full calendar months ending with the
// month of today, widened to whole Monday-Sunday weeks
func BuildCalendar(today time.Time, doc *Document) *Calendar {
	loc := today.Location()
	first := time.Date(today.Year(), today.Month()-(CalendarMonths-1), 1, 0, 0, 0, 0, loc)
	last := time.Date(today.Year(), today.Month()+1, 0, 0, 0, 0, 0, loc)

	start := first.AddDate(0, 0, -mondayOffset(first))
	end := last.AddDate(0, 0, (DaysPerWeek-1-mondayOffset(last))%DaysPerWeek)

	cal := &Calendar{Start: start, End: end}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format(DateLayout)
		level := 0
		if doc != nil {
			level = doc.DailyContributions[date].Intensity
		}
		cal.Cells = append(cal.Cells, CalendarCell{Date: date, Level: level})
	}
	cal.Weeks = len(cal.Cells) / DaysPerWeek

	currentMonth := time.Month(0)
	for week := 0; week < cal.Weeks; week++ {
		monday := start.AddDate(0, 0, week*DaysPerWeek)
		if monday.Month() != currentMonth {
			cal.Months = append(cal.Months, MonthLabel{Week: week, Label: monday.Format("Jan")})
			currentMonth = monday.Month()
		}
	}

	return cal
}

// Cell returns the cell at a week column and weekday row
func (c *Calendar) Cell(week, row int) (CalendarCell, bool) {
	i := week*DaysPerWeek + row
	if week < 0 || row < 0 || row >= DaysPerWeek || i >= len(c.Cells) {
		return CalendarCell{}, false
	}
	return c.Cells[i], true
}

// Locate returns the week and row of a date inside the grid
func (c *Calendar) Locate(date string) (week, row int, ok bool) {
	for i, cell := range c.Cells {
		if cell.Date == date {
			return i / DaysPerWeek, i % DaysPerWeek, true
		}
	}
	return 0, 0, false
}

// mondayOffset returns 0 for Monday through 6 for Sunday
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % DaysPerWeek
}

package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vibegraph/internal/adapters/tui/styles"
	"vibegraph/internal/application"
)

// GraphKeyMap defines key bindings for the contribution graph
type GraphKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Today  key.Binding
	Enter  key.Binding
	Search key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var GraphKeys = GraphKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "prev day"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next day"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "prev week"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next week"),
	),
	Today: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "today"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open day"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// labelWidth is the space reserved for weekday labels
const labelWidth = 4

// weekdayLabels are shown on alternate rows like the web graph
var weekdayLabels = [application.DaysPerWeek]string{"Mon", "", "Wed", "", "Fri", "", ""}

// GraphModel renders the twelve-month contribution graph with a day cursor
type GraphModel struct {
	ViewState
	doc      *application.Document
	cal      *application.Calendar
	failures int
	loading  bool

	week   int
	row    int
	offset int // first visible week column

	Now func() time.Time
}

// NewGraphModel creates a new graph view model
func NewGraphModel() *GraphModel {
	return &GraphModel{
		loading: true,
		Now:     time.Now,
	}
}

// SetDocument lays out the calendar for doc and moves the cursor to today
func (m *GraphModel) SetDocument(doc *application.Document, failures int) {
	m.doc = doc
	m.failures = failures
	m.loading = false
	m.cal = application.BuildCalendar(m.Now(), doc)
	m.jumpToToday()
}

// SetLoadError shows a failed load; the previous graph stays visible
func (m *GraphModel) SetLoadError(err error) {
	m.loading = false
	m.SetMessage(err.Error(), true)
}

// Calendar returns the current layout, nil before the first load
func (m *GraphModel) Calendar() *application.Calendar {
	return m.cal
}

// Selected returns the cell under the cursor
func (m *GraphModel) Selected() (application.CalendarCell, bool) {
	if m.cal == nil {
		return application.CalendarCell{}, false
	}
	return m.cal.Cell(m.week, m.row)
}

// Select moves the cursor to date when it is inside the graph
func (m *GraphModel) Select(date string) bool {
	if m.cal == nil {
		return false
	}
	week, row, ok := m.cal.Locate(date)
	if !ok || week*application.DaysPerWeek+row > m.lastIndex() {
		return false
	}
	m.week, m.row = week, row
	m.scroll()
	return true
}

// Init initializes the graph view
func (m *GraphModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the graph view
func (m *GraphModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.scroll()
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()
		switch {
		case key.Matches(msg, GraphKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, GraphKeys.Up):
			m.move(-1)
		case key.Matches(msg, GraphKeys.Down):
			m.move(1)
		case key.Matches(msg, GraphKeys.Left):
			m.move(-application.DaysPerWeek)
		case key.Matches(msg, GraphKeys.Right):
			m.move(application.DaysPerWeek)
		case key.Matches(msg, GraphKeys.Today):
			m.jumpToToday()
		case key.Matches(msg, GraphKeys.Enter):
			if cell, ok := m.Selected(); ok {
				return m, func() tea.Msg { return SwitchToDayMsg{Date: cell.Date} }
			}
		case key.Matches(msg, GraphKeys.Search):
			return m, func() tea.Msg { return SwitchToSearchMsg{} }
		case key.Matches(msg, GraphKeys.Reload):
			m.loading = true
			return m, func() tea.Msg { return ReloadMsg{} }
		case key.Matches(msg, GraphKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}
	}

	return m, nil
}

func (m *GraphModel) move(days int) {
	if m.cal == nil {
		return
	}
	i := m.week*application.DaysPerWeek + m.row + days
	i = max(0, min(i, m.lastIndex()))
	m.week, m.row = i/application.DaysPerWeek, i%application.DaysPerWeek
	m.scroll()
}

func (m *GraphModel) jumpToToday() {
	if m.cal == nil {
		return
	}
	i := m.lastIndex()
	m.week, m.row = i/application.DaysPerWeek, i%application.DaysPerWeek
	m.scroll()
}

// lastIndex is the cell of today; days after it cannot be selected
func (m *GraphModel) lastIndex() int {
	if week, row, ok := m.cal.Locate(m.today()); ok {
		return week*application.DaysPerWeek + row
	}
	return len(m.cal.Cells) - 1
}

func (m *GraphModel) today() string {
	return m.Now().Format(application.DateLayout)
}

// visibleWeeks is how many week columns fit the terminal
func (m *GraphModel) visibleWeeks() int {
	if m.cal == nil {
		return 0
	}
	if m.Width <= 0 {
		return m.cal.Weeks
	}
	// two columns per week plus the app padding
	return max(1, min(m.cal.Weeks, (m.Width-labelWidth-4)/2))
}

func (m *GraphModel) scroll() {
	if m.cal == nil {
		return
	}
	visible := m.visibleWeeks()
	if m.week < m.offset {
		m.offset = m.week
	}
	if m.week >= m.offset+visible {
		m.offset = m.week - visible + 1
	}
	m.offset = max(0, min(m.offset, m.cal.Weeks-visible))
}

// View renders the graph view
func (m *GraphModel) View() string {
	v := NewViewBuilder().Title("Vibe Coding Activity")

	if m.cal == nil {
		if m.loading {
			return v.Muted("Parsing notes...").String()
		}
		return v.Message(m.Message, m.MessageErr).Help(GraphKeys.Reload, GraphKeys.Quit).String()
	}

	v.Line(styles.StatusBar.Render(m.summaryLine()))
	v.Line(m.renderMonths())
	for row := range application.DaysPerWeek {
		v.Line(m.renderRow(row))
	}
	v.BlankLine()
	v.Line(m.renderLegend())
	v.BlankLine()
	v.Line(m.renderSelection())
	v.BlankLine()
	v.Message(m.Message, m.MessageErr)

	v.Help(GraphKeys.Left, GraphKeys.Up, GraphKeys.Enter, GraphKeys.Search, GraphKeys.Reload, GraphKeys.Help, GraphKeys.Quit)
	return v.String()
}

func (m *GraphModel) summaryLine() string {
	if m.doc == nil {
		return "No activity"
	}
	days := m.doc.ActiveDays()
	current, longest := application.Streaks(days, m.Now())
	line := fmt.Sprintf("%d records on %d days · streak %d (best %d)",
		len(m.doc.Projects), len(days), current, longest)
	if m.failures > 0 {
		line += fmt.Sprintf(" · %d notes skipped", m.failures)
	}
	if m.loading {
		line += " · reloading"
	}
	return line
}

func (m *GraphModel) renderMonths() string {
	visible := m.visibleWeeks()
	line := []rune(strings.Repeat(" ", labelWidth+visible*2))
	for _, month := range m.cal.Months {
		col := month.Week - m.offset
		if col < 0 || col >= visible {
			continue
		}
		pos := labelWidth + col*2
		label := []rune(month.Label)
		if pos+len(label) > len(line) {
			continue
		}
		// keep the previous label readable when months are one week apart
		if pos > 0 && line[pos-1] != ' ' {
			continue
		}
		copy(line[pos:], label)
	}
	return styles.AxisLabel.Render(strings.TrimRight(string(line), " "))
}

func (m *GraphModel) renderRow(row int) string {
	var b strings.Builder
	b.WriteString(styles.AxisLabel.Render(fmt.Sprintf("%-*s", labelWidth, weekdayLabels[row])))

	today := m.today()
	for week := m.offset; week < m.offset+m.visibleWeeks(); week++ {
		cell, ok := m.cal.Cell(week, row)
		switch {
		case !ok || cell.Date > today:
			b.WriteString(" ")
		case week == m.week && row == m.row:
			b.WriteString(styles.CellCursor.Render(styles.CellGlyph))
		case cell.Date == today:
			b.WriteString(styles.CellToday.Render(styles.Cell(cell.Level)))
		default:
			b.WriteString(styles.Cell(cell.Level))
		}
		b.WriteString(" ")
	}
	return strings.TrimRight(b.String(), " ")
}

func (m *GraphModel) renderLegend() string {
	var b strings.Builder
	b.WriteString(RenderMuted("Less "))
	for level := application.MinIntensity - 1; level <= application.MaxIntensity; level++ {
		b.WriteString(styles.Cell(level))
		b.WriteString(" ")
	}
	b.WriteString(RenderMuted("More"))
	return b.String()
}

func (m *GraphModel) renderSelection() string {
	cell, ok := m.Selected()
	if !ok {
		return ""
	}
	date := cell.Date
	if t, err := time.Parse(application.DateLayout, cell.Date); err == nil {
		date = t.Format("Mon Jan 2, 2006")
	}

	if m.doc == nil {
		return RenderLabelValue(date, RenderMuted("no activity"))
	}
	summary, active := m.doc.DailyContributions[cell.Date]
	if !active {
		return RenderLabelValue(date, RenderMuted("no activity"))
	}
	return RenderLabelValue(date, fmt.Sprintf("%d project(s) · intensity %d · %s",
		summary.ProjectCount, summary.Intensity, styles.Tag.Render(strings.Join(summary.Tools, ", "))))
}

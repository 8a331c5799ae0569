package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"vibegraph/internal/adapters/tui/styles"
	"vibegraph/internal/application"
)

// DayKeyMap defines key bindings for the day drill-down
type DayKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Copy     key.Binding
	CopyID   key.Binding
	Editor   key.Binding
	Obsidian key.Binding
	Back     key.Binding
}

var DayKeys = DayKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "prev project"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next project"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "scroll up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "scroll down"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy description"),
	),
	CopyID: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy ID"),
	),
	Editor: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Obsidian: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "obsidian"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "q", "backspace"),
		key.WithHelp("esc", "back"),
	),
}

// DayModel shows every record of one day with the selected one in full
type DayModel struct {
	ViewState
	date     string
	summary  application.DailySummary
	records  []application.ActivityRecord
	cursor   int
	viewport viewport.Model

	copy func(string) error
}

// NewDayModel creates a new day view model
func NewDayModel() *DayModel {
	return &DayModel{
		viewport: viewport.New(80, 10),
		copy:     clipboard.WriteAll,
	}
}

// SetDay loads a day from doc and selects recordID when it is present
func (m *DayModel) SetDay(doc *application.Document, date, recordID string) {
	m.date = date
	m.summary = application.DailySummary{}
	m.records = nil
	m.cursor = 0
	m.ClearMessage()

	if doc != nil {
		m.summary = doc.DailyContributions[date]
		m.records = doc.RecordsOn(date)
	}
	for i, r := range m.records {
		if r.ID == recordID {
			m.cursor = i
		}
	}
	m.refresh()
}

// Date returns the day being shown
func (m *DayModel) Date() string {
	return m.date
}

// Selected returns the record under the cursor
func (m *DayModel) Selected() (application.ActivityRecord, bool) {
	if m.cursor < 0 || m.cursor >= len(m.records) {
		return application.ActivityRecord{}, false
	}
	return m.records[m.cursor], true
}

// SetSize updates the view dimensions and the detail pane
func (m *DayModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.viewport.Width = max(20, width-4)
	// title, summary, list, help and padding
	m.viewport.Height = max(3, height-len(m.records)-12)
	m.refresh()
}

// Init initializes the day view
func (m *DayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the day view
func (m *DayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	m.ClearMessage()
	switch {
	case key.Matches(keyMsg, DayKeys.Back):
		return m, func() tea.Msg { return SwitchToGraphMsg{} }

	case key.Matches(keyMsg, DayKeys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.refresh()
		}

	case key.Matches(keyMsg, DayKeys.Down):
		if m.cursor < len(m.records)-1 {
			m.cursor++
			m.refresh()
		}

	case key.Matches(keyMsg, DayKeys.PageUp):
		m.viewport.HalfViewUp()

	case key.Matches(keyMsg, DayKeys.PageDown):
		m.viewport.HalfViewDown()

	case key.Matches(keyMsg, DayKeys.Copy):
		if r, ok := m.Selected(); ok {
			m.copyText(r.Description, "description")
		}

	case key.Matches(keyMsg, DayKeys.CopyID):
		if r, ok := m.Selected(); ok {
			m.copyText(r.ID, "ID")
		}

	case key.Matches(keyMsg, DayKeys.Editor):
		if r, ok := m.Selected(); ok && r.FilePath != "" {
			return m, func() tea.Msg { return OpenEditorMsg{Path: r.FilePath, Date: r.Date} }
		}

	case key.Matches(keyMsg, DayKeys.Obsidian):
		if r, ok := m.Selected(); ok && r.FilePath != "" {
			return m, func() tea.Msg { return OpenObsidianMsg{Path: r.FilePath} }
		}
	}

	return m, nil
}

func (m *DayModel) copyText(text, what string) {
	if err := m.copy(text); err != nil {
		m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
		return
	}
	m.SetMessage("Copied "+what, false)
}

// refresh renders the selected record into the detail pane
func (m *DayModel) refresh() {
	r, ok := m.Selected()
	if !ok {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(RenderRecordDetail(r))
	m.viewport.GotoTop()
}

// View renders the day view
func (m *DayModel) View() string {
	v := NewViewBuilder().Title(m.date)

	if len(m.records) == 0 {
		v.Muted("No activity on this day")
		v.BlankLine()
		v.Message(m.Message, m.MessageErr)
		return v.Help(DayKeys.Back).String()
	}

	v.Subtitle(fmt.Sprintf("%d project(s) · intensity %d · %s",
		m.summary.ProjectCount, m.summary.Intensity, strings.Join(m.summary.Tools, ", ")))

	for i, r := range m.records {
		line := fmt.Sprintf("%s %s", styles.Cell(r.Intensity), r.Title)
		if i == m.cursor {
			line = styles.RowSelected.Render(line)
		}
		v.Line(line)
	}
	v.BlankLine()
	v.Line(m.viewport.View())
	v.BlankLine()
	v.Message(m.Message, m.MessageErr)

	return v.Help(DayKeys.Down, DayKeys.PageDown, DayKeys.Copy, DayKeys.CopyID, DayKeys.Editor, DayKeys.Obsidian, DayKeys.Back).String()
}

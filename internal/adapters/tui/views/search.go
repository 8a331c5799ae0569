package views

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vibegraph/internal/adapters/tui/styles"
	"vibegraph/internal/application"
	"vibegraph/internal/application/commands"
)

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	CopyID key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open day"),
	),
	CopyID: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy ID"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

const searchPageSize = 10

// SearchModel fuzzy-searches the records of the loaded document
type SearchModel struct {
	ViewState
	doc     *application.Document
	input   textinput.Model
	results []application.SearchResult
	pager   *Paginator

	copy func(string) error
}

// NewSearchModel creates a new search view model
func NewSearchModel() *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search titles, tools, stack, notes..."
	input.Focus()

	return &SearchModel{
		input: input,
		pager: NewPaginator(searchPageSize),
		copy:  clipboard.WriteAll,
	}
}

// SetDocument replaces the searched document and reruns the query
func (m *SearchModel) SetDocument(doc *application.Document) {
	m.doc = doc
	m.runQuery()
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the query and focuses the input
func (m *SearchModel) Reset() {
	m.input.SetValue("")
	m.results = nil
	m.pager.Reset(0)
	m.ClearMessage()
	m.input.Focus()
}

// Results returns the current matches, best first
func (m *SearchModel) Results() []application.SearchResult {
	return m.results
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, SearchKeys.Cancel):
			return m, func() tea.Msg { return SwitchToGraphMsg{} }

		case key.Matches(keyMsg, SearchKeys.Up):
			m.pager.CursorUp()
			return m, nil

		case key.Matches(keyMsg, SearchKeys.Down):
			m.pager.CursorDown()
			return m, nil

		case key.Matches(keyMsg, SearchKeys.Select):
			if r, ok := m.selected(); ok {
				return m, func() tea.Msg {
					return SwitchToDayMsg{Date: r.Record.Date, RecordID: r.Record.ID}
				}
			}
			return m, nil

		case key.Matches(keyMsg, SearchKeys.CopyID):
			if r, ok := m.selected(); ok {
				if err := m.copy(r.Record.ID); err != nil {
					m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
				} else {
					m.SetMessage("Copied "+r.Record.ID, false)
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	prev := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prev {
		m.ClearMessage()
		m.runQuery()
	}
	return m, cmd
}

func (m *SearchModel) runQuery() {
	query := m.input.Value()
	if m.doc == nil || len([]rune(query)) < commands.MinQueryLength {
		m.results = nil
	} else {
		m.results = commands.FuzzySort(m.doc.Projects, query)
	}
	m.pager.Reset(len(m.results))
}

func (m *SearchModel) selected() (application.SearchResult, bool) {
	i := m.pager.Cursor()
	if i < 0 || i >= len(m.results) {
		return application.SearchResult{}, false
	}
	return m.results[i], true
}

// View renders the search view
func (m *SearchModel) View() string {
	v := NewViewBuilder().Title("Search")
	v.Line(styles.InputFocused.Render(m.input.View()))
	v.BlankLine()

	switch {
	case len(m.results) > 0:
		v.Subtitle(fmt.Sprintf("%d results", len(m.results)))
		start, end := m.pager.Window()
		for i := start; i < end; i++ {
			v.Line(m.renderResult(m.results[i], i == m.pager.Cursor()))
		}
		if hidden := m.pager.Hidden(); hidden > 0 {
			v.Muted(fmt.Sprintf("... and %d more", hidden))
		}
	case len([]rune(m.input.Value())) >= commands.MinQueryLength:
		v.Muted("No results found")
	default:
		v.Muted(fmt.Sprintf("Type at least %d characters to search", commands.MinQueryLength))
	}

	v.BlankLine()
	v.Message(m.Message, m.MessageErr)
	return v.Help(SearchKeys.Up, SearchKeys.Down, SearchKeys.Select, SearchKeys.CopyID, SearchKeys.Cancel).String()
}

func (m *SearchModel) renderResult(r application.SearchResult, selected bool) string {
	text := fmt.Sprintf("%s  %s", r.Record.Date, r.Record.Title)
	if r.MatchedText != "" && r.MatchedText != r.Record.Title {
		text += "  " + styles.SearchMatch.Render(r.MatchedText)
	}
	if selected {
		return styles.RowSelected.Render(text)
	}
	return text
}

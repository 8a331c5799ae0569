package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"vibegraph/internal/adapters/tui/views"
	"vibegraph/internal/application"
	"vibegraph/internal/application/commands"
	"vibegraph/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewGraph ViewState = iota
	ViewDay
	ViewSearch
	ViewHelp
)

// documentBuilder is satisfied by readers that also report skipped notes
type documentBuilder interface {
	Execute(ctx context.Context) (*commands.BuildResult, error)
}

// App is the main TUI application model
type App struct {
	docs     ports.DocumentReader
	editor   ports.EditorOpener
	obsidian ports.ObsidianOpener

	state  ViewState
	doc    *application.Document
	graph  *views.GraphModel
	day    *views.DayModel
	search *views.SearchModel
	help   *views.HelpModel
}

// NewApp creates a new TUI application. The editor and obsidian openers
// may be nil.
func NewApp(docs ports.DocumentReader, ed ports.EditorOpener, obs ports.ObsidianOpener) *App {
	return &App{
		docs:     docs,
		editor:   ed,
		obsidian: obs,
		state:    ViewGraph,
		graph:    views.NewGraphModel(),
		day:      views.NewDayModel(),
		search:   views.NewSearchModel(),
		help:     views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.load
}

func (a *App) load() tea.Msg {
	ctx := context.Background()
	if b, ok := a.docs.(documentBuilder); ok {
		result, err := b.Execute(ctx)
		if err != nil {
			return views.DocumentErrMsg{Err: err}
		}
		return views.DocumentLoadedMsg{Doc: result.Document, Failures: len(result.Failures)}
	}

	doc, err := a.docs.Load(ctx)
	if err != nil {
		return views.DocumentErrMsg{Err: err}
	}
	return views.DocumentLoadedMsg{Doc: doc}
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.graph.SetSize(msg.Width, msg.Height)
		a.day.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		_, cmd := a.graph.Update(msg)
		return a, cmd

	case views.DocumentLoadedMsg:
		a.doc = msg.Doc
		selected, hadSelection := a.graph.Selected()
		a.graph.SetDocument(msg.Doc, msg.Failures)
		if hadSelection {
			a.graph.Select(selected.Date)
		}
		a.search.SetDocument(msg.Doc)
		if a.state == ViewDay {
			a.day.SetDay(msg.Doc, a.day.Date(), a.selectedRecordID())
		}
		return a, nil

	case views.DocumentErrMsg:
		a.graph.SetLoadError(msg.Err)
		a.state = ViewGraph
		return a, nil

	case views.ReloadMsg:
		return a, a.load

	case views.SwitchToGraphMsg:
		a.state = ViewGraph
		return a, nil

	case views.SwitchToDayMsg:
		a.state = ViewDay
		a.graph.Select(msg.Date)
		a.day.SetDay(a.doc, msg.Date, msg.RecordID)
		return a, nil

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		a.search.Reset()
		return a, a.search.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path, msg.Date)

	case views.OpenObsidianMsg:
		return a, a.openObsidian(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.day.SetMessage(fmt.Sprintf("Editor: %v", msg.err), true)
			return a, nil
		}
		// the note may have changed
		return a, a.load

	case obsidianOpenedMsg:
		if msg.err != nil {
			a.day.SetMessage(fmt.Sprintf("Obsidian: %v", msg.err), true)
		} else {
			a.day.SetMessage("Opened in Obsidian", false)
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewGraph:
		_, cmd = a.graph.Update(msg)
	case ViewDay:
		_, cmd = a.day.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

func (a *App) selectedRecordID() string {
	if r, ok := a.day.Selected(); ok {
		return r.ID
	}
	return ""
}

type editorFinishedMsg struct{ err error }

type obsidianOpenedMsg struct{ err error }

// openEditor opens the note with the cursor on the day's heading
func (a *App) openEditor(path, date string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	line := 0
	if content, err := os.ReadFile(path); err == nil {
		line = application.HeadingLine(string(content), date)
	}

	cmd, err := a.editor.CommandAt(path, line)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (a *App) openObsidian(path string) tea.Cmd {
	if a.obsidian == nil {
		return nil
	}
	return func() tea.Msg {
		return obsidianOpenedMsg{err: a.obsidian.OpenFile(path)}
	}
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewDay:
		return a.day.View()
	case ViewSearch:
		return a.search.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.graph.View()
	}
}

package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vibegraph/internal/adapters/tui/styles"
	"vibegraph/internal/application"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToGraphMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Vibegraph Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Contribution graph of your vibe coding notes"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Graph"))
	b.WriteString("\n")
	b.WriteString(helpLine("h / l / ← / →", "Previous / next week"))
	b.WriteString(helpLine("j / k / ↑ / ↓", "Next / previous day"))
	b.WriteString(helpLine("t", "Jump to today"))
	b.WriteString(helpLine("Enter", "Open the selected day"))
	b.WriteString(helpLine("/", "Search records"))
	b.WriteString(helpLine("r", "Re-parse the notes"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Day"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k", "Select project"))
	b.WriteString(helpLine("PgUp / PgDn", "Scroll the details"))
	b.WriteString(helpLine("c / y", "Copy description / ID"))
	b.WriteString(helpLine("e", "Edit the note at this day"))
	b.WriteString(helpLine("o", "Open the note in Obsidian"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Intensity"))
	b.WriteString("\n  ")
	for level := application.MinIntensity; level <= application.MaxIntensity; level++ {
		b.WriteString(styles.Cell(level))
		b.WriteString(" ")
	}
	b.WriteString(styles.MutedText.Render(" short notes to long sessions with many learnings"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}

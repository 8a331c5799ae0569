package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Contribution levels, empty day first
	Level0 = lipgloss.Color("#1F2937")
	Level1 = lipgloss.Color("#0E4429")
	Level2 = lipgloss.Color("#006D32")
	Level3 = lipgloss.Color("#26A641")
	Level4 = lipgloss.Color("#39D353")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Graph
	CellGlyph = "■"

	CellCursor = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	CellToday = lipgloss.NewStyle().
			Underline(true)

	AxisLabel = lipgloss.NewStyle().
			Foreground(Muted)

	// List rows
	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	RowTitle = lipgloss.NewStyle().
			Bold(true)

	Tag = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#60A5FA")) // Blue

	Cost = lipgloss.NewStyle().
		Foreground(Warning)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Search
	SearchMatch = lipgloss.NewStyle().
			Background(Warning).
			Foreground(Black)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// LevelColor returns the graph color for an intensity level
func LevelColor(level int) lipgloss.Color {
	switch level {
	case 1:
		return Level1
	case 2:
		return Level2
	case 3:
		return Level3
	case 4:
		return Level4
	default:
		return Level0
	}
}

// Cell renders one graph square for an intensity level
func Cell(level int) string {
	return lipgloss.NewStyle().Foreground(LevelColor(level)).Render(CellGlyph)
}

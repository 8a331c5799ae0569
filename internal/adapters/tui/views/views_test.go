package views

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"vibegraph/internal/domain"
)

var testNow = time.Date(2026, 1, 22, 15, 0, 0, 0, time.Local)

func testDocument() *domain.Document {
	mk := func(id, date, title string, intensity int, tools ...string) domain.ActivityRecord {
		return domain.ActivityRecord{
			ID: id, Date: date, Title: title, Intensity: intensity,
			Tools: tools, Stack: []string{"Go"}, Learnings: []string{},
			Description: "Worked on " + title, FilePath: "/vault/Vibing/" + title + ".md",
		}
	}
	return domain.BuildDocument([]domain.ActivityRecord{
		mk("tracker-2026-01-20", "2026-01-20", "Tracker", 2, "Cursor"),
		mk("tracker-2026-01-22", "2026-01-22", "Tracker", 3, "Claude"),
		mk("site", "2026-01-22", "Site", 1, "Cursor"),
	}, testNow)
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m tea.Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func runCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func newGraph() *GraphModel {
	m := NewGraphModel()
	m.Now = func() time.Time { return testNow }
	m.SetDocument(testDocument(), 0)
	return m
}

func TestGraph_StartsOnToday(t *testing.T) {
	m := newGraph()
	cell, ok := m.Selected()
	if !ok || cell.Date != "2026-01-22" {
		t.Fatalf("expected cursor on today, got %+v", cell)
	}
	if cell.Level != 3 {
		t.Errorf("expected level 3 for today, got %d", cell.Level)
	}
}

func TestGraph_Navigation(t *testing.T) {
	m := newGraph()

	m.Update(keyPress("k"))
	m.Update(keyPress("k"))
	if cell, _ := m.Selected(); cell.Date != "2026-01-20" {
		t.Errorf("expected two days back to be 2026-01-20, got %s", cell.Date)
	}

	m.Update(keyPress("h"))
	if cell, _ := m.Selected(); cell.Date != "2026-01-13" {
		t.Errorf("expected previous week 2026-01-13, got %s", cell.Date)
	}

	// cannot move past today
	for range 5 {
		m.Update(keyPress("l"))
	}
	if cell, _ := m.Selected(); cell.Date != "2026-01-22" {
		t.Errorf("expected cursor clamped to today, got %s", cell.Date)
	}

	m.Update(keyPress("h"))
	m.Update(keyPress("t"))
	if cell, _ := m.Selected(); cell.Date != "2026-01-22" {
		t.Errorf("expected t to jump to today, got %s", cell.Date)
	}
}

func TestGraph_EnterOpensDay(t *testing.T) {
	m := newGraph()
	_, cmd := m.Update(keyPress("enter"))
	msg, ok := runCmd(cmd).(SwitchToDayMsg)
	if !ok {
		t.Fatalf("expected SwitchToDayMsg, got %T", runCmd(cmd))
	}
	if msg.Date != "2026-01-22" {
		t.Errorf("expected day 2026-01-22, got %s", msg.Date)
	}
}

func TestGraph_KeysEmitSwitches(t *testing.T) {
	m := newGraph()
	if _, cmd := m.Update(keyPress("/")); runCmd(cmd) != (SwitchToSearchMsg{}) {
		t.Error("expected / to open search")
	}
	if _, cmd := m.Update(keyPress("?")); runCmd(cmd) != (SwitchToHelpMsg{}) {
		t.Error("expected ? to open help")
	}
	if _, cmd := m.Update(keyPress("r")); runCmd(cmd) != (ReloadMsg{}) {
		t.Error("expected r to reload")
	}
}

func TestGraph_View(t *testing.T) {
	m := newGraph()
	out := m.View()

	for _, want := range []string{"Vibe Coding Activity", "3 records on 2 days", "Mon", "Wed", "Fri", "Jan", "Less", "More", "Thu Jan 22, 2026", "2 project(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in view:\n%s", want, out)
		}
	}
}

func TestGraph_NarrowTerminalKeepsCursorVisible(t *testing.T) {
	m := newGraph()
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 30})

	visible := m.visibleWeeks()
	if visible >= m.Calendar().Weeks {
		t.Fatalf("expected a scrolled window, got %d of %d weeks", visible, m.Calendar().Weeks)
	}
	if m.week < m.offset || m.week >= m.offset+visible {
		t.Errorf("cursor week %d outside window [%d, %d)", m.week, m.offset, m.offset+visible)
	}

	for range 20 {
		m.Update(keyPress("h"))
	}
	if m.week < m.offset || m.week >= m.offset+visible {
		t.Errorf("cursor week %d outside window [%d, %d) after scrolling", m.week, m.offset, m.offset+visible)
	}
}

func TestGraph_LoadErrorBeforeFirstDocument(t *testing.T) {
	m := NewGraphModel()
	m.SetLoadError(errors.New("notes folder not found"))
	if out := m.View(); !strings.Contains(out, "notes folder not found") {
		t.Errorf("expected error in view, got:\n%s", out)
	}
}

func TestDay_SelectAndCopy(t *testing.T) {
	m := NewDayModel()
	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}
	m.SetDay(testDocument(), "2026-01-22", "site")

	r, ok := m.Selected()
	if !ok || r.ID != "site" {
		t.Fatalf("expected preselected record site, got %+v", r)
	}

	m.Update(keyPress("k"))
	r, _ = m.Selected()
	if r.ID != "tracker-2026-01-22" {
		t.Errorf("expected previous record, got %s", r.ID)
	}

	m.Update(keyPress("c"))
	if copied != "Worked on Tracker" {
		t.Errorf("expected description copied, got %q", copied)
	}
	m.Update(keyPress("y"))
	if copied != "tracker-2026-01-22" {
		t.Errorf("expected ID copied, got %q", copied)
	}
	if m.Message != "Copied ID" || m.MessageErr {
		t.Errorf("unexpected message %q", m.Message)
	}
}

func TestDay_CopyFailure(t *testing.T) {
	m := NewDayModel()
	m.copy = func(string) error { return errors.New("no clipboard") }
	m.SetDay(testDocument(), "2026-01-20", "")

	m.Update(keyPress("c"))
	if !m.MessageErr || !strings.Contains(m.Message, "no clipboard") {
		t.Errorf("expected copy error message, got %q", m.Message)
	}
}

func TestDay_OpenMessages(t *testing.T) {
	m := NewDayModel()
	m.SetDay(testDocument(), "2026-01-20", "")

	_, cmd := m.Update(keyPress("e"))
	if msg, ok := runCmd(cmd).(OpenEditorMsg); !ok || msg.Path != "/vault/Vibing/Tracker.md" || msg.Date != "2026-01-20" {
		t.Errorf("unexpected editor message %+v", runCmd(cmd))
	}

	_, cmd = m.Update(keyPress("o"))
	if msg, ok := runCmd(cmd).(OpenObsidianMsg); !ok || msg.Path != "/vault/Vibing/Tracker.md" {
		t.Errorf("unexpected obsidian message %+v", runCmd(cmd))
	}

	_, cmd = m.Update(keyPress("esc"))
	if runCmd(cmd) != (SwitchToGraphMsg{}) {
		t.Error("expected esc to return to the graph")
	}
}

func TestDay_View(t *testing.T) {
	m := NewDayModel()
	m.SetSize(100, 40)
	m.SetDay(testDocument(), "2026-01-22", "")

	out := m.View()
	for _, want := range []string{"2026-01-22", "2 project(s)", "Tracker", "Site", "Worked on Tracker"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in view:\n%s", want, out)
		}
	}

	m.SetDay(testDocument(), "2026-01-21", "")
	if out := m.View(); !strings.Contains(out, "No activity on this day") {
		t.Errorf("expected empty day message, got:\n%s", out)
	}
}

func TestSearch_FindsAndOpens(t *testing.T) {
	m := NewSearchModel()
	m.SetDocument(testDocument())

	typeText(m, "s")
	if len(m.Results()) != 0 {
		t.Errorf("expected no results below the minimum query length, got %d", len(m.Results()))
	}

	typeText(m, "ite")
	if len(m.Results()) == 0 || m.Results()[0].Record.ID != "site" {
		t.Fatalf("expected site first, got %+v", m.Results())
	}

	_, cmd := m.Update(keyPress("enter"))
	msg, ok := runCmd(cmd).(SwitchToDayMsg)
	if !ok || msg.Date != "2026-01-22" || msg.RecordID != "site" {
		t.Errorf("unexpected select message %+v", runCmd(cmd))
	}
}

func TestSearch_ResetClearsQuery(t *testing.T) {
	m := NewSearchModel()
	m.SetDocument(testDocument())
	typeText(m, "tracker")
	if len(m.Results()) == 0 {
		t.Fatal("expected results for tracker")
	}

	m.Reset()
	if len(m.Results()) != 0 {
		t.Errorf("expected results cleared, got %d", len(m.Results()))
	}
	if out := m.View(); !strings.Contains(out, "Type at least 2 characters") {
		t.Errorf("expected hint after reset, got:\n%s", out)
	}
}

func TestPaginator(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(5)

	for range 4 {
		p.CursorDown()
	}
	if p.Cursor() != 4 {
		t.Errorf("expected cursor 4, got %d", p.Cursor())
	}
	if start, end := p.Window(); start != 2 || end != 5 {
		t.Errorf("expected window [2,5), got [%d,%d)", start, end)
	}
	if p.CursorDown() {
		t.Error("expected CursorDown to stop at the last item")
	}

	p.SetTotal(2)
	if p.Cursor() != 1 {
		t.Errorf("expected cursor clamped to 1, got %d", p.Cursor())
	}
	if start, _ := p.Window(); start != 1 {
		t.Errorf("expected window to follow cursor, got start %d", start)
	}

	p.Reset(10)
	if p.Cursor() != 0 || p.Hidden() != 7 {
		t.Errorf("expected reset window, got cursor %d hidden %d", p.Cursor(), p.Hidden())
	}
}

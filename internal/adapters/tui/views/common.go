package views

import "vibegraph/internal/application"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages shared between views and the app

// DocumentLoadedMsg carries a freshly built activity document
type DocumentLoadedMsg struct {
	Doc      *application.Document
	Failures int // notes skipped while parsing
}

// DocumentErrMsg reports a failed document load
type DocumentErrMsg struct {
	Err error
}

type SwitchToGraphMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToSearchMsg struct{}

// SwitchToDayMsg opens the day drill-down
type SwitchToDayMsg struct {
	Date     string
	RecordID string // preselected record, may be empty
}

// OpenEditorMsg asks the app to open a note at a day's heading
type OpenEditorMsg struct {
	Path string
	Date string
}

// OpenObsidianMsg asks the app to open a note in Obsidian
type OpenObsidianMsg struct {
	Path string
}

// ReloadMsg asks the app to rebuild the document
type ReloadMsg struct{}

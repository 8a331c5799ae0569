package ports

import "os/exec"

// EditorOpener defines the interface for opening notes in an external editor
type EditorOpener interface {
	// OpenFile opens the note in the user's preferred editor ($EDITOR, then $VISUAL)
	OpenFile(path string) error

	// Command returns an exec.Cmd for opening a note in the editor,
	// for use with bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)

	// CommandAt is like Command but jumps to a 1-based line when the editor
	// supports it
	CommandAt(path string, line int) (*exec.Cmd, error)
}

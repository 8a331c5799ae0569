package editor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"vibegraph/internal/ports"
)

// Opener implements ports.EditorOpener
type Opener struct {
	lookupEnv func(string) string
	lookPath  func(string) (string, error)
}

var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{
		lookupEnv: os.Getenv,
		lookPath:  exec.LookPath,
	}
}

// OpenFile opens a note in the user's preferred editor
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a note in the editor
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	return o.CommandAt(path, 0)
}

// CommandAt is like Command but positions the cursor on line when the
// editor supports it. A line of 0 opens the note at the top.
func (o *Opener) CommandAt(path string, line int) (*exec.Cmd, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, Args(editor, path, line)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// Args builds the editor arguments for opening path at line
func Args(editor, path string, line int) []string {
	if line <= 0 {
		return []string{path}
	}
	switch filepath.Base(editor) {
	case "nvim", "vim", "vi", "nano", "emacs", "micro", "kak":
		return []string{"+" + strconv.Itoa(line), path}
	case "hx", "helix":
		return []string{path + ":" + strconv.Itoa(line)}
	case "code", "codium", "cursor", "windsurf":
		return []string{"--goto", path + ":" + strconv.Itoa(line)}
	}
	return []string{path}
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	if editor := o.lookupEnv("EDITOR"); editor != "" {
		return editor
	}
	if visual := o.lookupEnv("VISUAL"); visual != "" {
		return visual
	}

	for _, editor := range []string{"nvim", "vim", "vi", "nano", "code"} {
		if path, err := o.lookPath(editor); err == nil {
			return path
		}
	}

	return ""
}

package obsidian

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"vibegraph/internal/ports"
)

// Opener implements ports.ObsidianOpener
type Opener struct {
	vaultPath string
	vaultName string
	run       func(*exec.Cmd) error
}

var _ ports.ObsidianOpener = (*Opener)(nil)

// NewOpener creates a new Obsidian opener for the given vault path
func NewOpener(vaultPath string) *Opener {
	return &Opener{
		vaultPath: vaultPath,
		vaultName: filepath.Base(vaultPath),
		run:       (*exec.Cmd).Run,
	}
}

// OpenFile opens a note in Obsidian using the obsidian:// URI scheme
func (o *Opener) OpenFile(filePath string) error {
	uri, err := o.BuildURI(filePath)
	if err != nil {
		return err
	}
	cmd, err := launchCommand(runtime.GOOS, uri)
	if err != nil {
		return err
	}
	return o.run(cmd)
}

// BuildURI constructs the obsidian:// URI for a note inside the vault.
// Notes read from a fallback folder outside the vault have no URI.
func (o *Opener) BuildURI(filePath string) (string, error) {
	relPath, err := filepath.Rel(o.vaultPath, filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get relative path: %w", err)
	}

	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("note is outside the vault: %s", filePath)
	}

	// Obsidian expects forward slashes and no extension
	relPath = strings.TrimSuffix(filepath.ToSlash(relPath), ".md")

	return fmt.Sprintf("obsidian://open?vault=%s&file=%s",
		escape(o.vaultName),
		escape(relPath),
	), nil
}

// escape percent-encodes a query value with %20 for spaces, which
// Obsidian requires
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func launchCommand(goos, uri string) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.Command("open", uri), nil
	case "linux":
		return exec.Command("xdg-open", uri), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", uri), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

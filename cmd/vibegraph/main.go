package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"vibegraph/internal/adapters/editor"
	"vibegraph/internal/adapters/filesystem"
	"vibegraph/internal/adapters/obsidian"
	"vibegraph/internal/adapters/tui"
	"vibegraph/internal/config"
	"vibegraph/internal/logging"
	"vibegraph/internal/ports"
	"vibegraph/internal/session"
)

func main() {
	configFlag := flag.String("config", "", "path to the config file")
	vaultFlag := flag.String("vault", "", "path to the Obsidian vault")
	fromOutput := flag.Bool("from-output", false, "show the generated JSON instead of parsing notes")
	logFile := flag.String("log-file", "", "write logs to this file")
	flag.Parse()

	if err := run(*configFlag, *vaultFlag, *logFile, *fromOutput); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, vaultPath, logFile string, fromOutput bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if vaultPath != "" {
		cfg.Vault.Path = vaultPath
	}

	// the alternate screen owns the terminal, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.New(logOut, cfg.Log.Level)

	var docs ports.DocumentReader
	if fromOutput {
		docs = filesystem.NewStore(session.OutputPaths(cfg))
	} else {
		s, err := session.Open(cfg, logger)
		if err != nil {
			return err
		}
		defer s.Close()
		docs = s.Builder()
	}

	app := tui.NewApp(docs, editor.NewOpener(), obsidian.NewOpener(cfg.VaultPath()))

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"vibegraph/internal/adapters/filesystem"
	"vibegraph/internal/config"
	"vibegraph/internal/logging"
	"vibegraph/internal/ports"
	"vibegraph/internal/session"
)

var (
	configPath  string
	vaultPath   string
	notesFolder string
	outputPaths []string
	noCache     bool
	logLevel    string
	fromOutput  bool

	cfg    *config.Config
	logger *slog.Logger
	sess   *session.Session
)

var rootCmd = &cobra.Command{
	Use:   "vibegraph-cli",
	Short: "Turn vibe coding notes into a contribution graph",
	Long: `vibegraph-cli parses the vibe coding notes in an Obsidian vault folder
into dated activity records and writes the activity data JSON behind the
contribution graph.

It also answers questions about the parsed activity: which days were
active, what was built on a given day, which tools were used most.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlags(cmd, loaded)
		cfg = loaded
		logger = logging.New(os.Stderr, cfg.Log.Level)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeSession()
	},
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		_ = closeSession()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/vibegraph/config.yaml)")
	flags.StringVarP(&vaultPath, "vault", "v", "", "path to the Obsidian vault")
	flags.StringVarP(&notesFolder, "folder", "f", "", "notes folder inside the vault")
	flags.StringSliceVarP(&outputPaths, "output", "o", nil, "activity data JSON destinations")
	flags.BoolVar(&noCache, "no-cache", false, "parse every note instead of reusing cached records")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&fromOutput, "from-output", false, "answer queries from the generated JSON instead of parsing notes")
}

// applyFlags lets explicitly set flags win over the config file and env
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("vault") {
		c.Vault.Path = vaultPath
	}
	if flags.Changed("folder") {
		c.Vault.NotesFolder = notesFolder
	}
	if flags.Changed("output") {
		c.Output.Paths = outputPaths
	}
	if noCache {
		c.Cache.Enabled = false
	}
	if flags.Changed("log-level") {
		c.Log.Level = logLevel
	}
}

// openSession resolves the notes folder once per invocation
func openSession() (*session.Session, error) {
	if sess != nil {
		return sess, nil
	}
	s, err := session.Open(cfg, logger)
	if err != nil {
		return nil, err
	}
	sess = s
	return sess, nil
}

func closeSession() error {
	if sess == nil {
		return nil
	}
	err := sess.Close()
	sess = nil
	return err
}

// documents returns the activity document source for query commands
func documents() (ports.DocumentReader, error) {
	if fromOutput {
		return filesystem.NewStore(session.OutputPaths(cfg)), nil
	}
	s, err := openSession()
	if err != nil {
		return nil, err
	}
	return s.Builder(), nil
}

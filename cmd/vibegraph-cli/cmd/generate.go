package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"vibegraph/internal/application/commands"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Parse the notes and write the activity data",
	Long: `Parse every note in the notes folder and write the activity data JSON
to each output path.

Notes that fail to parse are reported and skipped; the rest of the batch
still runs. Nothing is written when the notes folder cannot be found.

Examples:
  vibegraph-cli generate
  vibegraph-cli generate --vault ~/Obsidian --folder Projects
  vibegraph-cli generate -o public/data.json --no-cache`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		result, err := s.Generator().Execute(cmd.Context())
		if err != nil {
			return err
		}

		printGenerateResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), result)
		return nil
	},
}

func printGenerateResult(out, errOut io.Writer, result *commands.GenerateResult) {
	for _, f := range result.Failures {
		fmt.Fprintf(errOut, "skipped %s\n", f.Error())
	}

	stats := result.Stats
	fmt.Fprintf(out, "Parsed %d notes (%d cached, %d skipped) in %s\n",
		stats.NotesScanned, stats.NotesCached, stats.NotesFailed, stats.Duration.Round(time.Millisecond))

	summary := result.Summary
	fmt.Fprintf(out, "Generated %d records over %d days (%s to %s)\n",
		summary.TotalRecords, summary.ActiveDays, summary.DateRange.Start, summary.DateRange.End)
	if len(summary.Tools) > 0 {
		fmt.Fprintf(out, "Tools: %s\n", strings.Join(summary.Tools, ", "))
	}
	if len(summary.Stack) > 0 {
		fmt.Fprintf(out, "Stack: %s\n", strings.Join(summary.Stack, ", "))
	}
	for _, d := range result.Destinations {
		fmt.Fprintf(out, "Wrote %s\n", d)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

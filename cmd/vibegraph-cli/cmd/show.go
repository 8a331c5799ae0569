package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"vibegraph/internal/application"
	"vibegraph/internal/application/commands"
	"vibegraph/internal/domain"
)

var showRecordID string

var showCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show what was built on a day",
	Long: `Show every activity record of a day in full, or a single record by ID.

Examples:
  vibegraph-cli show 2026-01-22
  vibegraph-cli show --id activity-tracker-2026-01-22`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if showRecordID == "" && len(args) == 0 {
			return fmt.Errorf("a date or --id is required")
		}

		docs, err := documents()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if showRecordID != "" {
			r, err := commands.NewShowRecordCommand(docs, showRecordID).Execute(cmd.Context())
			if err != nil {
				return err
			}
			printRecord(out, *r)
			return nil
		}

		detail, err := commands.NewShowDayCommand(docs, args[0]).Execute(cmd.Context())
		if errors.Is(err, application.ErrNotFound) {
			fmt.Fprintf(out, "No activity on %s\n", args[0])
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s  intensity %d  %d project(s)\n\n",
			detail.Date, detail.Summary.Intensity, detail.Summary.ProjectCount)
		for i, r := range detail.Records {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printRecord(out, r)
		}
		return nil
	},
}

func printRecord(out io.Writer, r domain.ActivityRecord) {
	fmt.Fprintf(out, "%s [%s]\n", r.Title, r.ID)
	fmt.Fprintf(out, "  date:      %s\n", r.Date)
	fmt.Fprintf(out, "  intensity: %d\n", r.Intensity)
	if len(r.Tools) > 0 {
		fmt.Fprintf(out, "  tools:     %s\n", strings.Join(r.Tools, ", "))
	}
	if len(r.Stack) > 0 {
		fmt.Fprintf(out, "  stack:     %s\n", strings.Join(r.Stack, ", "))
	}
	if r.HasCost() {
		fmt.Fprintf(out, "  cost:      %s\n", r.CostString())
	}
	if r.Description != "" {
		fmt.Fprintln(out)
		for _, line := range strings.Split(r.Description, "\n") {
			fmt.Fprintf(out, "  %s\n", line)
		}
	}
	if len(r.Learnings) > 0 {
		fmt.Fprintln(out, "\n  learnings:")
		for _, l := range r.Learnings {
			fmt.Fprintf(out, "    - %s\n", l)
		}
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showRecordID, "id", "", "show a single record by ID")
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vibegraph/internal/application/commands"
)

var (
	daysFrom string
	daysTo   string
)

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List active days",
	Long: `List every day with at least one activity record, oldest first,
with the day's intensity, project count and tools.

Examples:
  vibegraph-cli days
  vibegraph-cli days --from 2026-01-01
  vibegraph-cli days --from 2026-01-01 --to 2026-01-31`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := documents()
		if err != nil {
			return err
		}

		days, err := commands.NewListDaysCommand(docs, daysFrom, daysTo).Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(days) == 0 {
			fmt.Fprintln(out, "No active days")
			return nil
		}
		for _, d := range days {
			fmt.Fprintf(out, "%s  %d  %2d  %s\n", d.Date, d.Intensity, d.ProjectCount, strings.Join(d.Tools, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(daysCmd)
	daysCmd.Flags().StringVar(&daysFrom, "from", "", "first day to include (YYYY-MM-DD)")
	daysCmd.Flags().StringVar(&daysTo, "to", "", "last day to include (YYYY-MM-DD)")
}

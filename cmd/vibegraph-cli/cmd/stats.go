package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vibegraph/internal/application/commands"
)

var statsTop int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show activity statistics",
	Long: `Show streaks, the busiest day, total detected cost and the most used
tools and stack entries.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := documents()
		if err != nil {
			return err
		}

		stats, err := commands.NewStatsCommand(docs).Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Records:        %d\n", stats.TotalRecords)
		fmt.Fprintf(out, "Active days:    %d\n", stats.ActiveDays)
		fmt.Fprintf(out, "Current streak: %d\n", stats.CurrentStreak)
		fmt.Fprintf(out, "Longest streak: %d\n", stats.LongestStreak)
		if stats.BusiestDay != "" {
			fmt.Fprintf(out, "Busiest day:    %s (%d)\n", stats.BusiestDay, stats.BusiestCount)
		}
		if stats.TotalCost > 0 {
			fmt.Fprintf(out, "Total cost:     $%d\n", stats.TotalCost)
		}

		printCounts(cmd, "Tools", stats.Tools)
		printCounts(cmd, "Stack", stats.Stack)
		return nil
	},
}

func printCounts(cmd *cobra.Command, label string, counts []commands.Count) {
	if len(counts) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s:\n", label)
	for i, c := range counts {
		if statsTop > 0 && i == statsTop {
			break
		}
		fmt.Fprintf(out, "  %-20s %d\n", c.Name, c.Count)
	}
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntVar(&statsTop, "top", 5, "tools and stack entries to show (0 for all)")
}

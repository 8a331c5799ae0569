package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vibegraph/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search activity records",
	Long: `Search records by title, tool and stack (fuzzy) and by description
and learnings (substring).

Results are ranked by relevance.

Examples:
  vibegraph-cli search tracker
  vibegraph-cli search "sqlite cache"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := documents()
		if err != nil {
			return err
		}

		results, err := commands.NewSearchCommand(docs, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No results found")
			return nil
		}
		for _, r := range results {
			fmt.Fprintf(out, "%s  %s  %s\n", r.Record.Date, r.Record.ID, r.MatchedText)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

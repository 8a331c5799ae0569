package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vibegraph/internal/application/commands"
)

var (
	projectsLimit int
	projectsTool  string
	projectsStack string
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List recent activity records",
	Long: `List activity records newest first, optionally filtered by tool or
stack entry (case-insensitive).

Examples:
  vibegraph-cli projects
  vibegraph-cli projects --limit 0 --tool Cursor
  vibegraph-cli projects --stack Go`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := documents()
		if err != nil {
			return err
		}

		listCmd := commands.NewListProjectsCommand(docs, projectsLimit)
		listCmd.Tool = projectsTool
		listCmd.Stack = projectsStack

		records, err := listCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No records")
			return nil
		}
		for _, r := range records {
			fmt.Fprintf(out, "%s  %-40s %s\n", r.Date, r.ID, strings.Join(r.Tools, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.Flags().IntVarP(&projectsLimit, "limit", "n", 10, "maximum records to list (0 for all)")
	projectsCmd.Flags().StringVar(&projectsTool, "tool", "", "only records using this tool")
	projectsCmd.Flags().StringVar(&projectsStack, "stack", "", "only records using this stack entry")
}

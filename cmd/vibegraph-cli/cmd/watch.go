package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vibegraph/internal/adapters/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the activity data whenever a note changes",
	Long: `Generate once, then watch the notes folder and regenerate after every
burst of note edits until interrupted.

Failed regenerations are logged and watching continues.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		gen := s.Generator()
		out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

		regenerate := func(ctx context.Context) error {
			result, err := gen.Execute(ctx)
			if err != nil {
				return err
			}
			printGenerateResult(out, errOut, result)
			return nil
		}

		if err := regenerate(cmd.Context()); err != nil {
			return err
		}

		w, err := watcher.New(s.Root, logger)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", s.Root, err)
		}
		fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", s.Root)
		return w.Run(cmd.Context(), regenerate)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

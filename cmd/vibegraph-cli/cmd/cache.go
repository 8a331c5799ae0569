package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vibegraph/internal/adapters/filesystem"
	"vibegraph/internal/adapters/sqlite"
	"vibegraph/internal/config"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the parsed record cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every cached parse result",
	Long: `Empty the record cache for the notes folder so the next run parses
every note again. The cache is rebuilt automatically by generate.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := filesystem.ResolveRoot(cfg.NotesRoot(), cfg.FallbackDirs())
		if err != nil {
			return err
		}

		cache := sqlite.NewCache(config.ExpandHome(cfg.Cache.Path))
		if err := cache.Open(root); err != nil {
			return err
		}
		defer cache.Close()

		if err := cache.Clear(); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s\n", cache.Path())
		return nil
	},
}

var cachePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the cache database path for the notes folder",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ExpandHome(cfg.Cache.Path)
		if path == "" {
			root, err := filesystem.ResolveRoot(cfg.NotesRoot(), cfg.FallbackDirs())
			if err != nil {
				return err
			}
			path = sqlite.DatabasePath(root)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cachePathCmd)
}

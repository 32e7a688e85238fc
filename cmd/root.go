package cmd

import (
	"github.com/spf13/cobra"

	"github.com/roeland/learntrack/internal/catalog"
	"github.com/roeland/learntrack/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "learntrack",
	Short: "Track your course progress from the terminal",
	Long:  "Learntrack — terminal app for tracking video and quiz progress across courses, with points, levels, and achievements.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNTRACK_DB env var)")
	rootCmd.PersistentFlags().String("data", "", "Path to catalog directory (overrides LEARNTRACK_DATA env var)")

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LEARNTRACK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveProvider returns the catalog provider: an on-disk catalog when the
// --data flag or a data directory is present, the embedded one otherwise.
func resolveProvider(cmd *cobra.Command) catalog.Provider {
	if dir, _ := cmd.Flags().GetString("data"); dir != "" {
		return catalog.NewFileProvider(dir)
	}
	if dir := catalog.DefaultDataDir(); dir != "" {
		return catalog.NewFileProvider(dir)
	}
	return catalog.NewEmbeddedProvider()
}

package cmd

import (
	"github.com/dmoretti/wordflow/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wordflow",
	Short: "Spaced-repetition IELTS vocabulary trainer",
	Long:  "Wordflow — terminal flashcards that schedule IELTS vocabulary with spaced repetition.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORDFLOW_DB env var)")
	rootCmd.PersistentFlags().String("deck", "", "Start with this deck selected (deck id)")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(decksCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WORDFLOW_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

package cmd

import (
	"github.com/abhisek/promptdojo/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "promptdojo",
	Short: "Interactive prompt-writing trainer",
	Long:  "Prompt Dojo — terminal app that trains prompt-writing through compare quizzes, authoring challenges, and free-form critique.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PROMPTDOJO_DB env var)")

	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PROMPTDOJO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

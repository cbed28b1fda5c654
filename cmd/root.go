package cmd

import (
	"github.com/abhisek/proteinlab/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "proteinlab",
	Short: "Interactive protein biology lab",
	Long: `ProteinLab: an interactive terminal guide to proteins for IB and AP Biology
students. Build amino acids, form peptide bonds, fold a polypeptide into
hemoglobin and test yourself with AI-generated quizzes.

AI features read one of GEMINI_API_KEY (or API_KEY), OPENAI_API_KEY,
ANTHROPIC_API_KEY or OPENROUTER_API_KEY. Without a key the quiz serves a
built-in question set and the tutor stays offline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, appFlags{})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PROTEINLAB_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PROTEINLAB_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

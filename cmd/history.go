package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/proteinlab/internal/quiz"
	"github.com/abhisek/proteinlab/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past quiz scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		results, err := s.EventRepo().QueryQuizResults(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query quiz results: %w", err)
		}

		if len(results) == 0 {
			fmt.Println("No quizzes recorded yet.")
			return nil
		}

		fmt.Printf("%-16s  %-24s  %-4s  %-7s  %-5s  %s\n",
			"Date", "Topic", "Exam", "Score", "Pct", "Source")
		fmt.Println(strings.Repeat("─", 76))

		for _, r := range results {
			pct := 0
			if r.Total > 0 {
				pct = r.Score * 100 / r.Total
			}
			source := "AI"
			if r.Source == string(quiz.SourceFallback) {
				source = "built-in"
			}
			fmt.Printf("%-16s  %-24s  %-4s  %-7s  %4d%%  %s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04"),
				truncate(r.Topic, 24),
				r.Difficulty,
				fmt.Sprintf("%d/%d", r.Score, r.Total),
				pct,
				source,
			)
		}
		return nil
	},
}

// openStore opens the database selected by --db or the environment.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of quizzes to show")
}

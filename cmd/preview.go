package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/proteinlab/internal/llm"
	"github.com/abhisek/proteinlab/internal/logger"
	"github.com/abhisek/proteinlab/internal/quiz"
	"github.com/abhisek/proteinlab/internal/store"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview AI-generated quiz questions (no database)",
	Long: `Generate a quiz for a topic and answer it on the command line.

Nothing is recorded: this is a tool for checking question quality. The
request is tagged with the "preview" purpose.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringP("topic", "t", quiz.DefaultTopic, "Quiz topic")
	previewCmd.Flags().StringP("difficulty", "d", string(quiz.DifficultyIB), "Quiz syllabus: IB or AP")
}

func runPreview(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	diffVal, _ := cmd.Flags().GetString("difficulty")
	level, _ := cmd.Flags().GetString("log-level")

	difficulty, err := quiz.ParseDifficulty(diffVal)
	if err != nil {
		return err
	}

	log := logger.Setup(level, "pretty", cmd.ErrOrStderr())
	ctx := llm.WithPurpose(cmd.Context(), llm.PurposePreview)

	provider, _, err := llm.NewProviderFromEnv(ctx, store.NopEventRepo{}, log)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Topic: %s (%s)\nGenerating questions...\n\n", topic, difficulty)

	gen := quiz.NewGenerator(provider, quiz.DefaultConfig())
	questions, err := gen.Generate(ctx, topic, difficulty)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	correct := runPreviewQuiz(questions, cmd.InOrStdin(), out)
	fmt.Fprintf(out, "── Summary: %d/%d correct ──\n", correct, len(questions))
	return nil
}

// runPreviewQuiz asks each question on in and returns the number answered
// correctly. It stops early when input closes.
func runPreviewQuiz(questions []quiz.Question, in io.Reader, out io.Writer) int {
	scanner := bufio.NewScanner(in)
	var correct int

	for i, q := range questions {
		fmt.Fprintf(out, "── Question %d/%d ──\n%s\n", i+1, len(questions), q.Question)
		for j, opt := range q.Options {
			fmt.Fprintf(out, "  %c) %s\n", 'A'+j, opt)
		}

		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		choice, ok := parseChoice(scanner.Text())
		switch {
		case !ok:
			fmt.Fprintln(out, "(skipped)")
		case q.IsCorrect(choice):
			correct++
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		default:
			fmt.Fprintf(out, "\033[31m✗ Wrong.\033[0m Answer: %c) %s\n",
				'A'+q.CorrectAnswer, q.Options[q.CorrectAnswer])
		}

		if q.Explanation != "" {
			fmt.Fprintf(out, "Explanation: %s\n", q.Explanation)
		}
		fmt.Fprintln(out)
	}
	return correct
}

// parseChoice accepts a letter a-d or a number 1-4.
func parseChoice(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 1 {
		return 0, false
	}
	switch c := s[0]; {
	case c >= 'a' && c < 'a'+quiz.OptionCount:
		return int(c - 'a'), true
	case c >= '1' && c < '1'+quiz.OptionCount:
		return int(c - '1'), true
	}
	return 0, false
}

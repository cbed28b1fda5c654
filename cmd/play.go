package cmd

import (
	"github.com/abhisek/proteinlab/internal/quiz"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the lab with quiz options",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		skip, _ := cmd.Flags().GetBool("skip-intro")
		return runApp(cmd, appFlags{
			topic:       topic,
			difficulty:  difficulty,
			skipWelcome: skip,
		})
	},
}

func init() {
	playCmd.Flags().StringP("topic", "t", quiz.DefaultTopic, "Quiz topic")
	playCmd.Flags().StringP("difficulty", "d", string(quiz.DifficultyIB), "Quiz syllabus: IB or AP")
	playCmd.Flags().Bool("skip-intro", false, "Skip the welcome animation")
}

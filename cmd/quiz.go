package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roeland/learntrack/internal/catalog"
	"github.com/roeland/learntrack/internal/progress"
)

var quizScore int

var quizCmd = &cobra.Command{
	Use:   "quiz <course> <chapter> <quiz> --score <0-100>",
	Short: "Record a quiz attempt",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if quizScore < 0 || quizScore > 100 {
			return fmt.Errorf("score must be between 0 and 100, got %d", quizScore)
		}

		st, cat, engine, err := openEnvironment(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		courseID, chapterID, quizID := args[0], args[1], args[2]

		quiz, ok := cat.Quiz(quizID)
		if !ok {
			return fmt.Errorf("unknown quiz %q", quizID)
		}
		if !engine.IsQuizUnlocked(ctx, quiz) {
			return fmt.Errorf("quiz %q is locked; finish the required videos first", quizID)
		}

		key := progress.QuizKey(courseID, chapterID, quizID)
		prev, hadPrev := engine.Record(ctx).Quiz(key)

		comp := engine.CompleteQuiz(ctx, courseID, chapterID, quizID, quizScore)

		switch {
		case !hadPrev:
			fmt.Printf("Quiz %s: scored %d%%  +%d pts\n", quizID, quizScore, comp.PointsEarned)
		case quizScore > prev.Score:
			fmt.Printf("Quiz %s: scored %d%%, new best (was %d%%)\n", quizID, quizScore, prev.Score)
		default:
			fmt.Printf("Quiz %s: scored %d%%, best remains %d%%\n", quizID, quizScore, prev.Score)
		}
		if quizScore >= quiz.PassingScore {
			fmt.Println("Passed!")
		}
		printEarned(comp.NewlyEarned)
		printStanding(comp.Record)
		return nil
	},
}

func init() {
	quizCmd.Flags().IntVar(&quizScore, "score", -1, "Score achieved on the quiz (0-100)")
	_ = quizCmd.MarkFlagRequired("score")
}

// printEarned lists achievements unlocked by an operation.
func printEarned(earned []catalog.Achievement) {
	for _, a := range earned {
		fmt.Printf("%s Achievement unlocked: %s (+%d pts)\n", a.Icon, a.Title, a.Points)
	}
}

// printStanding prints the running level and point total.
func printStanding(rec progress.Record) {
	fmt.Printf("Level %d · %d pts\n", rec.Level, rec.Points)
}

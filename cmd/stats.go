package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, engine, err := openEnvironment(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		summary := engine.Stats(ctx)
		rec := engine.Record(ctx)

		fmt.Printf("Level:        %d\n", rec.Level)
		fmt.Printf("Points:       %d\n", summary.TotalPoints)
		fmt.Printf("Videos:       %d/%d (%d%%)\n", summary.WatchedVideos, summary.TotalVideos, summary.PercentComplete)
		fmt.Printf("Quizzes:      %d passed\n", rec.Stats.TotalQuizzesPassed)
		fmt.Printf("Achievements: %d\n", summary.AchievementsUnlocked)
		if !rec.LastActive.IsZero() {
			fmt.Printf("Last active:  %s\n", rec.LastActive.Format("Jan 02, 2006 15:04"))
		}
		return nil
	},
}

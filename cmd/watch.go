package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <course> <chapter> <video>",
	Short: "Mark a video as watched",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, engine, err := openEnvironment(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		courseID, chapterID, videoID := args[0], args[1], args[2]

		if !engine.IsVideoUnlocked(ctx, courseID, chapterID, videoID) {
			return fmt.Errorf("video %s/%s/%s is locked; watch the previous video first", courseID, chapterID, videoID)
		}

		already := engine.IsVideoComplete(ctx, courseID, chapterID, videoID)
		comp := engine.CompleteVideo(ctx, courseID, chapterID, videoID)

		if already {
			fmt.Printf("Already watched %s/%s/%s\n", courseID, chapterID, videoID)
		} else {
			fmt.Printf("Watched %s/%s/%s  +%d pts\n", courseID, chapterID, videoID, comp.PointsEarned)
		}
		printEarned(comp.NewlyEarned)
		printStanding(comp.Record)
		return nil
	},
}

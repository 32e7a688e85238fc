package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements and their earned state",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cat, engine, err := openEnvironment(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rec := engine.Record(cmd.Context())
		for _, a := range cat.Achievements() {
			mark := " "
			if rec.AchievementEarned(a.ID) {
				mark = "✓"
			}
			fmt.Printf("[%s] %s %-24s +%-4d %s\n", mark, a.Icon, a.Title, a.Points, a.Description)
		}
		return nil
	},
}

package progress

import (
	"strings"

	"github.com/roeland/learntrack/internal/catalog"
)

// evaluateLocked walks achievement definitions in catalog order and unlocks
// any whose condition the current record satisfies. Unlocking appends the ID
// and adds the achievement's points exactly once; earned achievements are
// never revisited. The caller persists.
func (e *Engine) evaluateLocked() []catalog.Achievement {
	var newly []catalog.Achievement
	for _, a := range e.catalog.Achievements() {
		if e.record.AchievementEarned(a.ID) {
			continue
		}
		if !conditionMet(e.catalog, e.record, a.Condition) {
			continue
		}
		e.record.EarnedAchievements = append(e.record.EarnedAchievements, a.ID)
		e.record.Points += a.Points
		newly = append(newly, a)
	}
	return newly
}

// conditionMet decides a single achievement condition against the record.
// The switch is exhaustive over the closed Condition set.
func conditionMet(cat *catalog.Catalog, rec Record, cond catalog.Condition) bool {
	switch c := cond.(type) {
	case catalog.VideosWatched:
		watched := rec.Stats.TotalVideosWatched
		if watched == 0 {
			// Stats may lag on records written before the counters existed.
			watched = len(rec.CompletedVideos)
		}
		return watched >= c.Count

	case catalog.CourseComplete:
		// An unknown course can never be completed.
		if _, ok := cat.Course(c.CourseID); !ok {
			return false
		}
		total := cat.CourseVideoCount(c.CourseID)
		completed := 0
		for _, key := range rec.CompletedVideos {
			if strings.HasPrefix(key, c.CourseID) {
				completed++
			}
		}
		return completed >= total

	default:
		return false
	}
}

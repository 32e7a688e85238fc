package progress

import (
	"context"
	"math"
)

// Summary aggregates catalog-wide progress for display.
type Summary struct {
	TotalVideos          int
	WatchedVideos        int
	PercentComplete      int
	TotalPoints          int
	AchievementsUnlocked int
}

// Stats computes the progress summary. Pure read; the record is not touched.
func (e *Engine) Stats(ctx context.Context) Summary {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.loadLocked(ctx)

	total := e.catalog.TotalVideos()
	watched := len(e.record.CompletedVideos)

	percent := 0
	if total > 0 {
		percent = int(math.Round(float64(watched) / float64(total) * 100))
	}

	return Summary{
		TotalVideos:          total,
		WatchedVideos:        watched,
		PercentComplete:      percent,
		TotalPoints:          e.record.Points,
		AchievementsUnlocked: len(e.record.EarnedAchievements),
	}
}

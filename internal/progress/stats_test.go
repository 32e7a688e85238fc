package progress

import (
	"context"
	"fmt"
	"testing"

	"github.com/roeland/learntrack/internal/catalog"
)

// statsCatalog builds a single-chapter catalog with n videos.
func statsCatalog(n int) *catalog.Catalog {
	videos := make([]catalog.Video, n)
	for i := range videos {
		videos[i] = catalog.Video{ID: fmt.Sprintf("v%d", i+1), Points: 10}
	}
	courses := []catalog.Course{
		{ID: "c1", Chapters: []catalog.Chapter{{ID: "ch1", Videos: videos}}},
	}
	return catalog.New(courses, nil, nil)
}

func TestStatsPercentComplete(t *testing.T) {
	tests := []struct {
		name        string
		totalVideos int
		watched     int
		wantPercent int
	}{
		{name: "empty record", totalVideos: 10, watched: 0, wantPercent: 0},
		{name: "3 of 10", totalVideos: 10, watched: 3, wantPercent: 30},
		{name: "3 of 8 rounds half up", totalVideos: 8, watched: 3, wantPercent: 38},
		{name: "1 of 8 rounds down", totalVideos: 8, watched: 1, wantPercent: 13},
		{name: "all watched", totalVideos: 4, watched: 4, wantPercent: 100},
		{name: "empty catalog", totalVideos: 0, watched: 0, wantPercent: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored := DefaultRecord()
			for i := 0; i < tt.watched; i++ {
				stored.CompletedVideos = append(stored.CompletedVideos, fmt.Sprintf("c1-ch1-v%d", i+1))
			}
			gw := &mockGateway{stored: &stored}

			e := NewEngine(statsCatalog(tt.totalVideos), gw)
			got := e.Stats(context.Background())

			if got.PercentComplete != tt.wantPercent {
				t.Errorf("percentComplete = %d, want %d", got.PercentComplete, tt.wantPercent)
			}
			if got.WatchedVideos != tt.watched {
				t.Errorf("watchedVideos = %d, want %d", got.WatchedVideos, tt.watched)
			}
			if got.TotalVideos != tt.totalVideos {
				t.Errorf("totalVideos = %d, want %d", got.TotalVideos, tt.totalVideos)
			}
		})
	}
}

func TestStatsReflectsPointsAndAchievements(t *testing.T) {
	stored := DefaultRecord()
	stored.Points = 120
	stored.EarnedAchievements = []string{"a", "b"}
	gw := &mockGateway{stored: &stored}

	e := newTestEngine(t, gw)
	got := e.Stats(context.Background())

	if got.TotalPoints != 120 {
		t.Errorf("totalPoints = %d, want 120", got.TotalPoints)
	}
	if got.AchievementsUnlocked != 2 {
		t.Errorf("achievementsUnlocked = %d, want 2", got.AchievementsUnlocked)
	}
}

func TestStatsIsPureRead(t *testing.T) {
	gw := &mockGateway{}
	e := newTestEngine(t, gw)

	e.Stats(context.Background())
	if gw.saveCalls != 0 {
		t.Errorf("stats must not persist, got %d saves", gw.saveCalls)
	}
}

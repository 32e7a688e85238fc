package progress

import (
	"testing"
	"time"
)

func TestLevelForPoints(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{points: 0, want: 1},
		{points: 99, want: 1},
		{points: 100, want: 2},
		{points: 105, want: 2},
		{points: 250, want: 3},
		{points: -5, want: 1},
	}

	for _, tt := range tests {
		if got := LevelForPoints(tt.points); got != tt.want {
			t.Errorf("LevelForPoints(%d) = %d, want %d", tt.points, got, tt.want)
		}
	}
}

func TestCompletionKeys(t *testing.T) {
	if got := VideoKey("c1", "ch1", "v1"); got != "c1-ch1-v1" {
		t.Errorf("VideoKey = %q", got)
	}
	if got := QuizKey("c1", "ch1", "q1"); got != "c1-ch1-q1" {
		t.Errorf("QuizKey = %q", got)
	}
}

func TestDefaultRecord(t *testing.T) {
	rec := DefaultRecord()
	if rec.Level != 1 {
		t.Errorf("default level = %d, want 1", rec.Level)
	}
	if rec.Points != 0 {
		t.Errorf("default points = %d, want 0", rec.Points)
	}
	if rec.CompletedVideos == nil || rec.CompletedQuizzes == nil || rec.EarnedAchievements == nil {
		t.Error("default collections must be non-nil so they serialize as empty arrays")
	}
}

func TestRecordCloneIsIndependent(t *testing.T) {
	rec := DefaultRecord()
	rec.CompletedVideos = []string{"a"}
	rec.CompletedQuizzes = []QuizResult{{QuizKey: "q", Score: 50, CompletedAt: time.Now()}}
	rec.EarnedAchievements = []string{"x"}

	c := rec.Clone()
	c.CompletedVideos[0] = "changed"
	c.CompletedQuizzes[0].Score = 99
	c.EarnedAchievements[0] = "changed"

	if rec.CompletedVideos[0] != "a" || rec.CompletedQuizzes[0].Score != 50 || rec.EarnedAchievements[0] != "x" {
		t.Error("mutating a clone leaked into the original")
	}
}

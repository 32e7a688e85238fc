package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/roeland/learntrack/internal/catalog"
)

// mockGateway implements Gateway in memory.
type mockGateway struct {
	stored    *Record
	loadErr   error
	saveErr   error
	saveCalls int
}

func (m *mockGateway) Load(_ context.Context) (Record, error) {
	if m.loadErr != nil {
		return Record{}, m.loadErr
	}
	if m.stored == nil {
		return DefaultRecord(), nil
	}
	return m.stored.Clone(), nil
}

func (m *mockGateway) Save(_ context.Context, rec Record) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	c := rec.Clone()
	m.stored = &c
	return nil
}

func (m *mockGateway) Clear(_ context.Context) error {
	m.stored = nil
	return nil
}

func testCatalog() *catalog.Catalog {
	courses := []catalog.Course{
		{
			ID:    "c1",
			Title: "Course One",
			Chapters: []catalog.Chapter{
				{
					ID: "ch1",
					Videos: []catalog.Video{
						{ID: "v1", Points: 10},
						{ID: "v2", Points: 10},
						{ID: "v3", Points: 15},
					},
				},
				{
					ID: "ch2",
					Videos: []catalog.Video{
						{ID: "v4", Points: 20},
					},
				},
			},
		},
		{
			ID:    "c2",
			Title: "Course Two",
			Chapters: []catalog.Chapter{
				{
					ID: "ch1",
					Videos: []catalog.Video{
						{ID: "v1", Points: 5},
					},
				},
			},
		},
	}
	quizzes := []catalog.Quiz{
		{ID: "q1", CourseID: "c1", ChapterID: "ch1", Unlock: catalog.UnlockAllVideos{}, Points: 20, PassingScore: 70},
		{ID: "q2", CourseID: "c1", ChapterID: "ch2", Unlock: catalog.UnlockSpecificVideo{VideoID: "v4"}, Points: 25, PassingScore: 70},
	}
	achievements := []catalog.Achievement{
		{ID: "first-video", Points: 10, Condition: catalog.VideosWatched{Count: 1}},
		{ID: "three-videos", Points: 20, Condition: catalog.VideosWatched{Count: 3}},
		{ID: "c1-complete", Points: 50, Condition: catalog.CourseComplete{CourseID: "c1"}},
		{ID: "ghost-course", Points: 99, Condition: catalog.CourseComplete{CourseID: "nope"}},
	}
	return catalog.New(courses, quizzes, achievements)
}

func newTestEngine(t *testing.T, gw Gateway) *Engine {
	t.Helper()
	if gw == nil {
		gw = &mockGateway{}
	}
	fixed := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	return NewEngine(testCatalog(), gw, WithClock(func() time.Time { return fixed }))
}

func TestCompleteVideoAwardsPointsOnce(t *testing.T) {
	gw := &mockGateway{}
	e := newTestEngine(t, gw)
	ctx := context.Background()

	got := e.CompleteVideo(ctx, "c1", "ch1", "v1")

	if len(got.Record.CompletedVideos) != 1 || got.Record.CompletedVideos[0] != "c1-ch1-v1" {
		t.Fatalf("completed videos = %v, want [c1-ch1-v1]", got.Record.CompletedVideos)
	}
	// 10 video points + 10 for the first-video achievement.
	if got.Record.Points != 20 {
		t.Errorf("points = %d, want 20", got.Record.Points)
	}
	if got.Record.Level != 1 {
		t.Errorf("level = %d, want 1", got.Record.Level)
	}
	if got.Record.Stats.TotalVideosWatched != 1 {
		t.Errorf("stats.totalVideosWatched = %d, want 1", got.Record.Stats.TotalVideosWatched)
	}

	// Repeat: idempotent on the set, no extra points, still persisted.
	again := e.CompleteVideo(ctx, "c1", "ch1", "v1")
	if len(again.Record.CompletedVideos) != 1 {
		t.Errorf("completed videos after repeat = %v, want exactly one key", again.Record.CompletedVideos)
	}
	if again.Record.Points != 20 {
		t.Errorf("points after repeat = %d, want 20", again.Record.Points)
	}
	if again.PointsEarned != 0 {
		t.Errorf("points earned on repeat = %d, want 0", again.PointsEarned)
	}
	if gw.saveCalls != 2 {
		t.Errorf("save calls = %d, want 2 (one per operation)", gw.saveCalls)
	}
}

func TestCompleteVideoUnknownVideoRecordsKeyWithoutPoints(t *testing.T) {
	e := newTestEngine(t, nil)
	ctx := context.Background()

	got := e.CompleteVideo(ctx, "c1", "ch1", "no-such-video")

	if !got.Record.VideoCompleted("c1-ch1-no-such-video") {
		t.Fatal("expected unknown video key to be recorded")
	}
	// No video points, but videos_watched achievements still fire off the
	// completion count.
	if got.Record.Points != 10 {
		t.Errorf("points = %d, want 10 (achievement only)", got.Record.Points)
	}
}

func TestCompleteVideoLevelBoundary(t *testing.T) {
	stored := DefaultRecord()
	stored.Points = 95
	stored.Level = 1
	stored.CompletedVideos = []string{"c1-ch1-v1", "c1-ch1-v2", "c1-ch2-v4", "c2-ch1-v1"}
	stored.Stats.TotalVideosWatched = 4
	stored.EarnedAchievements = []string{"first-video", "three-videos"}
	gw := &mockGateway{stored: &stored}

	e := newTestEngine(t, gw)
	got := e.CompleteVideo(context.Background(), "c1", "ch1", "v3")

	// 95 + 15 video points + 50 course-complete achievement.
	if got.Record.Points != 160 {
		t.Errorf("points = %d, want 160", got.Record.Points)
	}
	if got.Record.Level != 2 {
		t.Errorf("level = %d, want 2", got.Record.Level)
	}
}

func TestCompleteQuizBestScoreRetention(t *testing.T) {
	tests := []struct {
		name       string
		first      int
		second     int
		wantScore  int
		wantPoints int
	}{
		{name: "improvement keeps higher score", first: 60, second: 85, wantScore: 85, wantPoints: 30},
		{name: "regression keeps stored score", first: 85, second: 60, wantScore: 85, wantPoints: 30},
		{name: "equal score is no-op", first: 70, second: 70, wantScore: 70, wantPoints: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, nil)
			ctx := context.Background()

			e.CompleteQuiz(ctx, "c1", "ch1", "q1", tt.first)
			got := e.CompleteQuiz(ctx, "c1", "ch1", "q1", tt.second)

			res, ok := got.Record.Quiz("c1-ch1-q1")
			if !ok {
				t.Fatal("quiz result missing")
			}
			if res.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", res.Score, tt.wantScore)
			}
			// Quiz points awarded once; no videos watched, so no
			// achievement points.
			if got.Record.Points != 20 {
				t.Errorf("points = %d, want 20 (awarded once)", got.Record.Points)
			}
			if got.Record.Stats.TotalQuizzesPassed != 1 {
				t.Errorf("stats.totalQuizzesPassed = %d, want 1", got.Record.Stats.TotalQuizzesPassed)
			}
			if len(got.Record.CompletedQuizzes) != 1 {
				t.Errorf("completed quizzes = %d entries, want 1", len(got.Record.CompletedQuizzes))
			}
		})
	}
}

func TestCompleteQuizUnknownQuizNoPoints(t *testing.T) {
	e := newTestEngine(t, nil)
	got := e.CompleteQuiz(context.Background(), "c1", "ch1", "mystery", 90)

	if !got.Record.QuizCompleted("c1-ch1-mystery") {
		t.Fatal("expected quiz entry to be recorded")
	}
	if got.Record.Points != 0 {
		t.Errorf("points = %d, want 0", got.Record.Points)
	}
}

func TestMonotonicPointsAndAchievements(t *testing.T) {
	e := newTestEngine(t, nil)
	ctx := context.Background()

	events := []func() Record{
		func() Record { return e.CompleteVideo(ctx, "c1", "ch1", "v1").Record },
		func() Record { return e.CompleteVideo(ctx, "c1", "ch1", "v1").Record },
		func() Record { return e.CompleteQuiz(ctx, "c1", "ch1", "q1", 50).Record },
		func() Record { return e.CompleteQuiz(ctx, "c1", "ch1", "q1", 40).Record },
		func() Record { return e.CompleteVideo(ctx, "c1", "ch1", "v2").Record },
		func() Record { return e.CompleteVideo(ctx, "c2", "ch1", "v1").Record },
		func() Record { return e.CompleteVideo(ctx, "c1", "ch2", "v4").Record },
	}

	prevPoints := 0
	prevEarned := 0
	for i, ev := range events {
		rec := ev()
		if rec.Points < prevPoints {
			t.Fatalf("event %d: points decreased %d -> %d", i, prevPoints, rec.Points)
		}
		if len(rec.EarnedAchievements) < prevEarned {
			t.Fatalf("event %d: achievements shrank %d -> %d", i, prevEarned, len(rec.EarnedAchievements))
		}
		if want := LevelForPoints(rec.Points); rec.Level != want {
			t.Fatalf("event %d: level = %d, want %d", i, rec.Level, want)
		}
		prevPoints = rec.Points
		prevEarned = len(rec.EarnedAchievements)
	}
}

func TestAchievementUnlockOnFirstVideo(t *testing.T) {
	e := newTestEngine(t, nil)
	got := e.CompleteVideo(context.Background(), "c1", "ch1", "v1")

	if len(got.NewlyEarned) != 1 || got.NewlyEarned[0].ID != "first-video" {
		t.Fatalf("newly earned = %v, want [first-video]", got.NewlyEarned)
	}
	if !got.Record.AchievementEarned("first-video") {
		t.Error("first-video not recorded on the record")
	}
	// Video points + achievement points.
	if got.Record.Points != 20 {
		t.Errorf("points = %d, want 20", got.Record.Points)
	}
}

func TestCourseCompleteAchievement(t *testing.T) {
	e := newTestEngine(t, nil)
	ctx := context.Background()

	e.CompleteVideo(ctx, "c1", "ch1", "v1")
	e.CompleteVideo(ctx, "c1", "ch1", "v2")
	e.CompleteVideo(ctx, "c1", "ch1", "v3")
	got := e.CompleteVideo(ctx, "c1", "ch2", "v4")

	if !got.Record.AchievementEarned("c1-complete") {
		t.Error("expected c1-complete after finishing every c1 video")
	}
	if got.Record.AchievementEarned("ghost-course") {
		t.Error("achievement for a course missing from the catalog must never unlock")
	}
}

func TestQuizImprovementStillEvaluatesAchievements(t *testing.T) {
	// A score-only improvement changes no points, but evaluation must still
	// run: seed a stored record that already satisfies first-video without
	// having earned it, then improve a quiz score.
	gw := &mockGateway{}
	e := newTestEngine(t, gw)
	ctx := context.Background()

	e.CompleteQuiz(ctx, "c1", "ch1", "q1", 60)

	stored := gw.stored.Clone()
	stored.CompletedVideos = append(stored.CompletedVideos, "c1-ch1-v1")
	stored.Stats.TotalVideosWatched = 1
	gw.stored = &stored

	e2 := newTestEngine(t, gw)
	got := e2.CompleteQuiz(ctx, "c1", "ch1", "q1", 80)

	if !got.Record.AchievementEarned("first-video") {
		t.Error("score improvement should re-run achievement evaluation")
	}
}

func TestLastActiveUpdatedOnEveryEvent(t *testing.T) {
	gw := &mockGateway{}
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	e := NewEngine(testCatalog(), gw, WithClock(func() time.Time { return current }))
	ctx := context.Background()

	first := e.CompleteVideo(ctx, "c1", "ch1", "v1")
	if !first.Record.LastActive.Equal(current) {
		t.Errorf("lastActive = %v, want %v", first.Record.LastActive, current)
	}

	current = current.Add(time.Hour)
	repeat := e.CompleteVideo(ctx, "c1", "ch1", "v1")
	if !repeat.Record.LastActive.Equal(current) {
		t.Errorf("repeat completion must still refresh lastActive, got %v", repeat.Record.LastActive)
	}
}

func TestSaveFailureKeepsInMemoryState(t *testing.T) {
	gw := &mockGateway{saveErr: errors.New("disk full")}
	e := newTestEngine(t, gw)
	ctx := context.Background()

	var published int
	e.Subscribe(func(Record) { published++ })

	got := e.CompleteVideo(ctx, "c1", "ch1", "v1")
	if got.Record.Points == 0 {
		t.Error("in-memory state must reflect the update despite the save failure")
	}
	if published != 0 {
		t.Error("subscribers must not fire on failed saves")
	}
	if !e.IsVideoComplete(ctx, "c1", "ch1", "v1") {
		t.Error("completion lost after failed save")
	}
}

func TestLoadFailureFallsBackToDefault(t *testing.T) {
	gw := &mockGateway{loadErr: errors.New("corrupt")}
	e := newTestEngine(t, gw)

	rec := e.Record(context.Background())
	if rec.Points != 0 || rec.Level != 1 || len(rec.CompletedVideos) != 0 {
		t.Errorf("expected default record, got %+v", rec)
	}
}

func TestResetReplacesRecord(t *testing.T) {
	gw := &mockGateway{}
	e := newTestEngine(t, gw)
	ctx := context.Background()

	e.CompleteVideo(ctx, "c1", "ch1", "v1")
	rec := e.Reset(ctx)

	if rec.Points != 0 || rec.Level != 1 {
		t.Errorf("reset record = %+v, want default", rec)
	}
	if gw.stored != nil {
		t.Error("stored record should be cleared")
	}
}

func TestSubscribePublishesOnSuccessfulSave(t *testing.T) {
	e := newTestEngine(t, nil)

	var seen []Record
	e.Subscribe(func(r Record) { seen = append(seen, r) })

	e.CompleteVideo(context.Background(), "c1", "ch1", "v1")
	if len(seen) != 1 {
		t.Fatalf("published %d times, want 1", len(seen))
	}
	if seen[0].Points != 20 {
		t.Errorf("published points = %d, want 20", seen[0].Points)
	}
}

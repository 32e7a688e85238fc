package store

import (
	"context"
	"testing"

	"github.com/roeland/learntrack/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressLoadDefaultsWhenEmpty(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	rec, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec.Level != 1 || rec.Points != 0 || len(rec.CompletedVideos) != 0 {
		t.Errorf("expected default record, got %+v", rec)
	}
}

func TestProgressSaveAndLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	rec := progress.DefaultRecord()
	rec.CompletedVideos = []string{"c1-ch1-v1", "c1-ch1-v2"}
	rec.Points = 105
	rec.Level = 2
	rec.Stats.TotalVideosWatched = 2
	rec.EarnedAchievements = []string{"first-video"}

	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Points != 105 || got.Level != 2 {
		t.Errorf("points/level = %d/%d, want 105/2", got.Points, got.Level)
	}
	if len(got.CompletedVideos) != 2 || got.CompletedVideos[0] != "c1-ch1-v1" {
		t.Errorf("completed videos = %v", got.CompletedVideos)
	}
	if len(got.EarnedAchievements) != 1 {
		t.Errorf("earned achievements = %v", got.EarnedAchievements)
	}
}

func TestProgressLatestSaveWins(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	first := progress.DefaultRecord()
	first.Points = 10
	second := progress.DefaultRecord()
	second.Points = 20

	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Points != 20 {
		t.Errorf("points = %d, want 20 (latest save)", got.Points)
	}
}

func TestProgressClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	rec := progress.DefaultRecord()
	rec.Points = 50
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if got.Points != 0 {
		t.Errorf("points after clear = %d, want 0", got.Points)
	}
}

func TestProgressPruneKeepsRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	for i := 0; i < snapshotKeep+5; i++ {
		rec := progress.DefaultRecord()
		rec.Points = i
		if err := repo.Save(ctx, rec); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	count, err := s.Client().ProgressSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count > snapshotKeep {
		t.Errorf("snapshot count = %d, want <= %d", count, snapshotKeep)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Points != snapshotKeep+4 {
		t.Errorf("points = %d, want %d (latest survives prune)", got.Points, snapshotKeep+4)
	}
}

func TestCompletionEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	score := 85
	events := []CompletionEventData{
		{EventType: "video", ItemKey: "c1-ch1-v1", PointsAwarded: 10, AttemptID: "a1"},
		{EventType: "achievement", ItemKey: "first-video", PointsAwarded: 10, AttemptID: "a1"},
		{EventType: "quiz", ItemKey: "c1-ch1-q1", Score: &score, PointsAwarded: 20, AttemptID: "a2"},
	}
	for _, e := range events {
		if err := repo.AppendCompletion(ctx, e); err != nil {
			t.Fatalf("append %s: %v", e.EventType, err)
		}
	}

	got, err := repo.RecentCompletions(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	// Newest first.
	if got[0].EventType != "quiz" || got[0].Score == nil || *got[0].Score != 85 {
		t.Errorf("newest event = %+v, want the quiz", got[0])
	}
	if got[2].EventType != "video" {
		t.Errorf("oldest event = %+v, want the video", got[2])
	}
	if got[0].Sequence <= got[1].Sequence {
		t.Error("sequences must be strictly decreasing in query order")
	}
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.EventRepo().AppendCompletion(ctx, CompletionEventData{EventType: "video", ItemKey: "k", AttemptID: "a"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.ProgressRepo().Save(ctx, progress.DefaultRecord()); err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err := s.Client().ProgressSnapshot.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query snapshot: %v", err)
	}
	events, err := s.EventRepo().RecentCompletions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if snap.Sequence <= events[0].Sequence {
		t.Errorf("snapshot sequence %d should follow event sequence %d", snap.Sequence, events[0].Sequence)
	}
}

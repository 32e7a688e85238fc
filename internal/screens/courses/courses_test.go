package courses

import (
	"testing"

	"github.com/roeland/learntrack/internal/catalog"
	"github.com/roeland/learntrack/internal/progress"
)

func TestWatchedInCourse(t *testing.T) {
	rec := progress.DefaultRecord()
	rec.CompletedVideos = []string{
		progress.VideoKey("go-basics", "ch1", "v1"),
		progress.VideoKey("go-basics", "ch1", "v2"),
		progress.VideoKey("go-concurrency", "ch1", "v1"),
	}

	tests := []struct {
		courseID string
		want     int
	}{
		{"go-basics", 2},
		{"go-concurrency", 1},
		{"go-testing", 0},
	}
	for _, tt := range tests {
		if got := watchedInCourse(rec, tt.courseID); got != tt.want {
			t.Errorf("watchedInCourse(%q) = %d, want %d", tt.courseID, got, tt.want)
		}
	}
}

func TestRatio(t *testing.T) {
	if got := ratio(3, 4); got != 0.75 {
		t.Errorf("ratio(3, 4) = %v, want 0.75", got)
	}
	if got := ratio(1, 0); got != 0 {
		t.Errorf("ratio(1, 0) = %v, want 0 for empty course", got)
	}
}

func TestChapterScreenItemOrder(t *testing.T) {
	course := catalog.Course{
		ID: "c1",
		Chapters: []catalog.Chapter{
			{ID: "ch1", Title: "One", Videos: []catalog.Video{{ID: "v1"}, {ID: "v2"}}},
			{ID: "ch2", Title: "Two", Videos: []catalog.Video{{ID: "v3"}}},
		},
	}
	quiz := catalog.Quiz{ID: "q1", CourseID: "c1", ChapterID: "ch1", Unlock: catalog.UnlockAllVideos{}}
	cat := catalog.New([]catalog.Course{course}, []catalog.Quiz{quiz}, nil)

	s := newChapterScreen(cat, nil, course)

	// Videos come first within a chapter, then its quizzes, then the next
	// chapter.
	wantKinds := []itemKind{kindVideo, kindVideo, kindQuiz, kindVideo}
	if len(s.items) != len(wantKinds) {
		t.Fatalf("expected %d items, got %d", len(wantKinds), len(s.items))
	}
	for i, kind := range wantKinds {
		if s.items[i].kind != kind {
			t.Errorf("item %d: expected kind %d, got %d", i, kind, s.items[i].kind)
		}
	}
	if s.items[2].quiz.ID != "q1" {
		t.Errorf("expected quiz q1 at index 2, got %q", s.items[2].quiz.ID)
	}
	if s.items[3].chapter.ID != "ch2" {
		t.Errorf("expected ch2 video last, got chapter %q", s.items[3].chapter.ID)
	}
}

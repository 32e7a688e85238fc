package catalog

import "testing"

func indexFixture() *Catalog {
	courses := []Course{
		{
			ID: "c1",
			Chapters: []Chapter{
				{ID: "ch1", Videos: []Video{{ID: "v1", Points: 10}, {ID: "v2", Points: 15}}},
				{ID: "ch2", Videos: []Video{{ID: "v3", Points: 20}}},
			},
		},
		{
			ID: "c2",
			Chapters: []Chapter{
				{ID: "ch1", Videos: []Video{{ID: "v1", Points: 5}}},
			},
		},
	}
	quizzes := []Quiz{
		{ID: "q1", CourseID: "c1", ChapterID: "ch1", Unlock: UnlockAllVideos{}},
		{ID: "q2", CourseID: "c1", ChapterID: "ch2", Unlock: UnlockSpecificVideo{VideoID: "v3"}},
	}
	achievements := []Achievement{
		{ID: "a1", Condition: VideosWatched{Count: 1}},
	}
	return New(courses, quizzes, achievements)
}

func TestVideoLookup(t *testing.T) {
	cat := indexFixture()

	tests := []struct {
		name     string
		courseID string
		chapter  string
		videoID  string
		wantOK   bool
		wantPts  int
	}{
		{name: "found", courseID: "c1", chapter: "ch1", videoID: "v2", wantOK: true, wantPts: 15},
		{name: "same video id in another course", courseID: "c2", chapter: "ch1", videoID: "v1", wantOK: true, wantPts: 5},
		{name: "wrong chapter", courseID: "c1", chapter: "ch2", videoID: "v1", wantOK: false},
		{name: "unknown course", courseID: "nope", chapter: "ch1", videoID: "v1", wantOK: false},
		{name: "unknown video", courseID: "c1", chapter: "ch1", videoID: "v9", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := cat.Video(tt.courseID, tt.chapter, tt.videoID)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && v.Points != tt.wantPts {
				t.Errorf("points = %d, want %d", v.Points, tt.wantPts)
			}
		})
	}
}

func TestVideoCounts(t *testing.T) {
	cat := indexFixture()

	if got := cat.TotalVideos(); got != 4 {
		t.Errorf("TotalVideos = %d, want 4", got)
	}
	if got := cat.CourseVideoCount("c1"); got != 3 {
		t.Errorf("CourseVideoCount(c1) = %d, want 3", got)
	}
	if got := cat.CourseVideoCount("unknown"); got != 0 {
		t.Errorf("CourseVideoCount(unknown) = %d, want 0", got)
	}
}

func TestQuizzesForChapter(t *testing.T) {
	cat := indexFixture()

	got := cat.QuizzesForChapter("c1", "ch1")
	if len(got) != 1 || got[0].ID != "q1" {
		t.Errorf("QuizzesForChapter(c1, ch1) = %v, want [q1]", got)
	}
	if got := cat.QuizzesForChapter("c1", "nope"); len(got) != 0 {
		t.Errorf("expected no quizzes for unknown chapter, got %v", got)
	}
}

func TestCoursesReturnsCopy(t *testing.T) {
	cat := indexFixture()

	first := cat.Courses()
	first[0].ID = "mutated"

	if cat.Courses()[0].ID != "c1" {
		t.Error("mutating the returned slice leaked into the catalog")
	}
}

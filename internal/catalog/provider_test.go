package catalog

import (
	"context"
	"testing"
	"testing/fstest"
)

const validCourses = `{
  "courses": [
    {
      "id": "c1",
      "title": "Course",
      "chapters": [
        {"id": "ch1", "title": "Chapter", "videos": [
          {"id": "v1", "title": "Video", "duration": "5:00", "points": 10}
        ]}
      ]
    }
  ]
}`

const validQuizzes = `{
  "quizzes": [
    {
      "id": "q1", "courseId": "c1", "chapterId": "ch1", "title": "Quiz",
      "unlockRequirement": {"type": "all-videos"},
      "points": 20, "passingScore": 70
    },
    {
      "id": "q2", "courseId": "c1", "chapterId": "ch1", "title": "Quiz 2",
      "unlockRequirement": {"type": "specific-video", "videoId": "v1"},
      "points": 25, "passingScore": 70
    }
  ]
}`

const validAchievements = `{
  "achievements": [
    {"id": "a1", "title": "First", "points": 10, "condition": {"type": "videos_watched", "count": 1}},
    {"id": "a2", "title": "Done", "points": 50, "condition": {"type": "course_complete", "courseId": "c1"}}
  ]
}`

func testFS(courses, quizzes, achievements string) fstest.MapFS {
	return fstest.MapFS{
		"courses.json":      {Data: []byte(courses)},
		"quizzes.json":      {Data: []byte(quizzes)},
		"achievements.json": {Data: []byte(achievements)},
	}
}

func TestFileProviderLoadsAndDecodes(t *testing.T) {
	p := NewFSProvider(testFS(validCourses, validQuizzes, validAchievements))
	ctx := context.Background()

	courses, err := p.Courses(ctx)
	if err != nil {
		t.Fatalf("courses: %v", err)
	}
	if len(courses) != 1 || courses[0].Chapters[0].Videos[0].Points != 10 {
		t.Errorf("unexpected courses: %+v", courses)
	}

	quizzes, err := p.Quizzes(ctx)
	if err != nil {
		t.Fatalf("quizzes: %v", err)
	}
	if _, ok := quizzes[0].Unlock.(UnlockAllVideos); !ok {
		t.Errorf("quiz 1 unlock = %T, want UnlockAllVideos", quizzes[0].Unlock)
	}
	if req, ok := quizzes[1].Unlock.(UnlockSpecificVideo); !ok || req.VideoID != "v1" {
		t.Errorf("quiz 2 unlock = %#v, want UnlockSpecificVideo{v1}", quizzes[1].Unlock)
	}

	achievements, err := p.Achievements(ctx)
	if err != nil {
		t.Fatalf("achievements: %v", err)
	}
	if cond, ok := achievements[0].Condition.(VideosWatched); !ok || cond.Count != 1 {
		t.Errorf("achievement 1 condition = %#v", achievements[0].Condition)
	}
	if cond, ok := achievements[1].Condition.(CourseComplete); !ok || cond.CourseID != "c1" {
		t.Errorf("achievement 2 condition = %#v", achievements[1].Condition)
	}
}

func TestFileProviderMemoizes(t *testing.T) {
	fsys := testFS(validCourses, validQuizzes, validAchievements)
	p := NewFSProvider(fsys)
	ctx := context.Background()

	if _, err := p.Courses(ctx); err != nil {
		t.Fatalf("first load: %v", err)
	}

	// Corrupt the backing file; the cached result must survive.
	fsys["courses.json"].Data = []byte("not json")
	courses, err := p.Courses(ctx)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if len(courses) != 1 {
		t.Errorf("memoized courses = %v", courses)
	}
}

func TestFileProviderRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name    string
		quizzes string
	}{
		{name: "unknown requirement type", quizzes: `{"quizzes": [{"id": "q", "courseId": "c", "chapterId": "ch", "unlockRequirement": {"type": "mystery"}}]}`},
		{name: "missing required field", quizzes: `{"quizzes": [{"id": "q"}]}`},
		{name: "not json", quizzes: `]][[`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewFSProvider(testFS(validCourses, tt.quizzes, validAchievements))
			if _, err := p.Quizzes(context.Background()); err == nil {
				t.Error("expected error for invalid quizzes.json")
			}
		})
	}
}

func TestEmbeddedProviderIsValid(t *testing.T) {
	p := NewEmbeddedProvider()
	cat, err := Load(context.Background(), p)
	if err != nil {
		t.Fatalf("load embedded catalog: %v", err)
	}
	if cat.TotalVideos() == 0 {
		t.Error("embedded catalog has no videos")
	}
	if len(cat.Achievements()) == 0 {
		t.Error("embedded catalog has no achievements")
	}
	for _, q := range cat.Quizzes() {
		if _, ok := cat.Chapter(q.CourseID, q.ChapterID); !ok {
			t.Errorf("quiz %s references unknown chapter %s/%s", q.ID, q.CourseID, q.ChapterID)
		}
	}
}

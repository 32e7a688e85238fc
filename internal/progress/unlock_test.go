package progress

import (
	"testing"

	"github.com/roeland/learntrack/internal/catalog"
)

func TestVideoUnlockChain(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name      string
		completed []string
		videoID   string
		want      bool
	}{
		{name: "first video always unlocked", completed: nil, videoID: "v1", want: true},
		{name: "second locked until first complete", completed: nil, videoID: "v2", want: false},
		{name: "second unlocked by first", completed: []string{"c1-ch1-v1"}, videoID: "v2", want: true},
		{name: "third locked by missing second", completed: []string{"c1-ch1-v1"}, videoID: "v3", want: false},
		{name: "third unlocked by second alone", completed: []string{"c1-ch1-v2"}, videoID: "v3", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := DefaultRecord()
			rec.CompletedVideos = tt.completed
			if got := VideoUnlocked(cat, rec, "c1", "ch1", tt.videoID); got != tt.want {
				t.Errorf("VideoUnlocked(%s) = %v, want %v", tt.videoID, got, tt.want)
			}
		})
	}
}

func TestVideoUnlockFailsOpenOnCatalogMiss(t *testing.T) {
	cat := testCatalog()
	rec := DefaultRecord()

	if !VideoUnlocked(cat, rec, "c1", "no-such-chapter", "v1") {
		t.Error("unknown chapter should fail open")
	}
	if !VideoUnlocked(cat, rec, "c1", "ch1", "no-such-video") {
		t.Error("unknown video should fail open")
	}
}

func TestQuizUnlockAllVideos(t *testing.T) {
	cat := testCatalog()
	quiz, ok := cat.Quiz("q1")
	if !ok {
		t.Fatal("test quiz missing")
	}

	rec := DefaultRecord()
	rec.CompletedVideos = []string{"c1-ch1-v1", "c1-ch1-v2"}
	if QuizUnlocked(cat, quiz, rec) {
		t.Error("quiz unlocked with only 2 of 3 chapter videos complete")
	}

	rec.CompletedVideos = append(rec.CompletedVideos, "c1-ch1-v3")
	if !QuizUnlocked(cat, quiz, rec) {
		t.Error("quiz locked with every chapter video complete")
	}
}

func TestQuizUnlockSpecificVideo(t *testing.T) {
	cat := testCatalog()
	quiz := catalog.Quiz{
		ID:        "q2",
		CourseID:  "c1",
		ChapterID: "ch2",
		Unlock:    catalog.UnlockSpecificVideo{VideoID: "v4"},
	}

	rec := DefaultRecord()
	if QuizUnlocked(cat, quiz, rec) {
		t.Error("quiz unlocked before its required video")
	}

	rec.CompletedVideos = []string{"c1-ch2-v4"}
	if !QuizUnlocked(cat, quiz, rec) {
		t.Error("quiz locked after its required video")
	}
}

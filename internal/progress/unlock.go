package progress

import (
	"github.com/roeland/learntrack/internal/catalog"
)

// VideoUnlocked reports whether a video may be watched. Videos form a strict
// linear chain per chapter: the first is always open, each later one opens
// only when its immediate predecessor is complete. Lookups that miss the
// catalog fail open; a broken catalog should never lock the learner out.
func VideoUnlocked(cat *catalog.Catalog, rec Record, courseID, chapterID, videoID string) bool {
	chapter, ok := cat.Chapter(courseID, chapterID)
	if !ok {
		return true
	}

	idx := -1
	for i, v := range chapter.Videos {
		if v.ID == videoID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return true
	}
	if idx == 0 {
		return true
	}

	prev := chapter.Videos[idx-1]
	return rec.VideoCompleted(VideoKey(courseID, chapterID, prev.ID))
}

// QuizUnlocked applies a quiz's unlock requirement to the record.
func QuizUnlocked(cat *catalog.Catalog, quiz catalog.Quiz, rec Record) bool {
	switch req := quiz.Unlock.(type) {
	case catalog.UnlockAllVideos:
		chapter, ok := cat.Chapter(quiz.CourseID, quiz.ChapterID)
		if !ok {
			return true
		}
		for _, v := range chapter.Videos {
			if !rec.VideoCompleted(VideoKey(quiz.CourseID, quiz.ChapterID, v.ID)) {
				return false
			}
		}
		return true

	case catalog.UnlockSpecificVideo:
		return rec.VideoCompleted(VideoKey(quiz.CourseID, quiz.ChapterID, req.VideoID))

	default:
		return false
	}
}

package progress

import (
	"slices"
	"time"
)

// PointsPerLevel is the cost of each level step.
const PointsPerLevel = 100

// QuizResult is the stored outcome for one quiz. Score holds the best score
// ever achieved for the quiz, not the most recent attempt.
type QuizResult struct {
	QuizKey     string    `json:"quizKey"`
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completedAt"`
}

// Stats holds derived counters. They are recomputed from the completion sets
// on every mutation and must never drift from them.
type Stats struct {
	TotalVideosWatched int `json:"totalVideosWatched"`
	TotalQuizzesPassed int `json:"totalQuizzesPassed"`
}

// Record is the learner's full progress state. The engine owns the only
// mutable copy; everything handed out is a clone.
type Record struct {
	CompletedVideos    []string     `json:"completedVideos"`
	CompletedQuizzes   []QuizResult `json:"completedQuizzes"`
	EarnedAchievements []string     `json:"earnedAchievements"`
	Points             int          `json:"points"`
	Level              int          `json:"level"`
	Stats              Stats        `json:"stats"`
	LastActive         time.Time    `json:"lastActive"`
}

// DefaultRecord returns the zero-progress record used on first run and after
// a reset.
func DefaultRecord() Record {
	return Record{
		CompletedVideos:    []string{},
		CompletedQuizzes:   []QuizResult{},
		EarnedAchievements: []string{},
		Level:              1,
	}
}

// LevelForPoints maps a point total to a level. Level is always derived,
// never stored on its own terms.
func LevelForPoints(points int) int {
	if points < 0 {
		return 1
	}
	return points/PointsPerLevel + 1
}

// VideoKey builds the completion key for a video.
func VideoKey(courseID, chapterID, videoID string) string {
	return courseID + "-" + chapterID + "-" + videoID
}

// QuizKey builds the completion key for a quiz.
func QuizKey(courseID, chapterID, quizID string) string {
	return courseID + "-" + chapterID + "-" + quizID
}

// VideoCompleted reports whether the completion key is present.
func (r Record) VideoCompleted(key string) bool {
	return slices.Contains(r.CompletedVideos, key)
}

// QuizCompleted reports whether a quiz result exists for the key.
func (r Record) QuizCompleted(key string) bool {
	_, ok := r.Quiz(key)
	return ok
}

// Quiz returns the stored result for a quiz key.
func (r Record) Quiz(key string) (QuizResult, bool) {
	for _, q := range r.CompletedQuizzes {
		if q.QuizKey == key {
			return q, true
		}
	}
	return QuizResult{}, false
}

// AchievementEarned reports whether the achievement ID has been earned.
func (r Record) AchievementEarned(id string) bool {
	return slices.Contains(r.EarnedAchievements, id)
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	c := r
	c.CompletedVideos = slices.Clone(r.CompletedVideos)
	c.CompletedQuizzes = slices.Clone(r.CompletedQuizzes)
	c.EarnedAchievements = slices.Clone(r.EarnedAchievements)
	return c
}

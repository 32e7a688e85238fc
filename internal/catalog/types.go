package catalog

// Video is a single watchable unit. Points are awarded once, on first
// completion.
type Video struct {
	ID       string
	Title    string
	Duration string
	Points   int
}

// Chapter groups videos in catalog-defined order. The order matters: it
// drives the linear unlock chain.
type Chapter struct {
	ID     string
	Title  string
	Videos []Video
}

// Course is the top-level catalog entity.
type Course struct {
	ID          string
	Title       string
	Description string
	Chapters    []Chapter
}

// Quiz belongs to a chapter of a course and is gated by an unlock
// requirement.
type Quiz struct {
	ID           string
	CourseID     string
	ChapterID    string
	Title        string
	Description  string
	Unlock       UnlockRequirement
	Points       int
	PassingScore int
}

// Achievement grants a one-time point reward when its condition is met.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Points      int
	Condition   Condition
}

// UnlockRequirement gates whether a quiz may be attempted. It is a closed
// set of variants; switches over it should handle every concrete type.
type UnlockRequirement interface {
	isUnlockRequirement()
}

// UnlockAllVideos requires every video in the quiz's chapter to be complete.
type UnlockAllVideos struct{}

// UnlockSpecificVideo requires a single named video to be complete.
type UnlockSpecificVideo struct {
	VideoID string
}

func (UnlockAllVideos) isUnlockRequirement()     {}
func (UnlockSpecificVideo) isUnlockRequirement() {}

// Condition is an achievement unlock predicate over aggregate progress.
// Like UnlockRequirement it is a closed variant set, so adding a new
// condition kind is a compile-visible change at every switch site.
type Condition interface {
	isCondition()
}

// VideosWatched unlocks once the learner has watched at least Count videos.
type VideosWatched struct {
	Count int
}

// CourseComplete unlocks once every video of the named course is watched.
type CourseComplete struct {
	CourseID string
}

func (VideosWatched) isCondition()  {}
func (CourseComplete) isCondition() {}

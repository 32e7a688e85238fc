package catalog

import (
	"context"
	"fmt"
	"slices"
)

// Catalog is an indexed, immutable view over a Provider's data. Build it
// once at startup; lookups are map hits after that.
type Catalog struct {
	courses      []Course
	quizzes      []Quiz
	achievements []Achievement

	courseByID     map[string]*Course
	chapterByID    map[string]*Chapter // key: courseID + "\x00" + chapterID
	quizByID       map[string]*Quiz
	totalVideos    int
	videosByCourse map[string]int
}

// Load fetches all three documents from the provider and builds the index.
func Load(ctx context.Context, p Provider) (*Catalog, error) {
	courses, err := p.Courses(ctx)
	if err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}
	quizzes, err := p.Quizzes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load quizzes: %w", err)
	}
	achievements, err := p.Achievements(ctx)
	if err != nil {
		return nil, fmt.Errorf("load achievements: %w", err)
	}
	return build(courses, quizzes, achievements), nil
}

// New builds a catalog directly from definitions, bypassing any provider.
func New(courses []Course, quizzes []Quiz, achievements []Achievement) *Catalog {
	return build(courses, quizzes, achievements)
}

func build(courses []Course, quizzes []Quiz, achievements []Achievement) *Catalog {
	c := &Catalog{
		courses:        courses,
		quizzes:        quizzes,
		achievements:   achievements,
		courseByID:     make(map[string]*Course, len(courses)),
		chapterByID:    make(map[string]*Chapter),
		quizByID:       make(map[string]*Quiz, len(quizzes)),
		videosByCourse: make(map[string]int, len(courses)),
	}

	for i := range c.courses {
		course := &c.courses[i]
		c.courseByID[course.ID] = course
		for j := range course.Chapters {
			ch := &course.Chapters[j]
			c.chapterByID[chapterKey(course.ID, ch.ID)] = ch
			c.videosByCourse[course.ID] += len(ch.Videos)
			c.totalVideos += len(ch.Videos)
		}
	}
	for i := range c.quizzes {
		c.quizByID[c.quizzes[i].ID] = &c.quizzes[i]
	}
	return c
}

func chapterKey(courseID, chapterID string) string {
	return courseID + "\x00" + chapterID
}

// Courses returns all courses in catalog order.
func (c *Catalog) Courses() []Course {
	return slices.Clone(c.courses)
}

// Quizzes returns all quizzes in catalog order.
func (c *Catalog) Quizzes() []Quiz {
	return slices.Clone(c.quizzes)
}

// QuizzesForChapter returns the quizzes owned by a chapter, in catalog order.
func (c *Catalog) QuizzesForChapter(courseID, chapterID string) []Quiz {
	var result []Quiz
	for _, q := range c.quizzes {
		if q.CourseID == courseID && q.ChapterID == chapterID {
			result = append(result, q)
		}
	}
	return result
}

// Achievements returns all achievement definitions in catalog order.
func (c *Catalog) Achievements() []Achievement {
	return slices.Clone(c.achievements)
}

// Course looks up a course by ID.
func (c *Catalog) Course(id string) (Course, bool) {
	course, ok := c.courseByID[id]
	if !ok {
		return Course{}, false
	}
	return *course, true
}

// Chapter looks up a chapter within a course.
func (c *Catalog) Chapter(courseID, chapterID string) (Chapter, bool) {
	ch, ok := c.chapterByID[chapterKey(courseID, chapterID)]
	if !ok {
		return Chapter{}, false
	}
	return *ch, true
}

// Video looks up a video within a chapter. The comma-ok result is the
// contract for every degraded path in the engine: a missing video means no
// points, not an error.
func (c *Catalog) Video(courseID, chapterID, videoID string) (Video, bool) {
	ch, ok := c.chapterByID[chapterKey(courseID, chapterID)]
	if !ok {
		return Video{}, false
	}
	for _, v := range ch.Videos {
		if v.ID == videoID {
			return v, true
		}
	}
	return Video{}, false
}

// Quiz looks up a quiz by ID.
func (c *Catalog) Quiz(id string) (Quiz, bool) {
	q, ok := c.quizByID[id]
	if !ok {
		return Quiz{}, false
	}
	return *q, true
}

// TotalVideos returns the video count across all chapters of all courses.
func (c *Catalog) TotalVideos() int {
	return c.totalVideos
}

// CourseVideoCount returns the total video count for one course. Zero for
// unknown courses.
func (c *Catalog) CourseVideoCount(courseID string) int {
	return c.videosByCourse[courseID]
}

package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

//go:embed data/*.json
var defaultData embed.FS

const (
	coursesFile      = "courses.json"
	quizzesFile      = "quizzes.json"
	achievementsFile = "achievements.json"
)

// Provider supplies immutable catalog definitions. Implementations must be
// safe for repeated calls; documents are expected to be memoized after the
// first successful load.
type Provider interface {
	Courses(ctx context.Context) ([]Course, error)
	Quizzes(ctx context.Context) ([]Quiz, error)
	Achievements(ctx context.Context) ([]Achievement, error)
}

// FileProvider loads catalog documents from a filesystem, validates them
// against their JSON schemas, and caches the decoded result for the lifetime
// of the process.
type FileProvider struct {
	fsys fs.FS

	coursesOnce sync.Once
	courses     []Course
	coursesErr  error

	quizzesOnce sync.Once
	quizzes     []Quiz
	quizzesErr  error

	achOnce sync.Once
	ach     []Achievement
	achErr  error
}

// NewFileProvider reads catalog files from the given directory.
func NewFileProvider(dir string) *FileProvider {
	return &FileProvider{fsys: os.DirFS(dir)}
}

// NewEmbeddedProvider serves the catalog compiled into the binary.
func NewEmbeddedProvider() *FileProvider {
	sub, err := fs.Sub(defaultData, "data")
	if err != nil {
		// The embedded tree is fixed at compile time; Sub can only fail on a
		// malformed path constant.
		panic(err)
	}
	return &FileProvider{fsys: sub}
}

// NewFSProvider reads catalog files from an arbitrary fs.FS.
func NewFSProvider(fsys fs.FS) *FileProvider {
	return &FileProvider{fsys: fsys}
}

// DefaultDataDir resolves the catalog directory: LEARNTRACK_DATA env var
// first, then $XDG_DATA_HOME/learntrack/catalog, then
// ~/.local/share/learntrack/catalog. Returns "" when no directory exists, in
// which case callers should fall back to the embedded catalog.
func DefaultDataDir() string {
	if p := os.Getenv("LEARNTRACK_DATA"); p != "" {
		return p
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "learntrack", "catalog")
	if info, err := os.Stat(p); err != nil || !info.IsDir() {
		return ""
	}
	return p
}

func (p *FileProvider) Courses(_ context.Context) ([]Course, error) {
	p.coursesOnce.Do(func() {
		var doc coursesDoc
		if err := p.loadDoc(coursesFile, coursesSchema, &doc); err != nil {
			p.coursesErr = err
			return
		}
		p.courses, p.coursesErr = decodeCourses(doc)
	})
	return p.courses, p.coursesErr
}

func (p *FileProvider) Quizzes(_ context.Context) ([]Quiz, error) {
	p.quizzesOnce.Do(func() {
		var doc quizzesDoc
		if err := p.loadDoc(quizzesFile, quizzesSchema, &doc); err != nil {
			p.quizzesErr = err
			return
		}
		p.quizzes, p.quizzesErr = decodeQuizzes(doc)
	})
	return p.quizzes, p.quizzesErr
}

func (p *FileProvider) Achievements(_ context.Context) ([]Achievement, error) {
	p.achOnce.Do(func() {
		var doc achievementsDoc
		if err := p.loadDoc(achievementsFile, achievementsSchema, &doc); err != nil {
			p.achErr = err
			return
		}
		p.ach, p.achErr = decodeAchievements(doc)
	})
	return p.ach, p.achErr
}

// loadDoc reads a catalog file, validates it against its schema, and decodes
// it into out.
func (p *FileProvider) loadDoc(name string, schema *docSchema, out any) error {
	raw, err := fs.ReadFile(p.fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := validateDocument(schema, raw); err != nil {
		return fmt.Errorf("validate %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// Wire format. Catalog files use lowerCamel keys and "type" discriminators
// for the requirement/condition variants.

type coursesDoc struct {
	Courses []courseJSON `json:"courses"`
}

type courseJSON struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Chapters    []chapterJSON `json:"chapters"`
}

type chapterJSON struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Videos []videoJSON `json:"videos"`
}

type videoJSON struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Points   int    `json:"points"`
}

type quizzesDoc struct {
	Quizzes []quizJSON `json:"quizzes"`
}

type quizJSON struct {
	ID           string          `json:"id"`
	CourseID     string          `json:"courseId"`
	ChapterID    string          `json:"chapterId"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Unlock       requirementJSON `json:"unlockRequirement"`
	Points       int             `json:"points"`
	PassingScore int             `json:"passingScore"`
}

type requirementJSON struct {
	Type    string `json:"type"`
	VideoID string `json:"videoId"`
}

type achievementsDoc struct {
	Achievements []achievementJSON `json:"achievements"`
}

type achievementJSON struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Points      int           `json:"points"`
	Condition   conditionJSON `json:"condition"`
}

type conditionJSON struct {
	Type     string `json:"type"`
	Count    int    `json:"count"`
	CourseID string `json:"courseId"`
}

func decodeCourses(doc coursesDoc) ([]Course, error) {
	courses := make([]Course, 0, len(doc.Courses))
	for _, c := range doc.Courses {
		course := Course{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
		}
		for _, ch := range c.Chapters {
			chapter := Chapter{ID: ch.ID, Title: ch.Title}
			for _, v := range ch.Videos {
				chapter.Videos = append(chapter.Videos, Video(v))
			}
			course.Chapters = append(course.Chapters, chapter)
		}
		courses = append(courses, course)
	}
	return courses, nil
}

func decodeQuizzes(doc quizzesDoc) ([]Quiz, error) {
	quizzes := make([]Quiz, 0, len(doc.Quizzes))
	for _, q := range doc.Quizzes {
		unlock, err := decodeRequirement(q.Unlock)
		if err != nil {
			return nil, fmt.Errorf("quiz %q: %w", q.ID, err)
		}
		quizzes = append(quizzes, Quiz{
			ID:           q.ID,
			CourseID:     q.CourseID,
			ChapterID:    q.ChapterID,
			Title:        q.Title,
			Description:  q.Description,
			Unlock:       unlock,
			Points:       q.Points,
			PassingScore: q.PassingScore,
		})
	}
	return quizzes, nil
}

func decodeRequirement(r requirementJSON) (UnlockRequirement, error) {
	switch r.Type {
	case "all-videos":
		return UnlockAllVideos{}, nil
	case "specific-video":
		if r.VideoID == "" {
			return nil, fmt.Errorf("specific-video requirement missing videoId")
		}
		return UnlockSpecificVideo{VideoID: r.VideoID}, nil
	default:
		return nil, fmt.Errorf("unknown unlock requirement type %q", r.Type)
	}
}

func decodeAchievements(doc achievementsDoc) ([]Achievement, error) {
	achievements := make([]Achievement, 0, len(doc.Achievements))
	for _, a := range doc.Achievements {
		cond, err := decodeCondition(a.Condition)
		if err != nil {
			return nil, fmt.Errorf("achievement %q: %w", a.ID, err)
		}
		achievements = append(achievements, Achievement{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Icon:        a.Icon,
			Points:      a.Points,
			Condition:   cond,
		})
	}
	return achievements, nil
}

func decodeCondition(c conditionJSON) (Condition, error) {
	switch c.Type {
	case "videos_watched":
		if c.Count <= 0 {
			return nil, fmt.Errorf("videos_watched condition needs a positive count")
		}
		return VideosWatched{Count: c.Count}, nil
	case "course_complete":
		if c.CourseID == "" {
			return nil, fmt.Errorf("course_complete condition missing courseId")
		}
		return CourseComplete{CourseID: c.CourseID}, nil
	default:
		return nil, fmt.Errorf("unknown condition type %q", c.Type)
	}
}

package courses

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/roeland/learntrack/internal/catalog"
	"github.com/roeland/learntrack/internal/progress"
	"github.com/roeland/learntrack/internal/router"
	"github.com/roeland/learntrack/internal/screen"
	"github.com/roeland/learntrack/internal/ui/components"
	"github.com/roeland/learntrack/internal/ui/layout"
	"github.com/roeland/learntrack/internal/ui/theme"
)

// CoursesScreen lists the catalog courses with per-course completion.
type CoursesScreen struct {
	cat      *catalog.Catalog
	engine   *progress.Engine
	selected int
}

var _ screen.Screen = (*CoursesScreen)(nil)
var _ screen.KeyHintProvider = (*CoursesScreen)(nil)

// New creates a new CoursesScreen.
func New(cat *catalog.Catalog, engine *progress.Engine) *CoursesScreen {
	return &CoursesScreen{
		cat:    cat,
		engine: engine,
	}
}

func (s *CoursesScreen) Init() tea.Cmd {
	return nil
}

func (s *CoursesScreen) Title() string {
	return "Courses"
}

func (s *CoursesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CoursesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	courses := s.cat.Courses()
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(courses)-1 {
			s.selected++
		}
	case "enter":
		if s.selected < len(courses) {
			course := courses[s.selected]
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: newChapterScreen(s.cat, s.engine, course)}
			}
		}
	}
	return s, nil
}

func (s *CoursesScreen) View(width, height int) string {
	courses := s.cat.Courses()
	if len(courses) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No courses in the catalog")
	}

	rec := s.engine.Record(context.Background())
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString("\n")
	for i, course := range courses {
		total := s.cat.CourseVideoCount(course.ID)
		watched := watchedInCourse(rec, course.ID)

		titleStyle := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "  "
		if i == s.selected {
			titleStyle = titleStyle.Foreground(theme.Primary).Bold(true)
			prefix = "▸ "
		}

		line := titleStyle.Render(fmt.Sprintf("%s%s", prefix, course.Title))
		bar := components.NewProgressBar("", ratio(watched, total), false, cw/2).View()
		count := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf(" %d/%d", watched, total))

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(cw).Render(line)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(cw).Render("  "+bar+count)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).
				Render("  "+course.Description)))
		b.WriteString("\n\n")
	}
	return b.String()
}

// watchedInCourse counts completed videos belonging to the course.
func watchedInCourse(rec progress.Record, courseID string) int {
	prefix := courseID + "-"
	n := 0
	for _, key := range rec.CompletedVideos {
		if strings.HasPrefix(key, prefix) {
			n++
		}
	}
	return n
}

func ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}

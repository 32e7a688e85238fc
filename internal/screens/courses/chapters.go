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

type itemKind int

const (
	kindVideo itemKind = iota
	kindQuiz
)

// rowItem is a selectable row in the chapter listing.
type rowItem struct {
	kind    itemKind
	chapter catalog.Chapter
	video   catalog.Video
	quiz    catalog.Quiz
}

type videoCompletedMsg struct {
	title      string
	wasWatched bool
	completion progress.Completion
}

// chapterScreen shows one course's chapters with their videos and quizzes.
type chapterScreen struct {
	cat      *catalog.Catalog
	engine   *progress.Engine
	course   catalog.Course
	items    []rowItem
	selected int
	flash    string
}

var _ screen.Screen = (*chapterScreen)(nil)
var _ screen.KeyHintProvider = (*chapterScreen)(nil)

func newChapterScreen(cat *catalog.Catalog, engine *progress.Engine, course catalog.Course) *chapterScreen {
	var items []rowItem
	for _, ch := range course.Chapters {
		for _, v := range ch.Videos {
			items = append(items, rowItem{kind: kindVideo, chapter: ch, video: v})
		}
		for _, q := range cat.QuizzesForChapter(course.ID, ch.ID) {
			items = append(items, rowItem{kind: kindQuiz, chapter: ch, quiz: q})
		}
	}
	return &chapterScreen{
		cat:    cat,
		engine: engine,
		course: course,
		items:  items,
	}
}

func (s *chapterScreen) Init() tea.Cmd {
	return nil
}

func (s *chapterScreen) Title() string {
	return s.course.Title
}

func (s *chapterScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Watch / Attempt"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *chapterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case videoCompletedMsg:
		s.flash = videoFlash(msg)
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.flash = ""
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			s.flash = ""
			if s.selected < len(s.items)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(s.items) {
				return s, s.activate(s.items[s.selected])
			}
		}
	}
	return s, nil
}

// activate handles Enter on a row: watch a video or open a quiz.
func (s *chapterScreen) activate(item rowItem) tea.Cmd {
	ctx := context.Background()
	switch item.kind {
	case kindVideo:
		if !s.engine.IsVideoUnlocked(ctx, s.course.ID, item.chapter.ID, item.video.ID) {
			s.flash = "Locked. Watch the previous video first."
			return nil
		}
		courseID, chapterID, video := s.course.ID, item.chapter.ID, item.video
		wasWatched := s.engine.IsVideoComplete(ctx, courseID, chapterID, video.ID)
		return func() tea.Msg {
			comp := s.engine.CompleteVideo(context.Background(), courseID, chapterID, video.ID)
			return videoCompletedMsg{title: video.Title, wasWatched: wasWatched, completion: comp}
		}

	case kindQuiz:
		if !s.engine.IsQuizUnlocked(ctx, item.quiz) {
			s.flash = "Locked. Finish the required videos first."
			return nil
		}
		quiz := item.quiz
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: newQuizScreen(s.engine, quiz)}
		}
	}
	return nil
}

func videoFlash(msg videoCompletedMsg) string {
	var parts []string
	if msg.wasWatched {
		parts = append(parts, fmt.Sprintf("Rewatched %s", msg.title))
	} else {
		parts = append(parts, fmt.Sprintf("Watched %s  +%d pts", msg.title, msg.completion.PointsEarned))
	}
	for _, a := range msg.completion.NewlyEarned {
		parts = append(parts, fmt.Sprintf("%s Unlocked: %s (+%d pts)", a.Icon, a.Title, a.Points))
	}
	return strings.Join(parts, "   ")
}

func (s *chapterScreen) View(width, height int) string {
	ctx := context.Background()
	rec := s.engine.Record(ctx)
	cw := components.ContentWidth(width)

	// Build display lines: a heading per chapter, then its rows.
	var lines []string
	lastChapter := ""
	for i, item := range s.items {
		if item.chapter.ID != lastChapter {
			lastChapter = item.chapter.ID
			heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
				Render(item.chapter.Title)
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, heading)
		}
		lines = append(lines, s.renderRow(ctx, rec, item, i == s.selected))
	}

	maxVisible := height - 4
	if maxVisible < 3 {
		maxVisible = 3
	}
	if len(lines) > maxVisible {
		start := s.scrollStart(len(lines), maxVisible)
		lines = lines[start:min(start+maxVisible, len(lines))]
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, line := range lines {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(cw).Render(line)))
		b.WriteString("\n")
	}

	if s.flash != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(s.flash)))
	}
	return b.String()
}

func (s *chapterScreen) renderRow(ctx context.Context, rec progress.Record, item rowItem, selected bool) string {
	prefix := "  "
	if selected {
		prefix = "▸ "
	}

	var icon, label, detail string
	var style lipgloss.Style
	switch item.kind {
	case kindVideo:
		complete := rec.VideoCompleted(progress.VideoKey(s.course.ID, item.chapter.ID, item.video.ID))
		unlocked := s.engine.IsVideoUnlocked(ctx, s.course.ID, item.chapter.ID, item.video.ID)
		label = fmt.Sprintf("%s (%s)", item.video.Title, item.video.Duration)
		detail = fmt.Sprintf("+%d pts", item.video.Points)
		switch {
		case complete:
			icon, style = "✓", theme.Completed
		case unlocked:
			icon, style = "▹", theme.Unselected
		default:
			icon, style = "🔒", theme.LockedItem
		}

	case kindQuiz:
		key := progress.QuizKey(item.quiz.CourseID, item.quiz.ChapterID, item.quiz.ID)
		unlocked := s.engine.IsQuizUnlocked(ctx, item.quiz)
		label = item.quiz.Title
		detail = fmt.Sprintf("pass %d%%  +%d pts", item.quiz.PassingScore, item.quiz.Points)
		if result, ok := rec.Quiz(key); ok {
			icon, style = "✓", theme.Completed
			detail = fmt.Sprintf("best %d%%  +%d pts", result.Score, item.quiz.Points)
		} else if unlocked {
			icon, style = "✎", theme.Unselected
		} else {
			icon, style = "🔒", theme.LockedItem
		}
	}

	if selected {
		style = style.Bold(true).Foreground(theme.Primary)
	}
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	return style.Render(fmt.Sprintf("%s%s %s", prefix, icon, label)) + "  " + dim.Render(detail)
}

// scrollStart keeps the selected row inside the visible window.
func (s *chapterScreen) scrollStart(total, visible int) int {
	// Selected index in lines is approximate (headings shift it); bias
	// toward keeping later rows visible once selection passes midpoint.
	start := s.selected - visible/2
	if start < 0 {
		start = 0
	}
	if start > total-visible {
		start = total - visible
	}
	return start
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

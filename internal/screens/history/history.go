package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/roeland/learntrack/internal/progress"
	"github.com/roeland/learntrack/internal/router"
	"github.com/roeland/learntrack/internal/screen"
	"github.com/roeland/learntrack/internal/store"
	"github.com/roeland/learntrack/internal/ui/layout"
	"github.com/roeland/learntrack/internal/ui/theme"
)

type historyLoadedMsg struct {
	Events []store.CompletionRecord
	Err    error
}

// HistoryScreen displays the completion event log, newest first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	events    []store.CompletionRecord
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		events, err := s.eventRepo.RecentCompletions(context.Background(), store.QueryOpts{Limit: 100})
		return historyLoadedMsg{Events: events, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing here yet. Go watch a video!")
	}

	maxVisible := height - 4
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := 0
	if s.selected >= maxVisible {
		start = s.selected - maxVisible + 1
	}
	end := start + maxVisible
	if end > len(s.events) {
		end = len(s.events)
	}

	var b strings.Builder
	b.WriteString("\n")
	for i := start; i < end; i++ {
		ev := s.events[i]

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s", prefix, ev.Timestamp.Format("Jan 02, 2006 15:04"), describe(ev))

		style := lipgloss.NewStyle().Foreground(eventColor(ev.EventType))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if end < len(s.events) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(s.events)-end)))
	}

	return b.String()
}

// describe renders one event log row body.
func describe(ev store.CompletionRecord) string {
	switch ev.EventType {
	case progress.EventVideo:
		return fmt.Sprintf("▶ watched %-36s +%d pts", ev.ItemKey, ev.PointsAwarded)
	case progress.EventQuiz:
		score := ""
		if ev.Score != nil {
			score = fmt.Sprintf(" scored %d%%", *ev.Score)
		}
		return fmt.Sprintf("✎ quiz %-32s%s  +%d pts", ev.ItemKey, score, ev.PointsAwarded)
	case progress.EventAchievement:
		return fmt.Sprintf("⬡ unlocked %-34s +%d pts", ev.ItemKey, ev.PointsAwarded)
	case progress.EventReset:
		return "↺ progress reset"
	default:
		return ev.ItemKey
	}
}

func eventColor(eventType string) color.Color {
	switch eventType {
	case progress.EventVideo:
		return theme.Primary
	case progress.EventQuiz:
		return theme.Secondary
	case progress.EventAchievement:
		return theme.Accent
	case progress.EventReset:
		return theme.Error
	default:
		return theme.Text
	}
}

package achievements

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/roeland/learntrack/internal/catalog"
	"github.com/roeland/learntrack/internal/progress"
	"github.com/roeland/learntrack/internal/screen"
	"github.com/roeland/learntrack/internal/ui/layout"
	"github.com/roeland/learntrack/internal/ui/theme"
)

// AchievementsScreen displays the achievement list with earned state.
type AchievementsScreen struct {
	cat          *catalog.Catalog
	engine       *progress.Engine
	scrollOffset int
}

var _ screen.Screen = (*AchievementsScreen)(nil)
var _ screen.KeyHintProvider = (*AchievementsScreen)(nil)

// New creates a new AchievementsScreen.
func New(cat *catalog.Catalog, engine *progress.Engine) *AchievementsScreen {
	return &AchievementsScreen{
		cat:    cat,
		engine: engine,
	}
}

func (s *AchievementsScreen) Init() tea.Cmd {
	return nil
}

func (s *AchievementsScreen) Title() string {
	return "Achievements"
}

func (s *AchievementsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.scrollOffset > 0 {
			s.scrollOffset--
		}
	case "down", "j":
		if s.scrollOffset < len(s.cat.Achievements())-1 {
			s.scrollOffset++
		}
	}
	return s, nil
}

func (s *AchievementsScreen) View(width, height int) string {
	all := s.cat.Achievements()
	rec := s.engine.Record(context.Background())

	earned := 0
	for _, a := range all {
		if rec.AchievementEarned(a.ID) {
			earned++
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nEarned %d of %d\n", earned, len(all))))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	maxVisible := height - 8
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := s.scrollOffset
	end := start + maxVisible
	if end > len(all) {
		end = len(all)
	}

	for i := start; i < end; i++ {
		a := all[i]
		line := fmt.Sprintf("  %s %-24s %-40s +%d pts", a.Icon, a.Title, a.Description, a.Points)

		style := theme.LockedItem
		if rec.AchievementEarned(a.ID) {
			style = theme.Earned
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if end < len(all) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(all)-end)))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

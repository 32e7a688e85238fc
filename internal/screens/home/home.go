package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/roeland/learntrack/internal/catalog"
	"github.com/roeland/learntrack/internal/progress"
	"github.com/roeland/learntrack/internal/router"
	"github.com/roeland/learntrack/internal/screen"
	"github.com/roeland/learntrack/internal/screens/achievements"
	"github.com/roeland/learntrack/internal/screens/courses"
	"github.com/roeland/learntrack/internal/screens/history"
	"github.com/roeland/learntrack/internal/store"
	"github.com/roeland/learntrack/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	engine  *progress.Engine
	summary progress.Summary
	level   int
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(cat *catalog.Catalog, engine *progress.Engine, events store.EventRepo) *HomeScreen {
	items := []components.MenuItem{
		{Label: "COURSES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: courses.New(cat, engine)}
			}
		}},
		{Label: "ACHIEVEMENTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: achievements.New(cat, engine)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(events)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h := &HomeScreen{
		engine: engine,
		menu:   components.NewMenu(items),
	}
	h.refresh()
	return h
}

// refresh recomputes the cached stats line from the engine.
func (h *HomeScreen) refresh() {
	ctx := context.Background()
	h.summary = h.engine.Stats(ctx)
	h.level = h.engine.Record(ctx).Level
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Completions happen on screens above this one, so the stats line is
	// recomputed whenever the screen regains input.
	if _, ok := msg.(tea.KeyMsg); ok {
		h.refresh()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height by adding
	// back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderBanner(cw, compact))
	sections = append(sections, components.StatsBox(renderStats(
		h.level,
		h.summary.TotalPoints,
		h.summary.WatchedVideos,
		h.summary.TotalVideos,
		h.summary.PercentComplete,
		h.summary.AchievementsUnlocked,
		compact,
	), cw))
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return components.CenteredFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/roeland/learntrack/internal/catalog"
	"github.com/roeland/learntrack/internal/progress"
	"github.com/roeland/learntrack/internal/router"
	"github.com/roeland/learntrack/internal/screen"
	"github.com/roeland/learntrack/internal/screens/home"
	"github.com/roeland/learntrack/internal/store"
	"github.com/roeland/learntrack/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Catalog   *catalog.Catalog
	Engine    *progress.Engine
	EventRepo store.EventRepo
}

// recordUpdatedMsg is delivered whenever the engine persists a new record.
type recordUpdatedMsg struct {
	record progress.Record
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	updates chan progress.Record
	level   int
	points  int
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Catalog, opts.Engine, opts.EventRepo)

	rec := opts.Engine.Record(context.Background())
	updates := make(chan progress.Record, 8)
	opts.Engine.Subscribe(func(r progress.Record) {
		select {
		case updates <- r:
		default:
		}
	})

	return AppModel{
		router:  router.New(homeScreen),
		updates: updates,
		level:   rec.Level,
		points:  rec.Points,
	}
}

// waitForUpdate blocks on the engine's subscription channel.
func (m AppModel) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		return recordUpdatedMsg{record: <-m.updates}
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.waitForUpdate()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case recordUpdatedMsg:
		m.level = msg.record.Level
		m.points = msg.record.Points
		return m, m.waitForUpdate()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.level, m.points, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

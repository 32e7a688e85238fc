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

type quizScoredMsg struct {
	score      int
	completion progress.Completion
}

// quizScreen records a quiz attempt by asking for the achieved score.
type quizScreen struct {
	engine *progress.Engine
	quiz   catalog.Quiz
	input  components.TextInput
	result *quizScoredMsg
}

var _ screen.Screen = (*quizScreen)(nil)
var _ screen.KeyHintProvider = (*quizScreen)(nil)

func newQuizScreen(engine *progress.Engine, quiz catalog.Quiz) *quizScreen {
	return &quizScreen{
		engine: engine,
		quiz:   quiz,
		input:  components.NewTextInput("0-100", true, 3),
	}
}

func (s *quizScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *quizScreen) Title() string {
	return s.quiz.Title
}

func (s *quizScreen) KeyHints() []layout.KeyHint {
	if s.result != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *quizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizScoredMsg:
		scored := msg
		s.result = &scored
		return s, nil

	case tea.KeyMsg:
		if s.result != nil {
			if msg.String() == "enter" {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return s, nil
		}

		if msg.String() == "enter" {
			score, err := s.input.NumericValue()
			if err != nil || score < 0 || score > 100 {
				s.input.Submit(false)
				return s, nil
			}
			s.input.Submit(true)
			quiz := s.quiz
			return s, func() tea.Msg {
				comp := s.engine.CompleteQuiz(context.Background(), quiz.CourseID, quiz.ChapterID, quiz.ID, score)
				return quizScoredMsg{score: score, completion: comp}
			}
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *quizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var lines []string
	lines = append(lines,
		theme.Title.Render(s.quiz.Title),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.quiz.Description),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("Passing score: %d%%   Reward: %d pts", s.quiz.PassingScore, s.quiz.Points)),
		"",
	)

	if s.result == nil {
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.Text).Render("Enter your score (0-100):"),
			"",
			s.input.View(),
		)
	} else {
		lines = append(lines, s.resultLines()...)
	}

	content := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
	return components.CenteredFrame(content, width, height)
}

func (s *quizScreen) resultLines() []string {
	res := s.result
	var lines []string

	if res.score >= s.quiz.PassingScore {
		lines = append(lines, theme.Completed.Render(fmt.Sprintf("Scored %d%% — passed!", res.score)))
	} else {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Error).
			Render(fmt.Sprintf("Scored %d%% — below the passing score", res.score)))
	}

	key := progress.QuizKey(s.quiz.CourseID, s.quiz.ChapterID, s.quiz.ID)
	if result, ok := res.completion.Record.Quiz(key); ok && result.Score > res.score {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("Best score remains %d%%", result.Score)))
	}

	if res.completion.PointsEarned > 0 {
		lines = append(lines, theme.Earned.Render(fmt.Sprintf("+%d pts", res.completion.PointsEarned)))
	}
	for _, a := range res.completion.NewlyEarned {
		lines = append(lines, theme.Earned.Render(
			fmt.Sprintf("%s Unlocked: %s (+%d pts)", a.Icon, a.Title, a.Points)))
	}

	lines = append(lines, "", theme.Hint.Render("Press Enter to continue"))
	return lines
}

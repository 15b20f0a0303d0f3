// Package challenge implements the write-it-yourself exercise: the
// learner authors a prompt for a generated scenario and gets a rubric
// report back. One graded submission per scenario.
package challenge

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptdojo/internal/content"
	"github.com/abhisek/promptdojo/internal/grader"
	"github.com/abhisek/promptdojo/internal/llm"
	"github.com/abhisek/promptdojo/internal/screen"
	"github.com/abhisek/promptdojo/internal/services"
	"github.com/abhisek/promptdojo/internal/ui/components"
	"github.com/abhisek/promptdojo/internal/ui/layout"
	"github.com/abhisek/promptdojo/internal/ui/theme"
)

const (
	generateTimeout = 90 * time.Second
	gradeTimeout    = 120 * time.Second
)

// scenarioReadyMsg delivers a generated challenge scenario.
type scenarioReadyMsg struct {
	Result content.Result
}

// reportReadyMsg delivers a grading report, or an authentication error.
type reportReadyMsg struct {
	Report  string
	AuthErr error
}

// ChallengeScreen drives the challenge round state machine.
type ChallengeScreen struct {
	bundle  *services.Bundle
	editor  components.PromptArea
	loading bool
	grading bool
	authErr string
	width   int
	height  int
}

var _ screen.Screen = (*ChallengeScreen)(nil)
var _ screen.KeyHintProvider = (*ChallengeScreen)(nil)

// New creates the challenge screen.
func New(bundle *services.Bundle) *ChallengeScreen {
	return &ChallengeScreen{
		bundle: bundle,
		editor: components.NewPromptArea("Write your prompt here...", 4000),
	}
}

func (s *ChallengeScreen) Init() tea.Cmd {
	return tea.Batch(s.requestScenario(), s.editor.Init())
}

func (s *ChallengeScreen) Title() string {
	return "Write-It-Yourself"
}

func (s *ChallengeScreen) KeyHints() []layout.KeyHint {
	round := s.bundle.Session.Challenge
	switch {
	case s.loading || s.grading:
		return nil
	case round.Graded:
		return []layout.KeyHint{
			{Key: "N", Description: "New challenge"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Ctrl+S", Description: "Submit for grading"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *ChallengeScreen) requestScenario() tea.Cmd {
	s.loading = true
	gen := s.bundle.Generator
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()
		return scenarioReadyMsg{Result: gen.Generate(ctx, content.KindChallenge)}
	}
}

func (s *ChallengeScreen) submit() tea.Cmd {
	round := s.bundle.Session.Challenge
	if !round.CanGrade() {
		return nil
	}
	prompt := strings.TrimSpace(s.editor.Value())
	if prompt == "" {
		return nil
	}

	s.grading = true
	s.authErr = ""
	g := s.bundle.Grader
	scenario := round.Current.Scenario

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), gradeTimeout)
		defer cancel()

		report, err := g.Grade(ctx, prompt, scenario)
		if err != nil {
			var auth *llm.ErrAuthentication
			if errors.As(err, &auth) {
				return reportReadyMsg{AuthErr: err}
			}
			// Grade folds other failures into the report itself; any
			// error reaching here is treated the same way.
			return reportReadyMsg{Report: "Error: " + err.Error()}
		}
		return reportReadyMsg{Report: report}
	}
}

func (s *ChallengeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	round := s.bundle.Session.Challenge

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.editor.SetSize(min(msg.Width-8, 100), 8)
		return s, nil

	case scenarioReadyMsg:
		s.loading = false
		if msg.Result.Challenge != nil {
			round.Begin(*msg.Result.Challenge)
		}
		s.editor.Reset()
		return s, s.editor.Focus()

	case reportReadyMsg:
		s.grading = false
		if msg.AuthErr != nil {
			// Credential rejected: no state transition, the scenario
			// stays gradeable once the key is fixed.
			s.bundle.HandleAuthFailure()
			s.authErr = msg.AuthErr.Error()
			return s, nil
		}
		_ = round.RecordReport(msg.Report)
		return s, nil

	case tea.KeyMsg:
		if s.loading || s.grading {
			return s, nil
		}
		if round.Graded {
			switch msg.String() {
			case "n", "N":
				return s, s.requestScenario()
			}
			return s, nil
		}
		switch msg.String() {
		case "ctrl+s":
			return s, s.submit()
		}
		var cmd tea.Cmd
		s.editor, cmd = s.editor.Update(msg)
		return s, cmd
	}

	if !s.loading && !s.grading && !round.Graded {
		var cmd tea.Cmd
		s.editor, cmd = s.editor.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *ChallengeScreen) View(width, height int) string {
	round := s.bundle.Session.Challenge

	if s.loading || round.Current == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Generating challenge..."))
	}
	if s.grading {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Grading your prompt..."))
	}
	if round.Graded {
		return renderReport(round.Report, width, height)
	}

	// Screens pushed after startup see no WindowSizeMsg until a resize.
	s.editor.SetSize(min(width-8, 100), 8)

	var sections []string
	sections = append(sections, theme.Selected.Render(round.Current.Title))
	sections = append(sections, "")

	scenario := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-8, 100)).
		Render(round.Current.Scenario)
	sections = append(sections, scenario)

	if len(round.Current.KeyElements) > 0 {
		sections = append(sections, "")
		sections = append(sections, theme.Subtitle.Render("Key elements to consider"))
		for i, el := range round.Current.KeyElements {
			sections = append(sections, theme.Hint.Render(fmt.Sprintf("  %d. %s", i+1, el)))
		}
	}

	sections = append(sections, "")
	sections = append(sections, s.editor.View())

	if s.authErr != "" {
		sections = append(sections, "")
		sections = append(sections, theme.Incorrect.Render(s.authErr))
		sections = append(sections, theme.Hint.Render("Fix your API key from the setup screen and try again."))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderReport draws a grading report with a tone-colored score line.
func renderReport(report string, width, height int) string {
	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-8, 100)).
		Render(report)

	var header string
	if score, ok := grader.ExtractScore(report); ok {
		style := theme.ScoreNeedsWork
		switch grader.ScoreTone(score) {
		case grader.ToneExcellent:
			style = theme.ScoreExcellent
		case grader.ToneGood:
			style = theme.ScoreGood
		}
		header = style.Render(fmt.Sprintf("%s Score: %d/20 %s",
			strings.Repeat("─", 12), score, strings.Repeat("─", 12)))
	} else {
		header = theme.Hint.Render(strings.Repeat("─", 32))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		header+"\n\n"+body)
}

// Package analyze implements free-form prompt critique: paste any
// prompt, get a rubric report back. Every analysis lands in the session
// history.
package analyze

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptdojo/internal/grader"
	"github.com/abhisek/promptdojo/internal/llm"
	"github.com/abhisek/promptdojo/internal/screen"
	"github.com/abhisek/promptdojo/internal/services"
	"github.com/abhisek/promptdojo/internal/trainer"
	"github.com/abhisek/promptdojo/internal/ui/components"
	"github.com/abhisek/promptdojo/internal/ui/layout"
	"github.com/abhisek/promptdojo/internal/ui/theme"
)

const gradeTimeout = 120 * time.Second

// analysisDoneMsg delivers the grading report for a submitted prompt.
type analysisDoneMsg struct {
	Prompt  string
	Report  string
	AuthErr error
}

// AnalyzeScreen drives the free-analysis state machine.
type AnalyzeScreen struct {
	bundle  *services.Bundle
	editor  components.PromptArea
	grading bool
	authErr string
}

var _ screen.Screen = (*AnalyzeScreen)(nil)
var _ screen.KeyHintProvider = (*AnalyzeScreen)(nil)

// New creates the analyze screen.
func New(bundle *services.Bundle) *AnalyzeScreen {
	return &AnalyzeScreen{
		bundle: bundle,
		editor: components.NewPromptArea("Paste the prompt you want feedback on...", 8000),
	}
}

func (s *AnalyzeScreen) Init() tea.Cmd {
	return s.editor.Init()
}

func (s *AnalyzeScreen) Title() string {
	return "Analyze My Prompt"
}

func (s *AnalyzeScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.grading:
		return nil
	case s.bundle.Session.LastAnalysis != nil:
		return []layout.KeyHint{
			{Key: "N", Description: "Analyze another"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Ctrl+S", Description: "Analyze"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *AnalyzeScreen) submit() tea.Cmd {
	prompt := strings.TrimSpace(s.editor.Value())
	if prompt == "" {
		return nil
	}

	s.grading = true
	s.authErr = ""
	g := s.bundle.Grader

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), gradeTimeout)
		defer cancel()

		report, err := g.Grade(ctx, prompt, "")
		if err != nil {
			var auth *llm.ErrAuthentication
			if errors.As(err, &auth) {
				return analysisDoneMsg{AuthErr: err}
			}
			return analysisDoneMsg{Prompt: prompt, Report: "Error: " + err.Error()}
		}
		return analysisDoneMsg{Prompt: prompt, Report: report}
	}
}

func (s *AnalyzeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.editor.SetSize(min(msg.Width-8, 100), 10)
		return s, nil

	case analysisDoneMsg:
		s.grading = false
		if msg.AuthErr != nil {
			s.bundle.HandleAuthFailure()
			s.authErr = msg.AuthErr.Error()
			return s, nil
		}
		s.bundle.Session.RecordAnalysis(msg.Prompt, msg.Report, time.Now())
		return s, nil

	case tea.KeyMsg:
		if s.grading {
			return s, nil
		}
		if s.bundle.Session.LastAnalysis != nil {
			switch msg.String() {
			case "n", "N":
				s.bundle.Session.LastAnalysis = nil
				s.editor.Reset()
				return s, s.editor.Focus()
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

	if !s.grading && s.bundle.Session.LastAnalysis == nil {
		var cmd tea.Cmd
		s.editor, cmd = s.editor.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *AnalyzeScreen) View(width, height int) string {
	if s.grading {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Analyzing your prompt..."))
	}

	if result := s.bundle.Session.LastAnalysis; result != nil {
		return renderResult(*result, width, height)
	}

	// Screens pushed after startup see no WindowSizeMsg until a resize.
	s.editor.SetSize(min(width-8, 100), 10)

	var sections []string
	sections = append(sections, theme.Body.Render("Paste a prompt below for a rubric-based critique."))
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

func renderResult(result trainer.AnalysisResult, width, height int) string {
	var header string
	if result.HasScore {
		style := theme.ScoreNeedsWork
		switch result.Tone() {
		case grader.ToneExcellent:
			style = theme.ScoreExcellent
		case grader.ToneGood:
			style = theme.ScoreGood
		}
		header = style.Render(fmt.Sprintf("Score: %d/20", result.Score))
	} else {
		header = theme.Hint.Render("No score available")
	}

	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-8, 100)).
		Render(result.Report)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		header+"\n\n"+body)
}

// Package compare implements the "spot the stronger prompt" quiz: ten
// questions, each showing two prompts for the same scenario on randomly
// assigned sides.
package compare

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptdojo/internal/content"
	"github.com/abhisek/promptdojo/internal/screen"
	"github.com/abhisek/promptdojo/internal/services"
	"github.com/abhisek/promptdojo/internal/trainer"
	"github.com/abhisek/promptdojo/internal/ui/components"
	"github.com/abhisek/promptdojo/internal/ui/layout"
	"github.com/abhisek/promptdojo/internal/ui/theme"
)

const generateTimeout = 90 * time.Second

// questionReadyMsg delivers a generated question.
type questionReadyMsg struct {
	Result content.Result
}

// CompareScreen runs the quiz against the shared session state.
type CompareScreen struct {
	bundle   *services.Bundle
	loading  bool
	selected trainer.Side
}

var _ screen.Screen = (*CompareScreen)(nil)
var _ screen.KeyHintProvider = (*CompareScreen)(nil)

// New creates the quiz screen.
func New(bundle *services.Bundle) *CompareScreen {
	return &CompareScreen{
		bundle:   bundle,
		selected: trainer.SideA,
	}
}

func (c *CompareScreen) Init() tea.Cmd {
	return c.requestQuestion()
}

func (c *CompareScreen) Title() string {
	return "Spot the Stronger Prompt"
}

func (c *CompareScreen) quiz() *trainer.Quiz {
	return c.bundle.Session.Quiz
}

func (c *CompareScreen) KeyHints() []layout.KeyHint {
	q := c.quiz()
	switch {
	case q.Complete():
		return []layout.KeyHint{
			{Key: "R", Description: "Play again"},
			{Key: "Esc", Description: "Back"},
		}
	case c.loading:
		return nil
	case q.FeedbackShown:
		return []layout.KeyHint{
			{Key: "any key", Description: "Next question"},
		}
	default:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose side"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (c *CompareScreen) requestQuestion() tea.Cmd {
	if c.quiz().Complete() {
		return nil
	}
	c.loading = true
	gen := c.bundle.Generator
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()
		return questionReadyMsg{Result: gen.Generate(ctx, content.KindAB)}
	}
}

func (c *CompareScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		c.loading = false
		if msg.Result.AB != nil {
			// Generation is total; an error surfaced as fallback content
			// still yields a playable question.
			_ = c.quiz().BeginQuestion(*msg.Result.AB)
		}
		c.selected = trainer.SideA
		return c, nil

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	return c, nil
}

func (c *CompareScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	q := c.quiz()

	if q.Complete() {
		switch msg.String() {
		case "r", "R":
			q.Reset()
			return c, c.requestQuestion()
		}
		return c, nil
	}

	if c.loading || q.Current == nil {
		return c, nil
	}

	if q.FeedbackShown {
		if err := q.Advance(); err != nil {
			return c, nil
		}
		if q.Complete() {
			return c, nil
		}
		return c, c.requestQuestion()
	}

	switch msg.String() {
	case "left", "h", "a":
		c.selected = trainer.SideA
	case "right", "l", "b":
		c.selected = trainer.SideB
	case "enter":
		_ = q.Answer(c.selected)
	}

	return c, nil
}

func (c *CompareScreen) View(width, height int) string {
	q := c.quiz()

	if q.Complete() {
		return c.renderComplete(width, height)
	}
	if c.loading || q.Current == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Generating question..."))
	}

	var sections []string

	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", q.Index+1, trainer.QuizLength),
		float64(q.Index)/float64(trainer.QuizLength),
		false,
		min(width-8, 60),
	)
	sections = append(sections, progress.View())
	sections = append(sections, "")

	sections = append(sections, theme.Body.Render("Scenario: "+q.Current.Scenario))
	sections = append(sections, "")
	sections = append(sections, c.renderOptions(width))

	if q.FeedbackShown {
		sections = append(sections, "")
		sections = append(sections, c.renderFeedback(width))
	} else {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("Which prompt will get better results?"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (c *CompareScreen) renderOptions(width int) string {
	q := c.quiz()

	cardWidth := (width - 12) / 2
	if cardWidth < 24 {
		cardWidth = 24
	}
	if cardWidth > 56 {
		cardWidth = 56
	}

	cardA := c.renderCard("Prompt A", q.OptionA(), c.selected == trainer.SideA, cardWidth)
	cardB := c.renderCard("Prompt B", q.OptionB(), c.selected == trainer.SideB, cardWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, cardA, "  ", cardB)
}

func (c *CompareScreen) renderCard(label, prompt string, selected bool, width int) string {
	style := theme.Card.Width(width)
	labelStyle := theme.Unselected
	if selected {
		style = theme.CardSelected.Width(width)
		labelStyle = theme.Selected
	}
	return style.Render(labelStyle.Render(label) + "\n\n" + prompt)
}

func (c *CompareScreen) renderFeedback(width int) string {
	q := c.quiz()

	var verdict string
	if q.LastCorrect {
		verdict = theme.Correct.Render("Correct!")
	} else {
		verdict = theme.Incorrect.Render(fmt.Sprintf("Not quite — the stronger prompt was %s.", q.CorrectSide))
	}

	explain := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(min(width-8, 100)).
		Render(q.Current.Explanation)

	return verdict + "\n\n" + explain
}

func (c *CompareScreen) renderComplete(width, height int) string {
	q := c.quiz()

	tone := theme.ScoreNeedsWork
	note := "Keep practicing!"
	switch {
	case q.Score >= 7:
		tone = theme.ScoreExcellent
		note = "Excellent prompt instincts!"
	case q.Score >= 5:
		tone = theme.ScoreGood
		note = "Good eye — room to sharpen."
	}

	var sections []string
	sections = append(sections, theme.Title.Render("Quiz Complete"))
	sections = append(sections, "")
	sections = append(sections, tone.Render(fmt.Sprintf("Score: %d / %d", q.Score, trainer.QuizLength)))
	sections = append(sections, "")
	sections = append(sections, theme.Body.Render(note))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Package history lists the session's past prompt analyses.
package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptdojo/internal/grader"
	"github.com/abhisek/promptdojo/internal/screen"
	"github.com/abhisek/promptdojo/internal/trainer"
	"github.com/abhisek/promptdojo/internal/ui/layout"
	"github.com/abhisek/promptdojo/internal/ui/theme"
)

// HistoryScreen shows recent analyses, newest first, with a detail view.
type HistoryScreen struct {
	log      *trainer.HistoryLog
	selected int
	detail   bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.EscHandler = (*HistoryScreen)(nil)

// New creates the history screen over the session's log.
func New(log *trainer.HistoryLog) *HistoryScreen {
	return &HistoryScreen{log: log}
}

func (h *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (h *HistoryScreen) Title() string {
	return "Session History"
}

// HandlesEsc reports whether Esc should return to the list instead of
// leaving the screen.
func (h *HistoryScreen) HandlesEsc() bool {
	return h.detail
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	if h.detail {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back to list"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "View report"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	entries := h.log.Entries()

	if h.detail {
		if kmsg.String() == "esc" {
			h.detail = false
		}
		return h, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if h.selected > 0 {
			h.selected--
		}
	case "down", "j":
		if h.selected < len(entries)-1 {
			h.selected++
		}
	case "enter":
		if len(entries) > 0 {
			h.detail = true
		}
	}

	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	entries := h.log.Entries()

	if len(entries) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No prompts analyzed yet this session."))
	}

	if h.detail && h.selected < len(entries) {
		return h.renderDetail(entries[h.selected], width, height)
	}

	var lines []string
	lines = append(lines, theme.Subtitle.Render(fmt.Sprintf("%d analysis result(s), newest first", len(entries))))
	lines = append(lines, "")

	for i, e := range entries {
		line := h.renderRow(e, i == h.selected, width)
		lines = append(lines, line)
	}

	content := strings.Join(lines, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HistoryScreen) renderRow(e trainer.AnalysisResult, selected bool, width int) string {
	score := "  --  "
	scoreStyle := theme.Hint
	if e.HasScore {
		score = fmt.Sprintf("%2d/20", e.Score)
		switch e.Tone() {
		case grader.ToneExcellent:
			scoreStyle = theme.ScoreExcellent
		case grader.ToneGood:
			scoreStyle = theme.ScoreGood
		default:
			scoreStyle = theme.ScoreNeedsWork
		}
	}

	preview := e.TruncatedPrompt
	maxPreview := min(width-30, 70)
	if maxPreview > 0 {
		runes := []rune(preview)
		if len(runes) > maxPreview {
			preview = string(runes[:maxPreview]) + "…"
		}
	}

	prefix := "  "
	textStyle := theme.Unselected
	if selected {
		prefix = "▸ "
		textStyle = theme.Selected
	}

	return prefix +
		theme.Hint.Render(e.Timestamp.Format("15:04")) + "  " +
		scoreStyle.Render(score) + "  " +
		textStyle.Render(preview)
}

func (h *HistoryScreen) renderDetail(e trainer.AnalysisResult, width, height int) string {
	var sections []string

	sections = append(sections, theme.Hint.Render("Analyzed at "+e.Timestamp.Format("15:04:05")))
	sections = append(sections, "")
	sections = append(sections, theme.Selected.Render("Prompt"))
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(min(width-8, 100)).
		Render(e.Prompt))
	sections = append(sections, "")
	sections = append(sections, theme.Selected.Render("Report"))
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-8, 100)).
		Render(e.Report))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

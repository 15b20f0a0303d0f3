// Package home implements the lesson menu.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptdojo/internal/router"
	"github.com/abhisek/promptdojo/internal/screen"
	"github.com/abhisek/promptdojo/internal/screens/analyze"
	"github.com/abhisek/promptdojo/internal/screens/challenge"
	"github.com/abhisek/promptdojo/internal/screens/compare"
	"github.com/abhisek/promptdojo/internal/screens/history"
	"github.com/abhisek/promptdojo/internal/screens/welcome"
	"github.com/abhisek/promptdojo/internal/services"
	"github.com/abhisek/promptdojo/internal/trainer"
	"github.com/abhisek/promptdojo/internal/ui/components"
	"github.com/abhisek/promptdojo/internal/ui/theme"
)

// HomeScreen is the lesson menu shown after setup.
type HomeScreen struct {
	bundle *services.Bundle
	menu   components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(bundle *services.Bundle) *HomeScreen {
	h := &HomeScreen{bundle: bundle}

	// Lessons need a working pipeline. The bundle loses it when the
	// user re-enters provider setup and backs out before configuring,
	// so every lesson action routes back to setup until Ready.
	lesson := func(l trainer.Lesson, build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			if !bundle.Ready() {
				return push(welcome.New(bundle, nil))
			}
			bundle.Session.ChangeLesson(l)
			return push(build())
		}
	}

	items := []components.MenuItem{
		{Label: "SPOT THE STRONGER PROMPT", Action: lesson(trainer.LessonCompare, func() screen.Screen {
			return compare.New(bundle)
		})},
		{Label: "WRITE-IT-YOURSELF CHALLENGE", Action: lesson(trainer.LessonChallenge, func() screen.Screen {
			return challenge.New(bundle)
		})},
		{Label: "ANALYZE MY PROMPT", Action: lesson(trainer.LessonAnalyze, func() screen.Screen {
			return analyze.New(bundle)
		})},
		{Label: "SESSION HISTORY", Action: func() tea.Cmd {
			return push(history.New(bundle.Session.History))
		}},
		{Label: "PROVIDER SETUP", Action: func() tea.Cmd {
			return push(welcome.New(bundle, nil))
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("Prompt Dojo"))
	sections = append(sections, theme.Subtitle.Render("Pick a lesson"))
	sections = append(sections, "")
	sections = append(sections, h.menu.View())
	sections = append(sections, "")
	sections = append(sections, h.statusLine())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) statusLine() string {
	cfg := h.bundle.Session.Config
	var status string
	if cfg.DemoMode {
		status = "Demo mode"
	} else {
		status = cfg.Provider.Display()
	}

	analyzed := h.bundle.Session.History.Len()
	line := fmt.Sprintf("%s  ·  %d prompt(s) analyzed this session", status, analyzed)
	return theme.Hint.Render(line)
}

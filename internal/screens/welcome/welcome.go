// Package welcome implements the provider setup flow shown at startup:
// pick a provider, paste an API key, test the connection, or skip into
// demo mode.
package welcome

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptdojo/internal/router"
	"github.com/abhisek/promptdojo/internal/screen"
	"github.com/abhisek/promptdojo/internal/services"
	"github.com/abhisek/promptdojo/internal/trainer"
	"github.com/abhisek/promptdojo/internal/ui/components"
	"github.com/abhisek/promptdojo/internal/ui/layout"
	"github.com/abhisek/promptdojo/internal/ui/theme"
)

const verifyTimeout = 30 * time.Second

type phase int

const (
	phasePickProvider phase = iota
	phaseEnterKey
	phaseVerifying
)

// verifyDoneMsg reports the outcome of the connection test.
type verifyDoneMsg struct {
	Err error
}

// WelcomeScreen walks the user through provider configuration.
type WelcomeScreen struct {
	bundle      *services.Bundle
	homeFactory func() screen.Screen

	phase    phase
	menu     components.Menu
	keyInput components.TextInput
	errMsg   string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)
var _ screen.EscHandler = (*WelcomeScreen)(nil)

// New creates the setup screen. On completion it replaces itself with
// the screen produced by homeFactory. A nil homeFactory means the screen
// was pushed mid-session; it pops back instead.
func New(bundle *services.Bundle, homeFactory func() screen.Screen) *WelcomeScreen {
	w := &WelcomeScreen{
		bundle:      bundle,
		homeFactory: homeFactory,
		keyInput:    components.NewTextInput("Paste your API key...", true, 256),
	}
	w.menu = components.NewMenu(w.providerItems())
	return w
}

func (w *WelcomeScreen) providerItems() []components.MenuItem {
	providers := []trainer.Provider{
		trainer.ProviderOpenAI,
		trainer.ProviderGemini,
		trainer.ProviderAnthropic,
	}
	items := make([]components.MenuItem, 0, len(providers)+1)
	for _, p := range providers {
		items = append(items, components.MenuItem{
			Label:  p.Display(),
			Action: w.selectProvider(p),
		})
	}
	items = append(items, components.MenuItem{
		Label: "Demo mode (no API key)",
		Action: func() tea.Cmd {
			w.bundle.EnableDemo()
			return w.enterHome()
		},
	})
	return items
}

func (w *WelcomeScreen) selectProvider(p trainer.Provider) func() tea.Cmd {
	return func() tea.Cmd {
		w.bundle.SwitchProvider(p)
		w.phase = phaseEnterKey
		w.errMsg = ""
		w.keyInput.Reset()
		return w.keyInput.Init()
	}
}

func (w *WelcomeScreen) enterHome() tea.Cmd {
	if w.homeFactory == nil {
		return func() tea.Msg {
			return router.PopScreenMsg{}
		}
	}
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (w *WelcomeScreen) Title() string {
	return "Setup"
}

// HandlesEsc keeps Esc inside the screen while entering a key so it
// steps back to the provider list.
func (w *WelcomeScreen) HandlesEsc() bool {
	return w.phase == phaseEnterKey
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	switch w.phase {
	case phaseEnterKey:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Test connection"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseVerifying:
		return []layout.KeyHint{}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case verifyDoneMsg:
		if msg.Err != nil {
			w.phase = phaseEnterKey
			w.errMsg = msg.Err.Error()
			w.keyInput.Submit(false)
			return w, nil
		}
		return w, w.enterHome()

	case tea.KeyMsg:
		switch w.phase {
		case phasePickProvider:
			var cmd tea.Cmd
			w.menu, cmd = w.menu.Update(msg)
			return w, cmd

		case phaseEnterKey:
			switch msg.String() {
			case "esc":
				w.phase = phasePickProvider
				w.errMsg = ""
				return w, nil
			case "enter":
				key := strings.TrimSpace(w.keyInput.Value())
				if key == "" {
					w.errMsg = "API key cannot be empty"
					return w, nil
				}
				w.phase = phaseVerifying
				w.errMsg = ""
				return w, w.verify(key)
			}
			var cmd tea.Cmd
			w.keyInput, cmd = w.keyInput.Update(msg)
			return w, cmd
		}
	}

	if w.phase == phaseEnterKey {
		var cmd tea.Cmd
		w.keyInput, cmd = w.keyInput.Update(msg)
		return w, cmd
	}

	return w, nil
}

func (w *WelcomeScreen) verify(key string) tea.Cmd {
	bundle := w.bundle
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
		defer cancel()
		return verifyDoneMsg{Err: bundle.Configure(ctx, key)}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("Prompt Dojo"))
	sections = append(sections, theme.Subtitle.Render("Train your prompt-writing skill"))
	sections = append(sections, "")

	switch w.phase {
	case phasePickProvider:
		sections = append(sections, theme.Body.Render("Choose your LLM provider:"))
		sections = append(sections, "")
		sections = append(sections, w.menu.View())

	case phaseEnterKey:
		label := w.bundle.Session.Config.Provider.Display()
		sections = append(sections, theme.Body.Render(label+" API key:"))
		sections = append(sections, "")
		sections = append(sections, w.keyInput.View())
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("The key is kept in memory only and never saved."))

	case phaseVerifying:
		sections = append(sections, theme.Body.Render("Testing connection..."))
	}

	if w.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, theme.Incorrect.Render(w.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

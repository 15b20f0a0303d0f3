package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptdojo/internal/router"
	"github.com/abhisek/promptdojo/internal/screen"
	"github.com/abhisek/promptdojo/internal/screens/home"
	"github.com/abhisek/promptdojo/internal/screens/welcome"
	"github.com/abhisek/promptdojo/internal/services"
	"github.com/abhisek/promptdojo/internal/ui/layout"
)

// Options configures the TUI at startup.
type Options struct {
	Bundle *services.Bundle

	// SkipSetup starts on the home screen directly. Used when a
	// provider was already configured from the environment.
	SkipSetup bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	bundle *services.Bundle
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with either the setup flow or
// the home screen as the root.
func newAppModel(opts Options) AppModel {
	bundle := opts.Bundle

	var root screen.Screen
	if opts.SkipSetup {
		root = home.New(bundle)
	} else {
		root = welcome.New(bundle, func() screen.Screen {
			return home.New(bundle)
		})
	}

	return AppModel{
		bundle: bundle,
		router: router.New(root),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Screens with editors size themselves from this message too.
		cmd := m.router.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
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

	cfg := m.bundle.Session.Config
	provider := ""
	if cfg.Ready() && !cfg.DemoMode {
		provider = cfg.Provider.Display()
	}
	header := layout.RenderHeader(title, provider, cfg.DemoMode, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
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

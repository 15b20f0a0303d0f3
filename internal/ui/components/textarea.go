package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// PromptArea wraps bubbles/textarea for multi-line prompt authoring.
type PromptArea struct {
	Model textarea.Model
}

// NewPromptArea creates a new prompt editing area.
func NewPromptArea(placeholder string, charLimit int) PromptArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	if charLimit > 0 {
		ta.CharLimit = charLimit
	}
	ta.Focus()

	return PromptArea{Model: ta}
}

// Init returns the initial command.
func (p PromptArea) Init() tea.Cmd {
	return p.Model.Focus()
}

// Update handles messages.
func (p PromptArea) Update(msg tea.Msg) (PromptArea, tea.Cmd) {
	var cmd tea.Cmd
	p.Model, cmd = p.Model.Update(msg)
	return p, cmd
}

// View renders the area.
func (p PromptArea) View() string {
	return p.Model.View()
}

// Value returns the current text.
func (p PromptArea) Value() string {
	return p.Model.Value()
}

// Reset clears the area.
func (p *PromptArea) Reset() {
	p.Model.SetValue("")
}

// SetSize adjusts the visible dimensions.
func (p *PromptArea) SetSize(width, height int) {
	p.Model.SetWidth(width)
	p.Model.SetHeight(height)
}

// Focused reports whether the area has focus.
func (p PromptArea) Focused() bool {
	return p.Model.Focused()
}

// Focus gives the area focus.
func (p *PromptArea) Focus() tea.Cmd {
	return p.Model.Focus()
}

// Blur removes focus.
func (p *PromptArea) Blur() {
	p.Model.Blur()
}

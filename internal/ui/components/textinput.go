package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// ChatInput wraps bubbles/textinput for follow-up questions.
type ChatInput struct {
	Model    textinput.Model
	disabled bool
}

// NewChatInput creates a focused chat input. charLimit <= 0 means no limit.
func NewChatInput(placeholder string, charLimit int) ChatInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return ChatInput{Model: ti}
}

// Init returns the initial command.
func (c ChatInput) Init() tea.Cmd {
	return c.Model.Focus()
}

// Update forwards messages to the text input unless it is disabled.
func (c ChatInput) Update(msg tea.Msg) (ChatInput, tea.Cmd) {
	if c.disabled {
		return c, nil
	}
	var cmd tea.Cmd
	c.Model, cmd = c.Model.Update(msg)
	return c, cmd
}

// View renders the input.
func (c ChatInput) View() string {
	return c.Model.View()
}

// Value returns the trimmed input text.
func (c ChatInput) Value() string {
	return strings.TrimSpace(c.Model.Value())
}

// Reset clears the input.
func (c *ChatInput) Reset() {
	c.Model.SetValue("")
}

// SetDisabled stops the input from accepting keystrokes while a reply is
// pending.
func (c *ChatInput) SetDisabled(disabled bool) {
	c.disabled = disabled
}

// Disabled reports whether the input is ignoring keystrokes.
func (c ChatInput) Disabled() bool {
	return c.disabled
}

package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// AnswerArea wraps bubbles/textarea for multi-line interview answers.
type AnswerArea struct {
	Model textarea.Model
}

// NewAnswerArea creates a focused answer area sized for the interview
// screen.
func NewAnswerArea(width, height int) AnswerArea {
	ta := textarea.New()
	ta.Placeholder = "Type your answer..."
	ta.ShowLineNumbers = false
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.Focus()
	return AnswerArea{Model: ta}
}

// Init returns the initial command.
func (a AnswerArea) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages.
func (a AnswerArea) Update(msg tea.Msg) (AnswerArea, tea.Cmd) {
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the answer area.
func (a AnswerArea) View() string {
	return a.Model.View()
}

// Value returns the current answer text.
func (a AnswerArea) Value() string {
	return a.Model.Value()
}

// SetSize resizes the answer area.
func (a *AnswerArea) SetSize(width, height int) {
	a.Model.SetWidth(width)
	a.Model.SetHeight(height)
}

// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/styles"
)

// labelWidth keeps labels of stacked fields aligned.
const labelWidth = 8

// Field is a labelled single-line input.
type Field struct {
	label     string
	textinput textinput.Model
	styles    *styles.Styles
}

// NewField creates an unfocused field with the given label and placeholder.
func NewField(s *styles.Styles, label, placeholder string) *Field {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 128
	ti.Width = 40

	return &Field{
		label:     label,
		textinput: ti,
		styles:    s,
	}
}

// Update handles input messages. Unfocused fields ignore key presses.
func (f *Field) Update(msg tea.Msg) (*Field, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the label and framed input.
func (f *Field) View() string {
	label := f.styles.Label.Width(labelWidth).Render(f.label)
	frame := f.styles.Input
	if f.textinput.Focused() {
		frame = f.styles.FocusedInput
	}
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, frame.Render(f.textinput.View()))
}

// Label returns the field label.
func (f *Field) Label() string {
	return f.label
}

// Value returns the current input value.
func (f *Field) Value() string {
	return f.textinput.Value()
}

// SetValue sets the input value.
func (f *Field) SetValue(value string) {
	f.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (f *Field) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the input.
func (f *Field) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the input is focused.
func (f *Field) Focused() bool {
	return f.textinput.Focused()
}

// SetWidth sets the input width, leaving room for the label and frame.
func (f *Field) SetWidth(width int) {
	f.textinput.Width = max(width-labelWidth-4, 10)
}

// Reset clears the input.
func (f *Field) Reset() {
	f.textinput.Reset()
}

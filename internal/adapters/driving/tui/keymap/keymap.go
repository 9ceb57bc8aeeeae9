// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Quit key.Binding
	Back key.Binding
	Up   key.Binding
	Down key.Binding

	// Select confirms a menu choice.
	Select key.Binding

	// NextField and PrevField move focus between converter inputs.
	NextField key.Binding
	PrevField key.Binding

	// Convert runs the conversion in the converter view.
	Convert key.Binding

	// Swap exchanges the from and to units.
	Swap key.Binding

	// NextCategory and PrevCategory page through unit categories.
	NextCategory key.Binding
	PrevCategory key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Convert: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "convert"),
		),
		Swap: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "swap units"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous category"),
		),
	}
}

// ShortHelp returns the bindings shown on the menu.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Quit}
}

// ConvertHelp returns the bindings shown in the converter view.
func (k *KeyMap) ConvertHelp() []key.Binding {
	return []key.Binding{k.Convert, k.NextField, k.Swap, k.Back}
}

// UnitsHelp returns the bindings shown in the units view.
func (k *KeyMap) UnitsHelp() []key.Binding {
	return []key.Binding{k.PrevCategory, k.NextCategory, k.Up, k.Down, k.Back}
}

// FullHelp returns every binding grouped for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Convert, k.NextField, k.PrevField, k.Swap},
		{k.PrevCategory, k.NextCategory},
		{k.Back, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}

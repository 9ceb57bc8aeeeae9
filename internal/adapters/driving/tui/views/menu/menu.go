// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/styles"
)

// Item represents a single menu option.
type Item struct {
	Label       string
	Description string
	View        messages.ViewType
	Quit        bool
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	items    []Item
	selected int
	width    int
	height   int
}

// NewView creates a new menu view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		items: []Item{
			{Label: "Convert", Description: "convert a value between units", View: messages.ViewConvert},
			{Label: "Units", Description: "browse units by category", View: messages.ViewUnits},
			{Label: "Help", Description: "keybindings", View: messages.ViewHelp},
			{Label: "Quit", Quit: true},
		},
		width:  80,
		height: 24,
	}
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch k := keyMsg.String(); {
	case keymap.Matches(k, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(k, v.keymap.Down):
		if v.selected < len(v.items)-1 {
			v.selected++
		}
	case keymap.Matches(k, v.keymap.Select):
		item := v.items[v.selected]
		if item.Quit {
			return v, tea.Quit
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: item.View}
		}
	case keymap.Matches(k, v.keymap.Quit):
		return v, tea.Quit
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("propunit"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Unit-aware property conversion"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		line := "  " + v.styles.Normal.Render(item.Label)
		if i == v.selected {
			line = "> " + v.styles.Selected.Render(item.Label)
		}
		if item.Description != "" {
			line += "  " + v.styles.Muted.Render(item.Description)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette of the TUI.
type Theme struct {
	Accent    lipgloss.Color
	Highlight lipgloss.Color
	Text      lipgloss.Color
	Subtle    lipgloss.Color
	Good      lipgloss.Color
	Bad       lipgloss.Color
	Frame     lipgloss.Color
	Bar       lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#7C3AED"),
		Highlight: lipgloss.Color("#06B6D4"),
		Text:      lipgloss.Color("#CDD6F4"),
		Subtle:    lipgloss.Color("#6C7086"),
		Good:      lipgloss.Color("#A6E3A1"),
		Bad:       lipgloss.Color("#F38BA8"),
		Frame:     lipgloss.Color("#45475A"),
		Bar:       lipgloss.Color("#181825"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Label    lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style

	// Value and Unit render conversion results.
	Value lipgloss.Style
	Unit  lipgloss.Style

	// Input frames an unfocused field, FocusedInput the active one.
	Input        lipgloss.Style
	FocusedInput lipgloss.Style

	// Tab and ActiveTab render the category strip of the units view.
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style

	StatusBar lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	input := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Frame).
		Padding(0, 1)

	return &Styles{
		theme: theme,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		Label:    lipgloss.NewStyle().Bold(true).Foreground(theme.Highlight),
		Normal:   lipgloss.NewStyle().Foreground(theme.Text),
		Muted:    lipgloss.NewStyle().Foreground(theme.Subtle),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Background(theme.Accent),
		Error:    lipgloss.NewStyle().Foreground(theme.Bad),

		Value: lipgloss.NewStyle().Bold(true).Foreground(theme.Good),
		Unit:  lipgloss.NewStyle().Foreground(theme.Highlight),

		Input:        input,
		FocusedInput: input.BorderForeground(theme.Accent),

		Tab:       lipgloss.NewStyle().Foreground(theme.Subtle).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Background(theme.Accent).Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Subtle).
			Background(theme.Bar).
			Padding(0, 1),

		Help: lipgloss.NewStyle().Foreground(theme.Subtle),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/propunit/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewConvert is the interactive converter.
	ViewConvert
	// ViewUnits browses units by category.
	ViewUnits
	// ViewHelp lists keybindings.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewConvert:
		return "convert"
	case ViewUnits:
		return "units"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ConversionCompleted carries the outcome of a conversion back to the model.
type ConversionCompleted struct {
	Result domain.Property
	Err    error
}

// UnitsLoaded carries the units of one category.
type UnitsLoaded struct {
	Category domain.Category
	Units    []domain.Descriptor
	Err      error
}

// Quit requests application exit.
type Quit struct{}

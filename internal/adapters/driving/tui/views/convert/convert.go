// Package convert provides the interactive converter view for the TUI.
package convert

import (
	"context"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/propunit/internal/core/domain"
	"github.com/custodia-labs/propunit/internal/core/ports/driving"
)

// Field indexes.
const (
	fieldValue = iota
	fieldFrom
	fieldTo
	fieldCount
)

// View converts a value between two unit expressions. An empty target
// converts to SI.
type View struct {
	ctx        context.Context
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	conversion driving.ConversionService

	fields  [fieldCount]*input.Field
	focus   int
	status  *status.Bar
	result  *domain.Property
	err     error
	pending bool
	width   int
}

// NewView creates a converter view.
func NewView(ctx context.Context, s *styles.Styles, km *keymap.KeyMap, conversion driving.ConversionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		ctx:        ctx,
		styles:     s,
		keymap:     km,
		conversion: conversion,
		status:     status.NewBar(s, km.ConvertHelp()),
		width:      80,
	}
	v.fields[fieldValue] = input.NewField(s, "Value", "e.g. 50")
	v.fields[fieldFrom] = input.NewField(s, "From", "e.g. W m^-2 K^-1")
	v.fields[fieldTo] = input.NewField(s, "To", "empty for SI")
	return v
}

// Init focuses the first field.
func (v *View) Init() tea.Cmd {
	return v.setFocus(fieldValue)
}

// Update handles messages for the converter view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.ConversionCompleted:
		v.pending = false
		if msg.Err != nil {
			v.result = nil
			v.err = msg.Err
			v.status.SetState(status.StateError, msg.Err.Error())
			return v, nil
		}
		result := msg.Result
		v.result = &result
		v.err = nil
		v.status.SetState(status.StateDone, result.String())
		return v, nil

	case tea.KeyMsg:
		switch k := msg.String(); {
		case keymap.Matches(k, v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case keymap.Matches(k, v.keymap.NextField):
			return v, v.setFocus((v.focus + 1) % fieldCount)
		case keymap.Matches(k, v.keymap.PrevField):
			return v, v.setFocus((v.focus + fieldCount - 1) % fieldCount)
		case keymap.Matches(k, v.keymap.Swap):
			from, to := v.fields[fieldFrom].Value(), v.fields[fieldTo].Value()
			v.fields[fieldFrom].SetValue(to)
			v.fields[fieldTo].SetValue(from)
			return v, nil
		case keymap.Matches(k, v.keymap.Convert):
			return v, v.convert()
		}
	}

	var cmd tea.Cmd
	v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
	return v, cmd
}

func (v *View) setFocus(i int) tea.Cmd {
	for _, f := range v.fields {
		f.Blur()
	}
	v.focus = i
	return v.fields[i].Focus()
}

// convert validates the form and returns a command that runs the conversion.
func (v *View) convert() tea.Cmd {
	raw := strings.TrimSpace(v.fields[fieldValue].Value())
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		v.err = domain.ErrInvalidInput
		v.result = nil
		v.status.SetState(status.StateError, "value must be a number")
		return nil
	}

	if v.conversion == nil {
		v.status.SetState(status.StateError, "conversion service not configured")
		return nil
	}

	from := v.fields[fieldFrom].Value()
	to := strings.TrimSpace(v.fields[fieldTo].Value())
	conversion := v.conversion
	ctx := v.ctx

	v.pending = true
	v.status.SetState(status.StateConverting, "")

	return func() tea.Msg {
		var result domain.Property
		var err error
		if to == "" {
			result, err = conversion.ToSI(ctx, value, from)
		} else {
			result, err = conversion.Convert(ctx, value, from, to)
		}
		return messages.ConversionCompleted{Result: result, Err: err}
	}
}

// View renders the converter.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Convert"))
	b.WriteString("\n\n")

	for _, f := range v.fields {
		b.WriteString(f.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case v.pending:
		b.WriteString(v.styles.Muted.Render("converting..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(v.err.Error()))
	case v.result != nil:
		b.WriteString(v.styles.Value.Render(strconv.FormatFloat(v.result.Value, 'g', -1, 64)))
		if u := v.result.Unit.String(); u != "" {
			b.WriteString(" ")
			b.WriteString(v.styles.Unit.Render(u))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(v.status.View())

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, _ int) {
	v.width = width
	v.status.SetWidth(width)
	for _, f := range v.fields {
		f.SetWidth(width)
	}
}

// Result returns the last successful conversion, if any.
func (v *View) Result() *domain.Property {
	return v.result
}

// Err returns the last conversion error.
func (v *View) Err() error {
	return v.err
}

// Focus returns the index of the focused field.
func (v *View) Focus() int {
	return v.focus
}

// SetInputs fills the form.
func (v *View) SetInputs(value, from, to string) {
	v.fields[fieldValue].SetValue(value)
	v.fields[fieldFrom].SetValue(from)
	v.fields[fieldTo].SetValue(to)
}

// Inputs returns the current form values.
func (v *View) Inputs() (value, from, to string) {
	return v.fields[fieldValue].Value(), v.fields[fieldFrom].Value(), v.fields[fieldTo].Value()
}

package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/messages"
)

func TestNewView(t *testing.T) {
	v := NewView(nil, nil)

	require.NotNil(t, v)
	assert.Equal(t, 0, v.Selected())
	assert.Len(t, v.items, 4)
}

func TestView_Navigation(t *testing.T) {
	v := NewView(nil, nil)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.Selected())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, v.Selected())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 1, v.Selected())
}

func TestView_NavigationBounds(t *testing.T) {
	v := NewView(nil, nil)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.Selected())

	for range 10 {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 3, v.Selected())
}

func TestView_SelectChangesView(t *testing.T) {
	tests := []struct {
		downs    int
		expected messages.ViewType
	}{
		{0, messages.ViewConvert},
		{1, messages.ViewUnits},
		{2, messages.ViewHelp},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			v := NewView(nil, nil)
			for range tt.downs {
				v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
			}

			_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
			require.NotNil(t, cmd)
			assert.Equal(t, messages.ViewChanged{View: tt.expected}, cmd())
		})
	}
}

func TestView_SelectQuit(t *testing.T) {
	v := NewView(nil, nil)
	for range 3 {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_QuitKey(t *testing.T) {
	v := NewView(nil, nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_IgnoresOtherMessages(t *testing.T) {
	v := NewView(nil, nil)

	_, cmd := v.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, v.Selected())
}

func TestView_View(t *testing.T) {
	v := NewView(nil, nil)
	v.SetDimensions(100, 30)

	view := v.View()
	assert.Contains(t, view, "propunit")
	assert.Contains(t, view, "> ")
	assert.Contains(t, view, "Convert")
	assert.Contains(t, view, "browse units by category")
	assert.Contains(t, view, "Quit")
	assert.Equal(t, 100, v.width)
}

package units

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/propunit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/propunit/internal/core/domain"
	"github.com/custodia-labs/propunit/internal/core/services"
)

func newTestView() *View {
	return NewView(context.Background(), nil, nil, services.NewCatalogService(memory.NewUnitStore()))
}

// load runs the view's pending load command and applies the result.
func load(t *testing.T, v *View, cmd tea.Cmd) *View {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.UnitsLoaded)
	require.True(t, ok)
	v, _ = v.Update(msg)
	return v
}

func symbols(ds []domain.Descriptor) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Symbol
	}
	return out
}

func TestNewView_SkipsDimensionless(t *testing.T) {
	v := newTestView()

	assert.NotContains(t, v.categories, domain.Dimensionless)
	assert.Equal(t, domain.Length, v.Category())
	assert.Empty(t, v.Units())
}

func TestView_Init(t *testing.T) {
	v := newTestView()

	v = load(t, v, v.Init())
	assert.Contains(t, symbols(v.Units()), "m")
	assert.Contains(t, symbols(v.Units()), "ft")
	assert.Equal(t, status.StateDone, v.status.State())
	assert.Contains(t, v.status.Message(), "units")
}

func TestView_CategoryPaging(t *testing.T) {
	v := newTestView()

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, domain.Mass, v.Category())
	v = load(t, v, cmd)
	assert.Contains(t, symbols(v.Units()), "kg")

	v, cmd = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	assert.Equal(t, domain.Length, v.Category())
	require.NotNil(t, cmd)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, domain.Power, v.Category())
}

func TestView_IgnoresStaleLoad(t *testing.T) {
	v := newTestView()
	cmd := v.Init()

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRight})
	v, _ = v.Update(cmd())

	assert.Equal(t, domain.Mass, v.Category())
	assert.Empty(t, v.Units())
}

func TestView_Selection(t *testing.T) {
	v := newTestView()
	v = load(t, v, v.Init())
	n := len(v.Units())
	require.Greater(t, n, 2)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.Selected())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, v.Selected())

	for range n + 5 {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, n-1, v.Selected())
}

func TestView_IncludesCustomUnits(t *testing.T) {
	catalog := services.NewCatalogService(memory.NewUnitStore())
	_, err := catalog.Define(context.Background(), domain.UnitDefinition{
		Symbol: "furlong", Category: domain.Length, Scale: 201.168,
	})
	require.NoError(t, err)

	v := NewView(context.Background(), nil, nil, catalog)
	v = load(t, v, v.Init())
	assert.Contains(t, symbols(v.Units()), "furlong")
	assert.Contains(t, v.View(), "x 201.168")
}

func TestView_LoadError(t *testing.T) {
	v := newTestView()
	loadErr := errors.New("disk on fire")

	v, _ = v.Update(messages.UnitsLoaded{Category: domain.Length, Err: loadErr})
	assert.Equal(t, status.StateError, v.status.State())
	assert.Contains(t, v.View(), "disk on fire")
}

func TestView_NoCatalog(t *testing.T) {
	v := NewView(context.Background(), nil, nil, nil)

	assert.Nil(t, v.Init())
	assert.Contains(t, v.View(), "No units.")
}

func TestView_Back(t *testing.T) {
	v := newTestView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_ViewAliasCategory(t *testing.T) {
	v := newTestView()
	for v.Category() != domain.Force {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRight})
	}

	view := v.View()
	assert.Contains(t, view, "Force")
	assert.Contains(t, view, "Length * Mass / (Time^2)")
}

func TestView_ViewAffine(t *testing.T) {
	v := newTestView()
	v.SetDimensions(120, 40)
	v, _ = v.Update(messages.UnitsLoaded{
		Category: domain.Length,
		Units:    []domain.Descriptor{domain.Celsius},
	})

	assert.Contains(t, v.View(), "x 1 + 273.15")
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "x 0.3048", describe(domain.Foot.Converter))
	assert.Equal(t, "x 1 + 273.15", describe(domain.Celsius.Converter))
}

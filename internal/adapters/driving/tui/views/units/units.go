// Package units provides the unit browser view for the TUI.
package units

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/propunit/internal/core/domain"
	"github.com/custodia-labs/propunit/internal/core/ports/driving"
)

// View lists the units of one category at a time.
type View struct {
	ctx     context.Context
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	catalog driving.CatalogService
	status  *status.Bar

	categories []domain.Category
	current    int
	units      []domain.Descriptor
	selected   int
	err        error
	width      int
	height     int
}

// NewView creates a unit browser.
func NewView(ctx context.Context, s *styles.Styles, km *keymap.KeyMap, catalog driving.CatalogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	var categories []domain.Category
	for _, c := range domain.Categories() {
		if c != domain.Dimensionless {
			categories = append(categories, c)
		}
	}

	return &View{
		ctx:        ctx,
		styles:     s,
		keymap:     km,
		catalog:    catalog,
		status:     status.NewBar(s, km.UnitsHelp()),
		categories: categories,
		width:      80,
		height:     24,
	}
}

// Init loads the current category.
func (v *View) Init() tea.Cmd {
	return v.load()
}

func (v *View) load() tea.Cmd {
	if v.catalog == nil {
		return nil
	}
	catalog := v.catalog
	ctx := v.ctx
	category := v.categories[v.current]

	return func() tea.Msg {
		units, err := catalog.List(ctx, category)
		return messages.UnitsLoaded{Category: category, Units: units, Err: err}
	}
}

// Update handles messages for the units view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.UnitsLoaded:
		if msg.Category != v.Category() {
			// A stale load for a category the user already paged past.
			return v, nil
		}
		v.units = msg.Units
		v.selected = 0
		v.err = msg.Err
		if msg.Err != nil {
			v.status.SetState(status.StateError, msg.Err.Error())
		} else {
			v.status.SetState(status.StateDone, fmt.Sprintf("%d units", len(msg.Units)))
		}
		return v, nil

	case tea.KeyMsg:
		switch k := msg.String(); {
		case keymap.Matches(k, v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case keymap.Matches(k, v.keymap.NextCategory):
			v.current = (v.current + 1) % len(v.categories)
			return v, v.load()
		case keymap.Matches(k, v.keymap.PrevCategory):
			v.current = (v.current + len(v.categories) - 1) % len(v.categories)
			return v, v.load()
		case keymap.Matches(k, v.keymap.Up):
			if v.selected > 0 {
				v.selected--
			}
		case keymap.Matches(k, v.keymap.Down):
			if v.selected < len(v.units)-1 {
				v.selected++
			}
		}
	}

	return v, nil
}

// View renders the category strip and unit table.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Units"))
	b.WriteString("\n\n")

	tabs := make([]string, len(v.categories))
	for i, c := range v.categories {
		if i == v.current {
			tabs[i] = v.styles.ActiveTab.Render(string(c))
		} else {
			tabs[i] = v.styles.Tab.Render(string(c))
		}
	}
	b.WriteString(strings.Join(tabs, ""))
	b.WriteString("\n\n")

	category := v.Category()
	if category.IsAlias() {
		b.WriteString(v.styles.Muted.Render(category.Aliased().String()))
		b.WriteString("\n\n")
	}

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n")
	case len(v.units) == 0:
		b.WriteString(v.styles.Muted.Render("No units."))
		b.WriteString("\n")
	default:
		for i, d := range v.units {
			line := fmt.Sprintf("%-8s %s", d.Symbol, describe(d.Converter))
			if i == v.selected {
				b.WriteString("> " + v.styles.Selected.Render(line))
			} else {
				b.WriteString("  " + v.styles.Normal.Render(line))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.status.View())
	return b.String()
}

func describe(c domain.Converter) string {
	s := "x " + strconv.FormatFloat(c.Scale, 'g', -1, 64)
	if c.Offset != 0 {
		s += " + " + strconv.FormatFloat(c.Offset, 'g', -1, 64)
	}
	return s
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.status.SetWidth(width)
}

// Category returns the category being shown.
func (v *View) Category() domain.Category {
	return v.categories[v.current]
}

// Units returns the loaded units.
func (v *View) Units() []domain.Descriptor {
	return v.units
}

// Selected returns the index of the highlighted unit.
func (v *View) Selected() int {
	return v.selected
}

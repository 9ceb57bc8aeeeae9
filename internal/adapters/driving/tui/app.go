package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/views/convert"
	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/propunit/internal/adapters/driving/tui/views/units"
)

// App is the main TUI application following the Elm architecture.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView    *menu.View
	convertView *convert.View
	unitsView   *units.View

	currentView messages.ViewType

	width  int
	height int
	ready  bool
}

var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ctx context.Context, ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         ctx,
		styles:      s,
		keymap:      km,
		menuView:    menu.NewView(s, km),
		convertView: convert.NewView(ctx, s, km, ports.Conversion),
		unitsView:   units.NewView(ctx, s, km, ports.Catalog),
		currentView: messages.ViewMenu,
	}, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("propunit")
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewConvert:
			return a, a.convertView.Init()
		case messages.ViewUnits:
			return a, a.unitsView.Init()
		case messages.ViewMenu, messages.ViewHelp:
		}
		return a, nil

	case messages.ConversionCompleted:
		a.convertView, cmd = a.convertView.Update(msg)
		return a, cmd

	case messages.UnitsLoaded:
		a.unitsView, cmd = a.unitsView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewConvert:
		a.convertView, cmd = a.convertView.Update(msg)
	case messages.ViewUnits:
		a.unitsView, cmd = a.unitsView.Update(msg)
	case messages.ViewHelp:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keymap.Matches(keyMsg.String(), a.keymap.Back) {
			a.currentView = messages.ViewMenu
		}
	}

	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewConvert:
		return a.convertView.View()
	case messages.ViewUnits:
		return a.unitsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewMenu:
	}
	return a.menuView.View()
}

func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-12s %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Muted.Render("Unit expressions are symbols with optional integer exponents, e.g. \"km hr^-1\"."))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back to menu"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.convertView.SetDimensions(width, height)
	a.unitsView.SetDimensions(width, height)
}

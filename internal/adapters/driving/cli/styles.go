package cli

import (
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/propunit/internal/core/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	symbolStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// cellStyle separates table columns.
	cellStyle = lipgloss.NewStyle().PaddingRight(2)
)

// printer formats values according to the display settings.
type printer struct {
	color     bool
	precision int
}

func newPrinter(cmd *cobra.Command) *printer {
	p := &printer{precision: domain.ShortestPrecision}
	if settingsService == nil {
		return p
	}
	settings, err := settingsService.Get()
	if err != nil {
		return p
	}
	p.precision = settings.Display.Precision
	p.color = settings.Display.Color && !noColor && isTerminal(cmd.OutOrStdout())
	return p
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *printer) render(style lipgloss.Style, text string) string {
	if !p.color || text == "" {
		return text
	}
	return style.Render(text)
}

func (p *printer) header(text string) string {
	return p.render(headerStyle, text)
}

func (p *printer) symbol(text string) string {
	return p.render(symbolStyle, text)
}

func (p *printer) muted(text string) string {
	return p.render(mutedStyle, text)
}

func (p *printer) value(v float64) string {
	return strconv.FormatFloat(v, 'g', p.precision, 64)
}

// property renders "value unit", dropping the unit when dimensionless.
func (p *printer) property(prop domain.Property) string {
	s := p.render(resultStyle, p.value(prop.Value))
	if u := prop.Unit.String(); u != "" {
		s += " " + p.symbol(u)
	}
	return s
}

// propertyJSON is the JSON shape of a property.
type propertyJSON struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func toPropertyJSON(p domain.Property) propertyJSON {
	return propertyJSON{Value: p.Value, Unit: p.Unit.String()}
}

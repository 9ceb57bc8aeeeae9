// Package cli provides the cobra command tree for propunit.
// It is a driving adapter: commands call the core through driving ports only.
package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/propunit/internal/core/ports/driving"
	"github.com/custodia-labs/propunit/internal/logger"
)

// version is set at build time via -ldflags or by SetVersion.
var version = "dev"

var (
	verbose bool
	noColor bool
)

// Services injected by main.
var (
	catalogService    driving.CatalogService
	conversionService driving.ConversionService
	settingsService   driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "propunit",
	Short: "Unit-aware property arithmetic and conversion",
	Long: `propunit converts physical quantities between units and does arithmetic
on values that carry units.

Unit expressions are whitespace-separated factors, each a symbol with an
optional integer exponent:

  "W m^-2 K^-1"          watts per square metre per kelvin
  "Btu ft^-2 hr^-1 °R^-1"
  "km hr^-1"

Built-in units can be listed with 'propunit units list'. Custom units are
stored in ~/.propunit/data/units.db.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print resolution and conversion steps to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
}

// SetServices injects the core services used by the commands.
func SetServices(catalog driving.CatalogService, conversion driving.ConversionService, settings driving.SettingsService) {
	catalogService = catalog
	conversionService = conversion
	settingsService = settings
}

// SetVersion sets the version string printed by 'propunit version'.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. Command output goes to stdout.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

var (
	errNoCatalog    = errors.New("catalog service not configured")
	errNoConversion = errors.New("conversion service not configured")
	errNoSettings   = errors.New("settings service not configured")
)

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/propunit/internal/adapters/driven/config/file"
	"github.com/custodia-labs/propunit/internal/core/domain"
)

var (
	unitsCategory      string
	unitsJSON          bool
	unitsCustomOnly    bool
	defineCategory     string
	defineScale        float64
	defineOffset       float64
	defineDesc         string
	importSkipExisting bool
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "Browse and manage units",
	Long: `List built-in units and manage custom unit definitions.

Custom units behave exactly like built-in ones in unit expressions. A custom
unit is defined by its category and the scale (and, for temperatures, the
offset) that takes a value to the category's SI reference unit.`,
}

var unitsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known units",
	Args:  cobra.NoArgs,
	RunE:  runUnitsList,
}

var unitsShowCmd = &cobra.Command{
	Use:   "show [symbol]",
	Short: "Show details of a unit",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnitsShow,
}

var unitsDefineCmd = &cobra.Command{
	Use:   "define [symbol]",
	Short: "Define a custom unit",
	Long: `Define a custom unit relative to the SI reference of its category.

Examples:
  propunit units define furlong --category Length --scale 201.168
  propunit units define °Ré --category Temperature --scale 1.25 --offset 273.15`,
	Args: cobra.ExactArgs(1),
	RunE: runUnitsDefine,
}

var unitsRemoveCmd = &cobra.Command{
	Use:     "remove [symbol]",
	Aliases: []string{"rm"},
	Short:   "Remove a custom unit",
	Args:    cobra.ExactArgs(1),
	RunE:    runUnitsRemove,
}

var unitsImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import custom units from a TOML file",
	Long: `Import custom unit definitions from a TOML catalog file:

  [[unit]]
  symbol = "furlong"
  category = "Length"
  scale = 201.168
  description = "one eighth of a mile"`,
	Args: cobra.ExactArgs(1),
	RunE: runUnitsImport,
}

var unitsExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export custom units to a TOML file",
	Long:  `Write all custom unit definitions to a TOML catalog file, or to stdout if no file is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUnitsExport,
}

func init() {
	unitsListCmd.Flags().StringVarP(&unitsCategory, "category", "c", "", "only list units of this category")
	unitsListCmd.Flags().BoolVar(&unitsCustomOnly, "custom", false, "only list custom units")
	unitsListCmd.Flags().BoolVar(&unitsJSON, "json", false, "output units as JSON")

	unitsDefineCmd.Flags().StringVarP(&defineCategory, "category", "c", "", "category the unit measures (required)")
	unitsDefineCmd.Flags().Float64Var(&defineScale, "scale", 0, "multiplier to the SI reference unit (required)")
	unitsDefineCmd.Flags().Float64Var(&defineOffset, "offset", 0, "offset added after scaling (temperatures only)")
	unitsDefineCmd.Flags().StringVarP(&defineDesc, "description", "d", "", "free-text description")
	_ = unitsDefineCmd.MarkFlagRequired("category")
	_ = unitsDefineCmd.MarkFlagRequired("scale")

	unitsImportCmd.Flags().BoolVar(&importSkipExisting, "skip-existing", false, "skip units that are already defined")

	unitsCmd.AddCommand(unitsListCmd)
	unitsCmd.AddCommand(unitsShowCmd)
	unitsCmd.AddCommand(unitsDefineCmd)
	unitsCmd.AddCommand(unitsRemoveCmd)
	unitsCmd.AddCommand(unitsImportCmd)
	unitsCmd.AddCommand(unitsExportCmd)
	rootCmd.AddCommand(unitsCmd)
}

// unitJSON is the JSON shape of a unit in 'units list --json'.
type unitJSON struct {
	Symbol   string  `json:"symbol"`
	Category string  `json:"category"`
	Scale    float64 `json:"scale"`
	Offset   float64 `json:"offset,omitempty"`
	Custom   bool    `json:"custom"`
}

func runUnitsList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errNoCatalog
	}

	ctx := cmd.Context()
	category, err := parseCategoryFlag(unitsCategory)
	if err != nil {
		return err
	}

	descriptors, err := catalogService.List(ctx, category)
	if err != nil {
		return fmt.Errorf("failed to list units: %w", err)
	}

	var units []unitJSON
	for _, d := range descriptors {
		_, builtin := domain.LookupBuiltin(d.Symbol)
		if unitsCustomOnly && builtin {
			continue
		}
		units = append(units, unitJSON{
			Symbol:   d.Symbol,
			Category: string(d.Category),
			Scale:    d.Converter.Scale,
			Offset:   d.Converter.Offset,
			Custom:   !builtin,
		})
	}

	if unitsJSON {
		data, err := json.MarshalIndent(units, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal units: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(units) == 0 {
		cmd.Println("No units found.")
		return nil
	}

	p := newPrinter(cmd)
	t := table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle }).
		Headers(p.header("SYMBOL"), p.header("CATEGORY"), p.header("TO SI"))
	for _, u := range units {
		marker := ""
		if u.Custom {
			marker = p.muted(" (custom)")
		}
		t.Row(p.symbol(u.Symbol), u.Category, describeConverter(p, u.Scale, u.Offset)+marker)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return err
}

func runUnitsShow(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errNoCatalog
	}

	ctx := cmd.Context()
	d, err := catalogService.Lookup(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to look up unit: %w", err)
	}

	p := newPrinter(cmd)
	si, _ := d.Category.SI()

	cmd.Printf("Symbol:    %s\n", p.symbol(d.Symbol))
	cmd.Printf("Category:  %s\n", d.Category)
	if d.Category.IsAlias() {
		cmd.Printf("Expands:   %s\n", d.Category.Aliased())
	}
	cmd.Printf("SI unit:   %s\n", si.Symbol)
	cmd.Printf("To SI:     %s\n", describeConverter(p, d.Converter.Scale, d.Converter.Offset))
	if d.IsAffine() {
		cmd.Println("Affine:    yes (cannot be combined with other units)")
	}

	if _, builtin := domain.LookupBuiltin(d.Symbol); builtin {
		cmd.Println("Source:    built-in")
		return nil
	}

	defs, err := catalogService.Definitions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load definitions: %w", err)
	}
	for _, def := range defs {
		if def.Symbol != d.Symbol {
			continue
		}
		cmd.Println("Source:    custom")
		if def.Description != "" {
			cmd.Printf("Note:      %s\n", def.Description)
		}
		cmd.Printf("Defined:   %s\n", def.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runUnitsDefine(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errNoCatalog
	}

	category, err := parseCategoryFlag(defineCategory)
	if err != nil {
		return err
	}

	def, err := catalogService.Define(cmd.Context(), domain.UnitDefinition{
		Symbol:      args[0],
		Category:    category,
		Scale:       defineScale,
		Offset:      defineOffset,
		Description: defineDesc,
	})
	if err != nil {
		return fmt.Errorf("failed to define unit: %w", err)
	}

	cmd.Printf("Defined %s (%s, id %s)\n", def.Symbol, def.Category, def.ID)
	return nil
}

func runUnitsRemove(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errNoCatalog
	}

	if err := catalogService.Remove(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to remove unit: %w", err)
	}

	cmd.Printf("Removed %s\n", args[0])
	return nil
}

func runUnitsImport(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errNoCatalog
	}

	defs, err := file.ReadCatalogFile(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	imported, skipped := 0, 0
	for _, def := range defs {
		if _, err := catalogService.Define(ctx, def); err != nil {
			if importSkipExisting && errors.Is(err, domain.ErrAlreadyExists) {
				skipped++
				continue
			}
			return fmt.Errorf("importing %s: %w", def.Symbol, err)
		}
		imported++
	}

	cmd.Printf("Imported %d unit(s)", imported)
	if skipped > 0 {
		cmd.Printf(", skipped %d existing", skipped)
	}
	cmd.Println()
	return nil
}

func runUnitsExport(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errNoCatalog
	}

	defs, err := catalogService.Definitions(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load definitions: %w", err)
	}

	if len(args) == 0 {
		data, err := file.EncodeCatalog(defs)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
		return err
	}

	if err := file.WriteCatalogFile(args[0], defs); err != nil {
		return err
	}
	cmd.Printf("Exported %d unit(s) to %s\n", len(defs), args[0])
	return nil
}

func parseCategoryFlag(name string) (domain.Category, error) {
	if name == "" {
		return "", nil
	}
	for _, c := range domain.Categories() {
		if strings.EqualFold(string(c), name) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, name)
}

// describeConverter renders a converter as "x 0.3048" or "x 1 + 273.15".
func describeConverter(p *printer, scale, offset float64) string {
	s := "x " + p.value(scale)
	if offset != 0 {
		s += " + " + strconv.FormatFloat(offset, 'g', -1, 64)
	}
	return s
}

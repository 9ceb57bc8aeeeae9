package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/propunit/internal/core/domain"
)

var convertJSON bool

var convertCmd = &cobra.Command{
	Use:   "convert [value] [from] [to]",
	Short: "Convert a value between units",
	Long: `Convert a value from one unit expression to another.

Both units must measure the same thing: their categories must reduce to the
same base dimensions. Affine temperatures (°C, °F) can only be converted on
their own, not as part of a compound unit.

Examples:
  propunit convert 10 ft m
  propunit convert 50 "W m^-2 K^-1" "Btu ft^-2 hr^-1 °R^-1"
  propunit convert -- -40 °F °C`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

var siCmd = &cobra.Command{
	Use:   "si [value] [unit]",
	Short: "Express a value in SI units",
	Long: `Convert a value to the SI reference unit of each factor.

Examples:
  propunit si 1 "cm^3"
  propunit si 88 "mi hr^-1"`,
	Args: cobra.ExactArgs(2),
	RunE: runSI,
}

var compatibleCmd = &cobra.Command{
	Use:   "compatible [unit] [unit]",
	Short: "Check whether two units can be converted",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompatible,
}

func init() {
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "output result as JSON")
	siCmd.Flags().BoolVar(&convertJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(siCmd)
	rootCmd.AddCommand(compatibleCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errNoConversion
	}

	value, err := parseValue(args[0])
	if err != nil {
		return err
	}

	result, err := conversionService.Convert(cmd.Context(), value, args[1], args[2])
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	return outputProperty(cmd, result)
}

func runSI(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errNoConversion
	}

	value, err := parseValue(args[0])
	if err != nil {
		return err
	}

	result, err := conversionService.ToSI(cmd.Context(), value, args[1])
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	return outputProperty(cmd, result)
}

func runCompatible(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errNoConversion
	}

	ok, err := conversionService.Compatible(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("checking compatibility: %w", err)
	}

	if ok {
		cmd.Printf("%s and %s are compatible\n", args[0], args[1])
	} else {
		cmd.Printf("%s and %s are not compatible\n", args[0], args[1])
	}
	return nil
}

func outputProperty(cmd *cobra.Command, p domain.Property) error {
	if convertJSON {
		data, err := json.Marshal(toPropertyJSON(p))
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(newPrinter(cmd).property(p))
	return nil
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, s)
	}
	return v, nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/propunit/internal/core/domain"
	"github.com/custodia-labs/propunit/internal/core/ports/driving"
)

var calcTo string

var calcCmd = &cobra.Command{
	Use:   "calc [op] [value] [unit] [value] [unit]",
	Short: "Add, subtract, multiply or divide two quantities",
	Long: `Apply an arithmetic operation to two quantities.

Operations: add (+), subtract (sub, -), multiply (mul, *), divide (div, /).

Addition and subtraction convert the right operand into the left operand's
unit, so both must be compatible. Multiplication and division combine the
units and simplify the result. Use --to to re-express the result.

Examples:
  propunit calc add 5 bar 30 psi
  propunit calc div 100 km 2 hr --to "m s^-1"
  propunit calc mul 3 N 2 m`,
	Args: cobra.ExactArgs(5),
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringVar(&calcTo, "to", "", "unit expression to express the result in")
	calcCmd.Flags().BoolVar(&convertJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(calcCmd)
}

var operationAliases = map[string]driving.Operation{
	"add":      driving.OpAdd,
	"+":        driving.OpAdd,
	"subtract": driving.OpSubtract,
	"sub":      driving.OpSubtract,
	"-":        driving.OpSubtract,
	"multiply": driving.OpMultiply,
	"mul":      driving.OpMultiply,
	"*":        driving.OpMultiply,
	"divide":   driving.OpDivide,
	"div":      driving.OpDivide,
	"/":        driving.OpDivide,
}

func parseOperation(s string) (driving.Operation, error) {
	op, ok := operationAliases[strings.ToLower(s)]
	if !ok {
		return "", fmt.Errorf("%w: unknown operation %q", domain.ErrInvalidInput, s)
	}
	return op, nil
}

func runCalc(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errNoConversion
	}

	op, err := parseOperation(args[0])
	if err != nil {
		return err
	}

	a, err := parseValue(args[1])
	if err != nil {
		return err
	}
	b, err := parseValue(args[3])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	result, err := conversionService.Combine(ctx, op,
		driving.Quantity{Value: a, Unit: args[2]},
		driving.Quantity{Value: b, Unit: args[4]},
	)
	if err != nil {
		return fmt.Errorf("calculation failed: %w", err)
	}

	if calcTo != "" {
		result, err = conversionService.Convert(ctx, result.Value, unitExpr(result.Unit), calcTo)
		if err != nil {
			return fmt.Errorf("conversion failed: %w", err)
		}
	}

	return outputProperty(cmd, result)
}

// unitExpr renders u in the factor syntax accepted by the catalog.
func unitExpr(u domain.Unit) string {
	parts := make([]string, 0, len(u.Factors()))
	for _, f := range u.Factors() {
		if f.Key.Symbol == "" {
			continue
		}
		if f.Exp == 1 {
			parts = append(parts, f.Key.Symbol)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s^%d", f.Key.Symbol, f.Exp))
	}
	return strings.Join(parts, " ")
}

package driving

import (
	"context"

	"github.com/custodia-labs/propunit/internal/core/domain"
)

// Operation is an arithmetic operation on two quantities.
type Operation string

// Supported operations.
const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// IsValid returns true if the operation is recognised.
func (o Operation) IsValid() bool {
	switch o {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	default:
		return false
	}
}

// Quantity is a value with an unresolved unit expression, as received from
// the CLI or MCP clients.
type Quantity struct {
	Value float64
	Unit  string
}

// ConversionService performs conversions and arithmetic on quantities.
type ConversionService interface {
	// Convert re-expresses value from one unit expression in another.
	Convert(ctx context.Context, value float64, from, to string) (domain.Property, error)

	// ToSI re-expresses value in SI reference units.
	ToSI(ctx context.Context, value float64, unit string) (domain.Property, error)

	// Combine applies op to a and b. Addition and subtraction return the
	// result in a's unit.
	Combine(ctx context.Context, op Operation, a, b Quantity) (domain.Property, error)

	// Compatible reports whether values in a can be converted to b.
	Compatible(ctx context.Context, a, b string) (bool, error)
}

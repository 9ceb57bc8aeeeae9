package driving

import (
	"context"

	"github.com/custodia-labs/propunit/internal/core/domain"
)

// CatalogService resolves unit symbols against the built-in catalog and
// user-defined units.
type CatalogService interface {
	// Lookup finds a descriptor by symbol. Built-in units take precedence.
	Lookup(ctx context.Context, symbol string) (domain.Descriptor, error)

	// List returns all descriptors, optionally filtered by category.
	// An empty category returns everything.
	List(ctx context.Context, category domain.Category) ([]domain.Descriptor, error)

	// Define stores a new custom unit. The symbol must not clash with a
	// built-in or existing definition.
	Define(ctx context.Context, def domain.UnitDefinition) (*domain.UnitDefinition, error)

	// Remove deletes a custom unit by symbol.
	Remove(ctx context.Context, symbol string) error

	// Definitions returns all custom unit definitions.
	Definitions(ctx context.Context) ([]domain.UnitDefinition, error)

	// Resolve turns a factor list such as "Btu ft^-2 hr^-1 °R^-1" into a unit.
	Resolve(ctx context.Context, expr string) (domain.Unit, error)
}

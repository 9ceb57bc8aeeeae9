package driven

import (
	"context"

	"github.com/custodia-labs/propunit/internal/core/domain"
)

// UnitStore persists user-defined unit definitions.
type UnitStore interface {
	// Save stores or updates a definition, keyed by symbol.
	Save(ctx context.Context, def domain.UnitDefinition) error

	// Get retrieves a definition by symbol.
	// Returns domain.ErrNotFound if no definition exists.
	Get(ctx context.Context, symbol string) (*domain.UnitDefinition, error)

	// List returns all definitions ordered by symbol.
	List(ctx context.Context) ([]domain.UnitDefinition, error)

	// Delete removes a definition by symbol.
	// Returns domain.ErrNotFound if no definition exists.
	Delete(ctx context.Context, symbol string) error
}

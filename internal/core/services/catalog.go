package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/propunit/internal/core/domain"
	"github.com/custodia-labs/propunit/internal/core/ports/driven"
	"github.com/custodia-labs/propunit/internal/core/ports/driving"
	"github.com/custodia-labs/propunit/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService resolves symbols against the built-in descriptors and the
// custom units held in a UnitStore. The store is optional; without it only
// built-in units are available.
type CatalogService struct {
	store driven.UnitStore
	now   func() time.Time
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store driven.UnitStore) *CatalogService {
	return &CatalogService{
		store: store,
		now:   time.Now,
	}
}

// Lookup finds a descriptor by symbol. Built-in units take precedence.
func (s *CatalogService) Lookup(ctx context.Context, symbol string) (domain.Descriptor, error) {
	if d, ok := domain.LookupBuiltin(symbol); ok && symbol != "" {
		logger.Debug("Symbol %q: built-in %s", symbol, d.Category)
		return d, nil
	}
	if s.store == nil {
		return domain.Descriptor{}, fmt.Errorf("%w: %q", domain.ErrUnknownDescriptor, symbol)
	}

	def, err := s.store.Get(ctx, symbol)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Descriptor{}, fmt.Errorf("%w: %q", domain.ErrUnknownDescriptor, symbol)
	}
	if err != nil {
		return domain.Descriptor{}, fmt.Errorf("looking up %q: %w", symbol, err)
	}

	logger.Debug("Symbol %q: custom %s (id %s)", symbol, def.Category, def.ID)
	return def.Descriptor(), nil
}

// List returns built-in and custom descriptors ordered by category and
// scale. An empty category returns every descriptor.
func (s *CatalogService) List(ctx context.Context, category domain.Category) ([]domain.Descriptor, error) {
	if category != "" && !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
	}

	var result []domain.Descriptor
	for _, d := range domain.Builtin() {
		if d.Symbol == "" {
			continue
		}
		if category == "" || d.Category == category {
			result = append(result, d)
		}
	}

	defs, err := s.Definitions(ctx)
	if err != nil {
		return nil, err
	}
	for _, def := range defs {
		if category == "" || def.Category == category {
			result = append(result, def.Descriptor())
		}
	}

	domain.SortDescriptors(result)
	return result, nil
}

// Define validates and stores a new custom unit. An ID and creation time are
// assigned when missing.
func (s *CatalogService) Define(ctx context.Context, def domain.UnitDefinition) (*domain.UnitDefinition, error) {
	if s.store == nil {
		return nil, errors.New("unit store not configured")
	}
	def.Symbol = strings.TrimSpace(def.Symbol)
	if err := def.Validate(); err != nil {
		return nil, err
	}
	if _, ok := domain.LookupBuiltin(def.Symbol); ok {
		return nil, fmt.Errorf("%w: %q is a built-in unit", domain.ErrAlreadyExists, def.Symbol)
	}

	existing, err := s.store.Get(ctx, def.Symbol)
	if err == nil && existing != nil {
		return nil, fmt.Errorf("%w: %q is already defined", domain.ErrAlreadyExists, def.Symbol)
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("checking %q: %w", def.Symbol, err)
	}

	if def.ID == "" {
		def.ID = uuid.New().String()
	}
	if def.CreatedAt.IsZero() {
		def.CreatedAt = s.now().UTC()
	}

	if err := s.store.Save(ctx, def); err != nil {
		return nil, fmt.Errorf("saving %q: %w", def.Symbol, err)
	}
	logger.Info("Defined %s as %s (scale %g, offset %g)", def.Symbol, def.Category, def.Scale, def.Offset)
	return &def, nil
}

// Remove deletes a custom unit. Built-in units cannot be removed.
func (s *CatalogService) Remove(ctx context.Context, symbol string) error {
	if _, ok := domain.LookupBuiltin(symbol); ok {
		return fmt.Errorf("%w: %q is a built-in unit", domain.ErrInvalidInput, symbol)
	}
	if s.store == nil {
		return fmt.Errorf("%w: %q", domain.ErrNotFound, symbol)
	}
	if err := s.store.Delete(ctx, symbol); err != nil {
		return fmt.Errorf("removing %q: %w", symbol, err)
	}
	return nil
}

// Definitions returns all custom unit definitions.
func (s *CatalogService) Definitions(ctx context.Context) ([]domain.UnitDefinition, error) {
	if s.store == nil {
		return nil, nil
	}
	defs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing custom units: %w", err)
	}
	return defs, nil
}

// Resolve turns a whitespace-separated factor list into a unit. Each token
// is a symbol optionally followed by ^ and an integer exponent, so
// "Btu ft^-2 hr^-1 °R^-1" resolves to Btu / (ft^2) / hr / °R. An empty
// expression is the dimensionless unit.
func (s *CatalogService) Resolve(ctx context.Context, expr string) (domain.Unit, error) {
	logger.Section("Unit Resolution")
	logger.Debug("Expression: %q", expr)

	var u domain.Unit
	for _, token := range strings.Fields(expr) {
		symbol, exp, err := parseFactorToken(token)
		if err != nil {
			return domain.Unit{}, err
		}

		d, err := s.Lookup(ctx, symbol)
		if err != nil {
			return domain.Unit{}, err
		}

		factor, err := d.Unit().Exponentiate(exp)
		if err != nil {
			return domain.Unit{}, fmt.Errorf("token %q: %w", token, err)
		}
		u = u.Multiply(factor)
	}

	logger.Debug("Resolved: %s", u)
	return u, nil
}

// parseFactorToken splits "sym^n" into its symbol and exponent. A bare
// symbol has exponent 1.
func parseFactorToken(token string) (string, float64, error) {
	idx := strings.LastIndex(token, "^")
	if idx < 0 {
		return token, 1, nil
	}

	symbol, raw := token[:idx], token[idx+1:]
	if symbol == "" {
		return "", 0, fmt.Errorf("%w: token %q has no symbol", domain.ErrInvalidInput, token)
	}
	exp, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: token %q: %q is not a number", domain.ErrInvalidExponent, token, raw)
	}
	return symbol, exp, nil
}

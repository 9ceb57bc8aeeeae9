package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/propunit/internal/core/domain"
	"github.com/custodia-labs/propunit/internal/core/ports/driving"
	"github.com/custodia-labs/propunit/internal/logger"
)

// Ensure ConversionService implements the interface.
var _ driving.ConversionService = (*ConversionService)(nil)

// ConversionService converts and combines quantities whose units arrive as
// factor lists. Unit resolution is delegated to a CatalogService.
type ConversionService struct {
	catalog driving.CatalogService
}

// NewConversionService creates a new conversion service.
func NewConversionService(catalog driving.CatalogService) *ConversionService {
	return &ConversionService{catalog: catalog}
}

// Convert re-expresses value from one unit expression in another.
func (s *ConversionService) Convert(ctx context.Context, value float64, from, to string) (domain.Property, error) {
	if s.catalog == nil {
		return domain.Property{}, errors.New("catalog service not configured")
	}

	fromUnit, err := s.catalog.Resolve(ctx, from)
	if err != nil {
		return domain.Property{}, fmt.Errorf("resolving %q: %w", from, err)
	}
	toUnit, err := s.catalog.Resolve(ctx, to)
	if err != nil {
		return domain.Property{}, fmt.Errorf("resolving %q: %w", to, err)
	}

	logger.Section("Conversion")
	logger.Debug("From: %s (%s)", fromUnit, fromUnit.Generic())
	logger.Debug("To: %s (%s)", toUnit, toUnit.Generic())

	conv, err := fromUnit.ToUnit(toUnit)
	if err != nil {
		return domain.Property{}, fmt.Errorf("converting %s to %s: %w", fromUnit, toUnit, err)
	}
	logger.Debug("Converter: scale=%g offset=%g", conv.Scale, conv.Offset)

	result := domain.Property{Value: conv.Apply(value), Unit: toUnit}
	logger.Info("Result: %s", result)
	return result, nil
}

// ToSI re-expresses value in SI reference units, keeping the factor
// structure of the input unit.
func (s *ConversionService) ToSI(ctx context.Context, value float64, unit string) (domain.Property, error) {
	if s.catalog == nil {
		return domain.Property{}, errors.New("catalog service not configured")
	}

	u, err := s.catalog.Resolve(ctx, unit)
	if err != nil {
		return domain.Property{}, fmt.Errorf("resolving %q: %w", unit, err)
	}

	logger.Section("SI Reduction")
	si, conv, err := u.SI()
	if err != nil {
		return domain.Property{}, fmt.Errorf("reducing %s to SI: %w", u, err)
	}
	logger.Debug("%s -> %s (scale=%g offset=%g)", u, si, conv.Scale, conv.Offset)

	result := domain.Property{Value: conv.Apply(value), Unit: si}
	logger.Info("Result: %s", result)
	return result, nil
}

// Combine applies op to a and b. Addition and subtraction convert b into
// a's unit. Products and quotients are returned with simplified units.
func (s *ConversionService) Combine(
	ctx context.Context,
	op driving.Operation,
	a, b driving.Quantity,
) (domain.Property, error) {
	if !op.IsValid() {
		return domain.Property{}, fmt.Errorf("%w: unknown operation %q", domain.ErrInvalidInput, op)
	}
	if s.catalog == nil {
		return domain.Property{}, errors.New("catalog service not configured")
	}

	left, err := s.property(ctx, a)
	if err != nil {
		return domain.Property{}, err
	}
	right, err := s.property(ctx, b)
	if err != nil {
		return domain.Property{}, err
	}

	logger.Section("Combine")
	logger.Debug("%s %s %s", left, op, right)

	var result domain.Property
	switch op {
	case driving.OpAdd:
		result, err = left.Add(right)
	case driving.OpSubtract:
		result, err = left.Subtract(right)
	case driving.OpMultiply:
		result = left.Multiply(right)
		result.Unit = result.Unit.Simplified()
	case driving.OpDivide:
		result, err = left.Divide(right)
		result.Unit = result.Unit.Simplified()
	}
	if err != nil {
		return domain.Property{}, err
	}

	logger.Info("Result: %s", result)
	return result, nil
}

// Compatible reports whether values in unit a can be converted to unit b.
func (s *ConversionService) Compatible(ctx context.Context, a, b string) (bool, error) {
	if s.catalog == nil {
		return false, errors.New("catalog service not configured")
	}

	ua, err := s.catalog.Resolve(ctx, a)
	if err != nil {
		return false, fmt.Errorf("resolving %q: %w", a, err)
	}
	ub, err := s.catalog.Resolve(ctx, b)
	if err != nil {
		return false, fmt.Errorf("resolving %q: %w", b, err)
	}
	return ua.IsInstanceEquivalent(ub.Generic()), nil
}

func (s *ConversionService) property(ctx context.Context, q driving.Quantity) (domain.Property, error) {
	u, err := s.catalog.Resolve(ctx, q.Unit)
	if err != nil {
		return domain.Property{}, fmt.Errorf("resolving %q: %w", q.Unit, err)
	}
	return domain.Property{Value: q.Value, Unit: u}, nil
}

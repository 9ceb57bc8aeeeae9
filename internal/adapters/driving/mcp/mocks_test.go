package mcp

import (
	"context"

	"github.com/custodia-labs/propunit/internal/core/domain"
	"github.com/custodia-labs/propunit/internal/core/ports/driving"
)

// mockConversionService is a mock implementation of driving.ConversionService.
type mockConversionService struct {
	property   domain.Property
	compatible bool
	err        error

	lastOp    driving.Operation
	lastLeft  driving.Quantity
	lastRight driving.Quantity
}

func (m *mockConversionService) Convert(_ context.Context, _ float64, _, _ string) (domain.Property, error) {
	return m.property, m.err
}

func (m *mockConversionService) ToSI(_ context.Context, _ float64, _ string) (domain.Property, error) {
	return m.property, m.err
}

func (m *mockConversionService) Combine(
	_ context.Context,
	op driving.Operation,
	a, b driving.Quantity,
) (domain.Property, error) {
	m.lastOp = op
	m.lastLeft = a
	m.lastRight = b
	return m.property, m.err
}

func (m *mockConversionService) Compatible(_ context.Context, _, _ string) (bool, error) {
	return m.compatible, m.err
}

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	descriptors  []domain.Descriptor
	definitions  []domain.UnitDefinition
	err          error
	lastCategory domain.Category
}

func (m *mockCatalogService) Lookup(_ context.Context, symbol string) (domain.Descriptor, error) {
	if m.err != nil {
		return domain.Descriptor{}, m.err
	}
	for _, d := range m.descriptors {
		if d.Symbol == symbol {
			return d, nil
		}
	}
	return domain.Descriptor{}, domain.ErrUnknownDescriptor
}

func (m *mockCatalogService) List(_ context.Context, category domain.Category) ([]domain.Descriptor, error) {
	m.lastCategory = category
	return m.descriptors, m.err
}

func (m *mockCatalogService) Define(_ context.Context, def domain.UnitDefinition) (*domain.UnitDefinition, error) {
	return &def, m.err
}

func (m *mockCatalogService) Remove(_ context.Context, _ string) error {
	return m.err
}

func (m *mockCatalogService) Definitions(_ context.Context) ([]domain.UnitDefinition, error) {
	return m.definitions, m.err
}

func (m *mockCatalogService) Resolve(_ context.Context, _ string) (domain.Unit, error) {
	return domain.Unit{}, m.err
}

package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/propunit/internal/core/domain"
	"github.com/custodia-labs/propunit/internal/core/ports/driven"
)

// Ensure UnitStore implements the interface.
var _ driven.UnitStore = (*UnitStore)(nil)

// UnitStore is an in-memory implementation of driven.UnitStore.
type UnitStore struct {
	mu    sync.RWMutex
	units map[string]domain.UnitDefinition
}

// NewUnitStore creates a new in-memory unit store.
func NewUnitStore() *UnitStore {
	return &UnitStore{
		units: make(map[string]domain.UnitDefinition),
	}
}

// Save stores or updates a definition.
func (s *UnitStore) Save(_ context.Context, def domain.UnitDefinition) error {
	if def.Symbol == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units[def.Symbol] = def
	return nil
}

// Get retrieves a definition by symbol.
func (s *UnitStore) Get(_ context.Context, symbol string) (*domain.UnitDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.units[symbol]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &def, nil
}

// List returns all definitions ordered by symbol.
func (s *UnitStore) List(_ context.Context) ([]domain.UnitDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.UnitDefinition, 0, len(s.units))
	for _, def := range s.units {
		result = append(result, def)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Symbol < result[j].Symbol })
	return result, nil
}

// Delete removes a definition by symbol.
func (s *UnitStore) Delete(_ context.Context, symbol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.units[symbol]; !ok {
		return domain.ErrNotFound
	}
	delete(s.units, symbol)
	return nil
}

package services

import (
	"context"

	"github.com/custodia-labs/propunit/internal/core/domain"
)

// mockUnitStore fails every call with the configured errors.
type mockUnitStore struct {
	getErr    error
	saveErr   error
	listErr   error
	deleteErr error
}

func (m *mockUnitStore) Save(_ context.Context, _ domain.UnitDefinition) error {
	return m.saveErr
}

func (m *mockUnitStore) Get(_ context.Context, _ string) (*domain.UnitDefinition, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return nil, domain.ErrNotFound
}

func (m *mockUnitStore) List(_ context.Context) ([]domain.UnitDefinition, error) {
	return nil, m.listErr
}

func (m *mockUnitStore) Delete(_ context.Context, _ string) error {
	return m.deleteErr
}

// mockConfigStore records Save calls and can fail them.
type mockConfigStore struct {
	values  map[string]any
	saves   int
	saveErr error
	setErr  error
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	s, _ := m.values[key].(string)
	return s
}

func (m *mockConfigStore) GetInt(key string) int {
	n, _ := m.values[key].(int)
	return n
}

func (m *mockConfigStore) GetBool(key string) bool {
	b, _ := m.values[key].(bool)
	return b
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Save() error {
	m.saves++
	return m.saveErr
}

func (m *mockConfigStore) Load() error {
	return nil
}

func (m *mockConfigStore) Path() string {
	return "mock.toml"
}

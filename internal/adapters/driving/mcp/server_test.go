package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil conversion service returns error", func(t *testing.T) {
		ports := &Ports{Catalog: &mockCatalogService{}}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingConversionService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Conversion: &mockConversionService{},
			Catalog:    &mockCatalogService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("empty ports", func(t *testing.T) {
		ports := &Ports{}
		assert.ErrorIs(t, ports.Validate(), ErrMissingConversionService)
	})

	t.Run("missing catalog", func(t *testing.T) {
		ports := &Ports{Conversion: &mockConversionService{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingCatalogService)
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Conversion: &mockConversionService{},
			Catalog:    &mockCatalogService{},
		}
		assert.NoError(t, ports.Validate())
	})
}

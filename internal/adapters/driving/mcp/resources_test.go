package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/propunit/internal/core/domain"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
}

func TestServer_handleCategoriesResource(t *testing.T) {
	server := newTestServer(t, &mockConversionService{}, &mockCatalogService{})

	result, err := server.handleCategoriesResource(context.Background(), readRequest("propunit://categories"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)

	var infos []categoryInfo
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &infos))
	assert.Len(t, infos, len(domain.Categories())-1)
	assert.Contains(t, infos, categoryInfo{Name: "Length", SI: "m"})
	assert.Contains(t, infos, categoryInfo{Name: "Force", SI: "N", Expands: "Length * Mass / (Time^2)"})
}

func TestServer_handleUnitResource(t *testing.T) {
	cat := &mockCatalogService{descriptors: []domain.Descriptor{domain.Celsius}}
	server := newTestServer(t, &mockConversionService{}, cat)
	ctx := context.Background()

	t.Run("percent-encoded symbol", func(t *testing.T) {
		result, err := server.handleUnitResource(ctx, readRequest("propunit://units/%C2%B0C"))
		require.NoError(t, err)

		var unit UnitOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &unit))
		assert.Equal(t, "°C", unit.Symbol)
		assert.Equal(t, 273.15, unit.Offset)
	})

	t.Run("unknown symbol", func(t *testing.T) {
		_, err := server.handleUnitResource(ctx, readRequest("propunit://units/furlong"))
		assert.Error(t, err)
	})
}

func TestExtractSymbol(t *testing.T) {
	tests := []struct {
		uri      string
		expected string
	}{
		{"propunit://units/m", "m"},
		{"propunit://units/%C2%B0F", "°F"},
		{"propunit://units/", ""},
		{"other://units/m", ""},
		{"propunit://units/%zz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractSymbol(tt.uri))
		})
	}
}

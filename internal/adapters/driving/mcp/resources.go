package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/propunit/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for propunit resources.
	uriScheme = "propunit://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "categories",
		Name:        "categories",
		Description: "Measurement categories with their SI units and base expansions",
		MIMEType:    "application/json",
	}, s.handleCategoriesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "units/{symbol}",
		Name:        "unit",
		Description: "Definition of a single unit",
		MIMEType:    "application/json",
	}, s.handleUnitResource)
}

// categoryInfo is the JSON shape of a category.
type categoryInfo struct {
	Name    string `json:"name"`
	SI      string `json:"si,omitempty"`
	Expands string `json:"expands,omitempty"`
}

func (s *Server) handleCategoriesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	var infos []categoryInfo
	for _, c := range domain.Categories() {
		if c == domain.Dimensionless {
			continue
		}
		info := categoryInfo{Name: string(c)}
		if si, err := c.SI(); err == nil {
			info.SI = si.Symbol
		}
		if c.IsAlias() {
			info.Expands = c.Aliased().String()
		}
		infos = append(infos, info)
	}

	return jsonResource(req.Params.URI, infos)
}

func (s *Server) handleUnitResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	symbol := extractSymbol(req.Params.URI)
	if symbol == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	d, err := s.ports.Catalog.Lookup(ctx, symbol)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return jsonResource(req.Params.URI, toUnitOutput(d))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractSymbol extracts the unit symbol from a URI like propunit://units/{symbol}.
// Percent-encoded symbols such as %C2%B0C are decoded.
func extractSymbol(uri string) string {
	const prefix = uriScheme + "units/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	symbol, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return ""
	}
	return symbol
}

package mcp

import (
	"github.com/custodia-labs/propunit/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Conversion converts quantities and combines them.
	Conversion driving.ConversionService

	// Catalog lists and looks up units.
	Catalog driving.CatalogService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Conversion == nil {
		return ErrMissingConversionService
	}
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}

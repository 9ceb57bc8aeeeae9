// Package tui provides an interactive terminal user interface for propunit.
// It is a driving adapter built on Bubbletea.
package tui

import (
	"github.com/custodia-labs/propunit/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Conversion runs conversions for the converter view.
	Conversion driving.ConversionService

	// Catalog lists units for the units view.
	Catalog driving.CatalogService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(conversion driving.ConversionService, catalog driving.CatalogService) *Ports {
	return &Ports{
		Conversion: conversion,
		Catalog:    catalog,
	}
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

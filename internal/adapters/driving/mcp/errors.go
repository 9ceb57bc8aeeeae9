// Package mcp provides an MCP (Model Context Protocol) server adapter for propunit.
// It lets AI assistants convert quantities and do unit-aware arithmetic.
package mcp

import "errors"

// ErrMissingConversionService is returned when the conversion service is not provided.
var ErrMissingConversionService = errors.New("mcp: conversion service is required")

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")

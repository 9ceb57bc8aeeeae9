package tui

import "errors"

// ErrMissingConversionService is returned when the conversion service is not provided.
var ErrMissingConversionService = errors.New("tui: conversion service is required")

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("tui: catalog service is required")

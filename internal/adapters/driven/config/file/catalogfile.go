package file

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/propunit/internal/core/domain"
)

// catalogDocument is the on-disk layout of a unit catalog:
//
//	[[unit]]
//	symbol = "furlong"
//	category = "Length"
//	scale = 201.168
//	description = "an eighth of a mile"
type catalogDocument struct {
	Units []catalogEntry `toml:"unit"`
}

type catalogEntry struct {
	Symbol      string  `toml:"symbol"`
	Category    string  `toml:"category"`
	Scale       float64 `toml:"scale"`
	Offset      float64 `toml:"offset,omitempty"`
	Description string  `toml:"description,omitempty"`
}

// ReadCatalogFile parses unit definitions from a TOML catalog file.
// Every entry is validated; the first invalid entry aborts the read.
func ReadCatalogFile(path string) ([]domain.UnitDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog parses unit definitions from TOML bytes.
func ParseCatalog(data []byte) ([]domain.UnitDefinition, error) {
	var doc catalogDocument
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decoding catalog: %v", domain.ErrInvalidInput, err)
	}

	defs := make([]domain.UnitDefinition, 0, len(doc.Units))
	seen := make(map[string]bool, len(doc.Units))
	for i, e := range doc.Units {
		def := domain.UnitDefinition{
			Symbol:      strings.TrimSpace(e.Symbol),
			Category:    domain.Category(e.Category),
			Scale:       e.Scale,
			Offset:      e.Offset,
			Description: e.Description,
		}
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("unit %d: %w", i+1, err)
		}
		if seen[def.Symbol] {
			return nil, fmt.Errorf("unit %d: %w: duplicate symbol %q", i+1, domain.ErrInvalidInput, def.Symbol)
		}
		seen[def.Symbol] = true
		defs = append(defs, def)
	}
	return defs, nil
}

// WriteCatalogFile writes unit definitions as a TOML catalog file.
func WriteCatalogFile(path string, defs []domain.UnitDefinition) error {
	data, err := EncodeCatalog(defs)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}

// EncodeCatalog renders unit definitions as TOML.
func EncodeCatalog(defs []domain.UnitDefinition) ([]byte, error) {
	doc := catalogDocument{Units: make([]catalogEntry, len(defs))}
	for i, d := range defs {
		doc.Units[i] = catalogEntry{
			Symbol:      d.Symbol,
			Category:    string(d.Category),
			Scale:       d.Scale,
			Offset:      d.Offset,
			Description: d.Description,
		}
	}
	data, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	return data, nil
}

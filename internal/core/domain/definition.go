package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// UnitDefinition is a user-defined descriptor persisted in a unit store.
type UnitDefinition struct {
	// ID uniquely identifies the definition.
	ID string

	// Symbol is the unit symbol used in expressions (e.g. "furlong").
	Symbol string

	// Category is the generic category the unit measures.
	Category Category

	// Scale multiplies a value to reach the category's SI reference.
	Scale float64

	// Offset is added after scaling. Only temperatures may carry one.
	Offset float64

	// Description is optional free text.
	Description string

	// CreatedAt records when the definition was stored.
	CreatedAt time.Time
}

// Validate checks that the definition can be turned into a descriptor.
func (d UnitDefinition) Validate() error {
	if strings.TrimSpace(d.Symbol) == "" {
		return fmt.Errorf("%w: symbol is required", ErrInvalidInput)
	}
	if strings.ContainsAny(d.Symbol, " \t\n^") {
		return fmt.Errorf("%w: symbol %q must not contain whitespace or '^'", ErrInvalidInput, d.Symbol)
	}
	if !d.Category.IsValid() || d.Category == Dimensionless {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, d.Category)
	}
	if !isFinite(d.Scale) || !isFinite(d.Offset) {
		return fmt.Errorf("%w: scale and offset must be finite, got %v and %v", ErrInvalidInput, d.Scale, d.Offset)
	}
	if d.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive, got %v", ErrInvalidInput, d.Scale)
	}
	if d.Offset != 0 && d.Category != Temperature {
		return fmt.Errorf("%w: only Temperature units may have an offset", ErrInvalidInput)
	}
	return nil
}

// Descriptor returns the descriptor described by d.
func (d UnitDefinition) Descriptor() Descriptor {
	return NewDescriptor(d.Symbol, d.Category, Converter{Scale: d.Scale, Offset: d.Offset})
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Package domain defines the unit algebra engine for propunit.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Category: A generic measurement category (Length, Energy, ...)
//   - Descriptor: An atomic named unit (m, °C, Btu) with its SI converter
//   - Unit: A product of descriptors raised to integer exponents
//   - GenericExpr: A product of categories, used for unit matching
//   - Property: A value paired with a unit
//
// All values are immutable. Every operation returns a new value, so
// instances may be shared between goroutines without synchronisation.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

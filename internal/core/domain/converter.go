package domain

import "math"

// Converter relates a unit to its category's SI reference:
//
//	si = value*Scale + Offset
//
// Linear converters have a zero offset. Affine converters (°C, °F) carry an
// offset and may only be applied to a lone unit with exponent 1.
type Converter struct {
	Scale  float64
	Offset float64
}

// Identity is the converter of every SI reference descriptor.
var Identity = Converter{Scale: 1}

// Linear returns a scale-only converter.
func Linear(scale float64) Converter {
	return Converter{Scale: scale}
}

// Affine returns a scale and offset converter.
func Affine(scale, offset float64) Converter {
	return Converter{Scale: scale, Offset: offset}
}

// IsAffine returns true if the converter carries an offset.
func (c Converter) IsAffine() bool {
	return c.Offset != 0
}

// ToSI converts a value into the SI reference unit.
func (c Converter) ToSI(v float64) float64 {
	return v*c.Scale + c.Offset
}

// FromSI converts a value from the SI reference unit.
func (c Converter) FromSI(v float64) float64 {
	return (v - c.Offset) / c.Scale
}

// Apply is an alias of ToSI for converters that map between two arbitrary
// units rather than to SI.
func (c Converter) Apply(v float64) float64 {
	return c.ToSI(v)
}

// Inverse returns the converter that undoes c.
func (c Converter) Inverse() Converter {
	return Converter{Scale: 1 / c.Scale, Offset: -c.Offset / c.Scale}
}

// Then returns the converter equivalent to applying c and then next.
func (c Converter) Then(next Converter) Converter {
	return Converter{
		Scale:  c.Scale * next.Scale,
		Offset: c.Offset*next.Scale + next.Offset,
	}
}

// pow raises a linear converter to an integer power.
func (c Converter) pow(n int) Converter {
	return Converter{Scale: math.Pow(c.Scale, float64(n))}
}

// UnitPrefix is a decimal multiplier for prefixed units.
type UnitPrefix float64

// Decimal prefixes.
const (
	Pico  UnitPrefix = 1e-12
	Nano  UnitPrefix = 1e-9
	Micro UnitPrefix = 1e-6
	Milli UnitPrefix = 1e-3
	Centi UnitPrefix = 1e-2
	Deci  UnitPrefix = 1e-1
	Deca  UnitPrefix = 1e1
	Hecto UnitPrefix = 1e2
	Kilo  UnitPrefix = 1e3
	Mega  UnitPrefix = 1e6
	Giga  UnitPrefix = 1e9
	Tera  UnitPrefix = 1e12
)

// Of returns the prefix applied to scale, e.g. Kilo.Of(1) == 1000.
func (p UnitPrefix) Of(scale float64) float64 {
	return float64(p) * scale
}

// Inverse returns 1/p.
func (p UnitPrefix) Inverse() float64 {
	return 1 / float64(p)
}

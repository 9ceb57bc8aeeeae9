package domain

import (
	"fmt"
	"math"
)

// UnitOperand is anything that can be used as a unit: a Descriptor or a Unit.
type UnitOperand interface {
	Unit() Unit
}

// Unit is a composite measurement unit: a product of descriptors raised to
// integer exponents, e.g. J / K / mol or (m^2). The zero value is the
// dimensionless unit.
//
// Multiply, Divide and Power never simplify; call Simplified to merge
// duplicate descriptors and cancel opposing exponents.
type Unit struct {
	factors []Factor[Descriptor]
}

// NewUnit builds a unit from factors. Zero exponents are discarded.
func NewUnit(factors ...Factor[Descriptor]) Unit {
	out := make([]Factor[Descriptor], 0, len(factors))
	for _, f := range factors {
		if f.Exp != 0 {
			out = append(out, f)
		}
	}
	return Unit{factors: out}
}

// Unit returns u itself so Unit satisfies UnitOperand.
func (u Unit) Unit() Unit {
	return u
}

// Factors returns a copy of the factors in construction order.
func (u Unit) Factors() []Factor[Descriptor] {
	return concatFactors(nil, u.factors)
}

// Numerator returns the factors with positive exponents.
func (u Unit) Numerator() []Factor[Descriptor] {
	num, _ := splitFactors(u.factors)
	return num
}

// Denominator returns the factors with negative exponents.
func (u Unit) Denominator() []Factor[Descriptor] {
	_, den := splitFactors(u.factors)
	return den
}

// IsDimensionless returns true if u simplifies to no factors.
func (u Unit) IsDimensionless() bool {
	return len(u.Simplified().factors) == 0
}

// Multiply returns u * other.
func (u Unit) Multiply(other UnitOperand) Unit {
	return Unit{factors: concatFactors(u.factors, other.Unit().factors)}
}

// Divide returns u / other.
func (u Unit) Divide(other UnitOperand) Unit {
	return Unit{factors: concatFactors(u.factors, other.Unit().Power(-1).factors)}
}

// Power returns u^n. Power(0) is the dimensionless unit.
func (u Unit) Power(n int) Unit {
	return Unit{factors: scaleFactors(u.factors, n, isDimensionlessDescriptor)}
}

// Exponentiate is Power for exponents that arrive as floats. It fails with
// ErrInvalidExponent unless x is integral and every resulting exponent fits
// in an int32.
func (u Unit) Exponentiate(x float64) (Unit, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
		return Unit{}, fmt.Errorf("%w: %v is not an integer", ErrInvalidExponent, x)
	}
	if math.Abs(x) > math.MaxInt32 {
		return Unit{}, fmt.Errorf("%w: %v is out of range", ErrInvalidExponent, x)
	}
	for _, f := range u.factors {
		if isDimensionlessDescriptor(f.Key) {
			continue
		}
		if math.Abs(float64(f.Exp)*x) > math.MaxInt32 {
			return Unit{}, fmt.Errorf("%w: %v is out of range", ErrInvalidExponent, x)
		}
	}
	return u.Power(int(x)), nil
}

// Inverse returns 1/u.
func (u Unit) Inverse() Unit {
	return u.Power(-1)
}

// Simplified merges duplicate descriptors, cancels opposing exponents and
// drops dimensionless factors. Numerator factors come first.
func (u Unit) Simplified() Unit {
	return Unit{factors: simplifyFactors(u.factors, Descriptor.identity, isDimensionlessDescriptor)}
}

// Generic maps every descriptor to its category, keeping the factor
// structure.
func (u Unit) Generic() GenericExpr {
	out := make([]Factor[Category], len(u.factors))
	for i, f := range u.factors {
		out[i] = Factor[Category]{Key: f.Key.Category, Exp: f.Exp}
	}
	return GenericExpr{factors: out}
}

// IsInstance returns true if u's generic expression has exactly the factors
// of g. No simplification or alias expansion takes place, so W is an
// instance of Power but not of Energy / Time.
func (u Unit) IsInstance(g GenericOperand) bool {
	return u.Generic().Equal(g)
}

// IsInstanceEquivalent returns true if u describes the same dimension as g
// once both are expanded and simplified. W is instance-equivalent to Power,
// Energy / Time and Force * Length / Time.
func (u Unit) IsInstanceEquivalent(g GenericOperand) bool {
	return u.Generic().Equivalent(g)
}

// Equal reports whether u and other hold the same factors in any order.
func (u Unit) Equal(other UnitOperand) bool {
	return sameFactors(u.factors, other.Unit().factors, Descriptor.identity)
}

// Find returns the first factor whose descriptor belongs to c.
func (u Unit) Find(c Category) (Factor[Descriptor], error) {
	f, ok := findFactor(u.factors, func(d Descriptor) bool { return d.Category == c })
	if !ok {
		return Factor[Descriptor]{}, fmt.Errorf("%w: no %s factor in %q", ErrUnknownDescriptor, c, u)
	}
	return f, nil
}

// SI returns u expressed in SI reference descriptors together with the
// converter that maps values in u onto the SI unit. The factor structure is
// preserved, so (cm^3).SI() is (m^3) with scale 1e-6.
//
// Affine descriptors are only convertible alone with exponent 1; any other
// use fails with ErrNonConvertibleUnit.
func (u Unit) SI() (Unit, Converter, error) {
	if err := u.checkAffine(); err != nil {
		return Unit{}, Converter{}, err
	}

	out := make([]Factor[Descriptor], 0, len(u.factors))
	conv := Identity
	for _, f := range u.factors {
		si, err := f.Key.Category.SI()
		if err != nil {
			return Unit{}, Converter{}, fmt.Errorf("%w: no SI reference for %s", err, f.Key.Category)
		}
		out = append(out, Factor[Descriptor]{Key: si, Exp: f.Exp})

		if f.Key.IsAffine() {
			conv = conv.Then(f.Key.Converter)
			continue
		}
		conv = conv.Then(f.Key.Converter.pow(f.Exp))
	}
	return Unit{factors: out}, conv, nil
}

// checkAffine enforces that an affine descriptor only appears alone with
// exponent 1. Dimensionless factors do not count as company.
func (u Unit) checkAffine() error {
	var dimensional []Factor[Descriptor]
	for _, f := range u.factors {
		if !isDimensionlessDescriptor(f.Key) {
			dimensional = append(dimensional, f)
		}
	}
	for _, f := range dimensional {
		if !f.Key.IsAffine() {
			continue
		}
		if len(dimensional) != 1 || f.Exp != 1 {
			return fmt.Errorf("%w: %s must appear alone with exponent 1, got %q",
				ErrNonConvertibleUnit, f.Key.Symbol, u)
		}
	}
	return nil
}

// ToUnit returns the converter that maps values in u onto values in target.
// It fails with ErrIncompatibleUnits unless the units are instance
// equivalent, and with ErrNonConvertibleUnit on affine misuse.
func (u Unit) ToUnit(target UnitOperand) (Converter, error) {
	t := target.Unit()
	if !u.IsInstanceEquivalent(t.Generic()) {
		return Converter{}, fmt.Errorf("%w: cannot convert %q to %q", ErrIncompatibleUnits, u, t)
	}
	if u.Equal(t) {
		return Identity, nil
	}

	_, from, err := u.SI()
	if err != nil {
		return Converter{}, err
	}
	_, to, err := t.SI()
	if err != nil {
		return Converter{}, err
	}
	return from.Then(to.Inverse()), nil
}

// Convert converts value from u to target.
func (u Unit) Convert(value float64, target UnitOperand) (float64, error) {
	conv, err := u.ToUnit(target)
	if err != nil {
		return 0, err
	}
	return conv.Apply(value), nil
}

// String renders the canonical symbol, e.g. "Btu / (ft^2) / hr / °R".
// The dimensionless unit renders as "".
func (u Unit) String() string {
	return renderFactors(u.factors, func(d Descriptor) string { return d.Symbol })
}

func isDimensionlessDescriptor(d Descriptor) bool {
	return d.Category == Dimensionless
}

package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Property is a numeric value paired with a unit, e.g. 5 bar or
// 8.8 Btu / (ft^2) / hr / °R. Every operation returns a new Property.
type Property struct {
	Value float64
	Unit  Unit
}

// P creates a property. Without a unit the property is dimensionless.
func P(value float64, unit ...UnitOperand) Property {
	var u Unit
	for _, op := range unit {
		u = u.Multiply(op)
	}
	return Property{Value: value, Unit: u}
}

// ToUnit converts p to target. Affine units are handled, so 100 °C becomes
// 373.15 K.
func (p Property) ToUnit(target UnitOperand) (Property, error) {
	t := target.Unit()
	conv, err := p.Unit.ToUnit(t)
	if err != nil {
		return Property{}, err
	}
	return Property{Value: conv.Apply(p.Value), Unit: t}, nil
}

// ToSI converts p to SI reference descriptors, keeping the factor structure.
func (p Property) ToSI() (Property, error) {
	si, conv, err := p.Unit.SI()
	if err != nil {
		return Property{}, err
	}
	return Property{Value: conv.Apply(p.Value), Unit: si}, nil
}

// Add returns p + other in p's unit.
func (p Property) Add(other Property) (Property, error) {
	v, err := other.valueIn(p.Unit)
	if err != nil {
		return Property{}, fmt.Errorf("cannot add %q to %q: %w", other, p, err)
	}
	return Property{Value: p.Value + v, Unit: p.Unit}, nil
}

// Subtract returns p - other in p's unit.
func (p Property) Subtract(other Property) (Property, error) {
	v, err := other.valueIn(p.Unit)
	if err != nil {
		return Property{}, fmt.Errorf("cannot subtract %q from %q: %w", other, p, err)
	}
	return Property{Value: p.Value - v, Unit: p.Unit}, nil
}

// Multiply returns p * other. The resulting unit is not simplified.
func (p Property) Multiply(other Property) Property {
	return Property{Value: p.Value * other.Value, Unit: p.Unit.Multiply(other.Unit)}
}

// Scale returns p with its value multiplied by k.
func (p Property) Scale(k float64) Property {
	return Property{Value: p.Value * k, Unit: p.Unit}
}

// Divide returns p / other. The resulting unit is not simplified. Dividing
// by a zero-valued property fails with ErrZeroDivisor.
func (p Property) Divide(other Property) (Property, error) {
	if other.Value == 0 {
		return Property{}, fmt.Errorf("%w: cannot divide %q by %q", ErrZeroDivisor, p, other)
	}
	return Property{Value: p.Value / other.Value, Unit: p.Unit.Divide(other.Unit)}, nil
}

// DivideScalar returns p with its value divided by k.
func (p Property) DivideScalar(k float64) (Property, error) {
	if k == 0 {
		return Property{}, fmt.Errorf("%w: cannot divide %q by 0", ErrZeroDivisor, p)
	}
	return Property{Value: p.Value / k, Unit: p.Unit}, nil
}

// Inverse returns 1/p.
func (p Property) Inverse() (Property, error) {
	if p.Value == 0 {
		return Property{}, fmt.Errorf("%w: cannot invert %q", ErrZeroDivisor, p)
	}
	return Property{Value: 1 / p.Value, Unit: p.Unit.Inverse()}, nil
}

// Negate returns -p.
func (p Property) Negate() Property {
	return Property{Value: -p.Value, Unit: p.Unit}
}

// Power returns p^n.
func (p Property) Power(n int) Property {
	return Property{Value: math.Pow(p.Value, float64(n)), Unit: p.Unit.Power(n)}
}

// Equal compares p and other after converting other to p's unit. The values
// are close when |a-b| <= max(relTol*max(|a|,|b|), absTol).
func (p Property) Equal(other Property, relTol, absTol float64) (bool, error) {
	if !p.Unit.IsInstanceEquivalent(other.Unit.Generic()) {
		return false, nil
	}
	v, err := other.valueIn(p.Unit)
	if err != nil {
		return false, err
	}
	return isClose(p.Value, v, relTol, absTol), nil
}

// Compare returns -1, 0 or +1 as p is less than, equal to or greater than
// other, after converting other to p's unit.
func (p Property) Compare(other Property) (int, error) {
	v, err := other.valueIn(p.Unit)
	if err != nil {
		return 0, fmt.Errorf("cannot compare %q to %q: %w", other, p, err)
	}
	switch {
	case p.Value < v:
		return -1, nil
	case p.Value > v:
		return 1, nil
	default:
		return 0, nil
	}
}

// String renders the value followed by the unit, e.g. "7.0684 bar".
// Dimensionless properties render the value alone.
func (p Property) String() string {
	value := strconv.FormatFloat(p.Value, 'g', -1, 64)
	unit := p.Unit.String()
	if unit == "" {
		return value
	}
	return value + " " + unit
}

// valueIn returns p's value expressed in target.
func (p Property) valueIn(target Unit) (float64, error) {
	if !p.Unit.IsInstanceEquivalent(target.Generic()) {
		return 0, fmt.Errorf("%w: %q is not compatible with %q", ErrIncompatibleUnits, p.Unit, target)
	}
	return p.Unit.Convert(p.Value, target)
}

func isClose(a, b, relTol, absTol float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	return diff <= math.Max(relTol*math.Max(math.Abs(a), math.Abs(b)), absTol)
}

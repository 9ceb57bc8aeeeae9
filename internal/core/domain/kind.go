package domain

import "fmt"

// PropertyKind constructs validated properties of one generic type, such
// as a distance or an absolute temperature.
type PropertyKind struct {
	// Name identifies the kind in error messages.
	Name string
	// Generic is the generic expression every unit must be an instance of.
	Generic GenericExpr
	// DefaultUnit is used when New is called without a unit.
	// If nil, the SI unit of Generic is used.
	DefaultUnit *Unit
	// Validate checks the value after unit checks pass. May be nil.
	Validate func(p Property) error
}

// Predefined kinds.
var (
	// AbsoluteTemperature rejects temperatures below absolute zero.
	AbsoluteTemperature = PropertyKind{
		Name:     "AbsoluteTemperature",
		Generic:  Temperature.Expr(),
		Validate: nonNegativeIn(Kelvin.Unit()),
	}

	// Distance rejects negative lengths.
	Distance = PropertyKind{
		Name:     "Distance",
		Generic:  Length.Expr(),
		Validate: nonNegativeIn(Meter.Unit()),
	}

	// Duration rejects negative times.
	Duration = PropertyKind{
		Name:     "Duration",
		Generic:  Time.Expr(),
		Validate: nonNegativeIn(Second.Unit()),
	}
)

// New creates a property of this kind. The unit must be an instance of the
// kind's generic expression.
func (k PropertyKind) New(value float64, unit ...UnitOperand) (Property, error) {
	var u Unit
	switch {
	case len(unit) > 0:
		u = P(value, unit...).Unit
	case k.DefaultUnit != nil:
		u = *k.DefaultUnit
	default:
		si, err := k.siUnit()
		if err != nil {
			return Property{}, err
		}
		u = si
	}

	if !u.IsInstance(k.Generic) {
		return Property{}, fmt.Errorf("%w: cannot create %s with %q units; expected %s units",
			ErrPropertyValidation, k.Name, u, k.Generic)
	}

	p := Property{Value: value, Unit: u}
	if k.Validate != nil {
		if err := k.Validate(p); err != nil {
			return Property{}, fmt.Errorf("%w: %s: %v", ErrPropertyValidation, k.Name, err)
		}
	}
	return p, nil
}

// siUnit builds the SI unit for the kind's generic expression.
func (k PropertyKind) siUnit() (Unit, error) {
	var u Unit
	for _, f := range k.Generic.factors {
		si, err := f.Key.SI()
		if err != nil {
			return Unit{}, fmt.Errorf("%w: no SI reference for %s", err, f.Key)
		}
		u = u.Multiply(si.Power(f.Exp))
	}
	return u, nil
}

func nonNegativeIn(ref Unit) func(Property) error {
	return func(p Property) error {
		v, err := p.Unit.Convert(p.Value, ref)
		if err != nil {
			return err
		}
		if v < 0 {
			return fmt.Errorf("value %v %s is below zero", v, ref)
		}
		return nil
	}
}

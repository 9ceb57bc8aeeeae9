package domain

// Category is a generic measurement category such as Length or Energy.
// A category is independent of any specific unit: metres and feet are
// both Length.
type Category string

// Base categories.
const (
	// Dimensionless denotes quantities without a unit of measurement.
	Dimensionless Category = "Dimensionless"
	// Length is measured in metres.
	Length Category = "Length"
	// Mass is measured in kilograms.
	Mass Category = "Mass"
	// Time is measured in seconds.
	Time Category = "Time"
	// Temperature is measured in kelvin.
	Temperature Category = "Temperature"
	// AmountOfSubstance is measured in moles.
	AmountOfSubstance Category = "AmountOfSubstance"
	// ElectricCurrent is measured in amperes.
	ElectricCurrent Category = "ElectricCurrent"
	// LuminousIntensity is measured in candelas.
	LuminousIntensity Category = "LuminousIntensity"
)

// Derived categories. Each aliases an expression over the base categories.
const (
	// Force aliases Mass * Length / Time^2.
	Force Category = "Force"
	// Pressure aliases Mass / Length / Time^2.
	Pressure Category = "Pressure"
	// Energy aliases Mass * Length^2 / Time^2.
	Energy Category = "Energy"
	// Power aliases Mass * Length^2 / Time^3.
	Power Category = "Power"
)

// categoryInfo holds the static facts about a category.
type categoryInfo struct {
	siSymbol string
	alias    []Factor[Category]
}

var categories = map[Category]categoryInfo{
	Dimensionless:     {siSymbol: ""},
	Length:            {siSymbol: "m"},
	Mass:              {siSymbol: "kg"},
	Time:              {siSymbol: "s"},
	Temperature:       {siSymbol: "K"},
	AmountOfSubstance: {siSymbol: "mol"},
	ElectricCurrent:   {siSymbol: "A"},
	LuminousIntensity: {siSymbol: "cd"},
	Force: {
		siSymbol: "N",
		alias:    []Factor[Category]{{Mass, 1}, {Length, 1}, {Time, -2}},
	},
	Pressure: {
		siSymbol: "Pa",
		alias:    []Factor[Category]{{Mass, 1}, {Length, -1}, {Time, -2}},
	},
	Energy: {
		siSymbol: "J",
		alias:    []Factor[Category]{{Mass, 1}, {Length, 2}, {Time, -2}},
	},
	Power: {
		siSymbol: "W",
		alias:    []Factor[Category]{{Mass, 1}, {Length, 2}, {Time, -3}},
	},
}

// Categories returns every known category, base categories first.
func Categories() []Category {
	return []Category{
		Dimensionless, Length, Mass, Time, Temperature,
		AmountOfSubstance, ElectricCurrent, LuminousIntensity,
		Force, Pressure, Energy, Power,
	}
}

// ParseCategory returns the category with the given name.
func ParseCategory(name string) (Category, bool) {
	c := Category(name)
	_, ok := categories[c]
	return c, ok
}

// IsValid returns true if c is a known category.
func (c Category) IsValid() bool {
	_, ok := categories[c]
	return ok
}

// IsAlias returns true if c is a derived category.
func (c Category) IsAlias() bool {
	return len(categories[c].alias) > 0
}

// Aliased returns the base-category expression that c stands for.
// Base categories return themselves.
func (c Category) Aliased() GenericExpr {
	if !c.IsAlias() {
		return c.Expr()
	}
	return GenericExpr{factors: concatFactors(nil, categories[c].alias)}
}

// SI returns the SI reference descriptor of c.
func (c Category) SI() (Descriptor, error) {
	info, ok := categories[c]
	if !ok {
		return Descriptor{}, ErrUnknownDescriptor
	}
	d, ok := builtinBySymbol[info.siSymbol]
	if !ok || d.Category != c {
		return Descriptor{}, ErrUnknownDescriptor
	}
	return d, nil
}

// Expr returns c as a single-factor generic expression.
func (c Category) Expr() GenericExpr {
	return GenericExpr{factors: []Factor[Category]{{Key: c, Exp: 1}}}
}

// Multiply returns c * other.
func (c Category) Multiply(other GenericOperand) GenericExpr {
	return c.Expr().Multiply(other)
}

// Divide returns c / other.
func (c Category) Divide(other GenericOperand) GenericExpr {
	return c.Expr().Divide(other)
}

// Power returns c^n.
func (c Category) Power(n int) GenericExpr {
	return c.Expr().Power(n)
}

// String returns the category name.
func (c Category) String() string {
	return string(c)
}

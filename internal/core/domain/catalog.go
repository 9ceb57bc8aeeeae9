package domain

import "sort"

// Fahrenheit-to-kelvin constants.
const (
	rankineScale     = 5.0 / 9.0
	fahrenheitOffset = 273.15 - 32.0*rankineScale
)

// Predefined descriptors. Converters map each unit onto its category's SI
// reference.
var (
	NonDimensional = NewDescriptor("", Dimensionless, Identity)

	Celsius    = NewDescriptor("°C", Temperature, Affine(1, 273.15))
	Fahrenheit = NewDescriptor("°F", Temperature, Affine(rankineScale, fahrenheitOffset))
	Kelvin     = NewDescriptor("K", Temperature, Identity)
	Rankine    = NewDescriptor("°R", Temperature, Linear(rankineScale))

	Millimeter   = NewDescriptor("mm", Length, Linear(Milli.Of(1)))
	Centimeter   = NewDescriptor("cm", Length, Linear(Centi.Of(1)))
	Meter        = NewDescriptor("m", Length, Identity)
	Kilometer    = NewDescriptor("km", Length, Linear(Kilo.Of(1)))
	Inch         = NewDescriptor("in", Length, Linear(0.0254))
	Foot         = NewDescriptor("ft", Length, Linear(0.3048))
	Yard         = NewDescriptor("yd", Length, Linear(0.9144))
	Mile         = NewDescriptor("mi", Length, Linear(1609.344))
	NauticalMile = NewDescriptor("NM", Length, Linear(1852))

	Milligram   = NewDescriptor("mg", Mass, Linear(Micro.Of(1)))
	Gram        = NewDescriptor("g", Mass, Linear(Milli.Of(1)))
	Kilogram    = NewDescriptor("kg", Mass, Identity)
	MetricTonne = NewDescriptor("MT", Mass, Linear(Kilo.Of(1)))
	Pound       = NewDescriptor("lb", Mass, Linear(0.45359237))

	Mol     = NewDescriptor("mol", AmountOfSubstance, Identity)
	KiloMol = NewDescriptor("kmol", AmountOfSubstance, Linear(Kilo.Of(1)))

	Millisecond = NewDescriptor("ms", Time, Linear(Milli.Of(1)))
	Second      = NewDescriptor("s", Time, Identity)
	Minute      = NewDescriptor("min", Time, Linear(60))
	Hour        = NewDescriptor("hr", Time, Linear(3600))
	Day         = NewDescriptor("d", Time, Linear(86400))
	Week        = NewDescriptor("week", Time, Linear(7*86400))
	Month       = NewDescriptor("month", Time, Linear(365.0/12.0*86400))
	Year        = NewDescriptor("yr", Time, Linear(365*86400))

	Milliampere = NewDescriptor("mA", ElectricCurrent, Linear(Milli.Of(1)))
	Ampere      = NewDescriptor("A", ElectricCurrent, Identity)
	Kiloampere  = NewDescriptor("kA", ElectricCurrent, Linear(Kilo.Of(1)))

	Candela = NewDescriptor("cd", LuminousIntensity, Identity)

	Newton = NewDescriptor("N", Force, Identity)
	Dyne   = NewDescriptor("dyn", Force, Linear(1e-5))

	Millibar   = NewDescriptor("mbar", Pressure, Linear(100))
	Bar        = NewDescriptor("bar", Pressure, Linear(1e5))
	PSI        = NewDescriptor("psi", Pressure, Linear(6894.757293168))
	Pascal     = NewDescriptor("Pa", Pressure, Identity)
	Kilopascal = NewDescriptor("kPa", Pressure, Linear(Kilo.Of(1)))
	Megapascal = NewDescriptor("MPa", Pressure, Linear(Mega.Of(1)))

	Joule        = NewDescriptor("J", Energy, Identity)
	Kilojoule    = NewDescriptor("kJ", Energy, Linear(Kilo.Of(1)))
	Megajoule    = NewDescriptor("MJ", Energy, Linear(Mega.Of(1)))
	Gigajoule    = NewDescriptor("GJ", Energy, Linear(Giga.Of(1)))
	Calorie      = NewDescriptor("cal", Energy, Linear(4.184))
	Kilocalorie  = NewDescriptor("kcal", Energy, Linear(Kilo.Of(4.184)))
	BTU          = NewDescriptor("Btu", Energy, Linear(1055.05585262))
	Electronvolt = NewDescriptor("eV", Energy, Linear(1.602176634e-19))
	WattHour     = NewDescriptor("Wh", Energy, Linear(3600))
	KilowattHour = NewDescriptor("kWh", Energy, Linear(Kilo.Of(3600)))

	Watt     = NewDescriptor("W", Power, Identity)
	Kilowatt = NewDescriptor("kW", Power, Linear(Kilo.Of(1)))
	Megawatt = NewDescriptor("MW", Power, Linear(Mega.Of(1)))
	Gigawatt = NewDescriptor("GW", Power, Linear(Giga.Of(1)))
)

var builtins = []Descriptor{
	NonDimensional,
	Celsius, Fahrenheit, Kelvin, Rankine,
	Millimeter, Centimeter, Meter, Kilometer, Inch, Foot, Yard, Mile, NauticalMile,
	Milligram, Gram, Kilogram, MetricTonne, Pound,
	Mol, KiloMol,
	Millisecond, Second, Minute, Hour, Day, Week, Month, Year,
	Milliampere, Ampere, Kiloampere,
	Candela,
	Newton, Dyne,
	Millibar, Bar, PSI, Pascal, Kilopascal, Megapascal,
	Joule, Kilojoule, Megajoule, Gigajoule, Calorie, Kilocalorie, BTU, Electronvolt, WattHour, KilowattHour,
	Watt, Kilowatt, Megawatt, Gigawatt,
}

var builtinBySymbol = indexDescriptors(builtins)

func indexDescriptors(ds []Descriptor) map[string]Descriptor {
	m := make(map[string]Descriptor, len(ds))
	for _, d := range ds {
		m[d.Symbol] = d
	}
	return m
}

// Builtin returns the predefined descriptors, grouped by category in
// declaration order.
func Builtin() []Descriptor {
	out := make([]Descriptor, len(builtins))
	copy(out, builtins)
	return out
}

// LookupBuiltin returns the predefined descriptor with the given symbol.
func LookupBuiltin(symbol string) (Descriptor, bool) {
	d, ok := builtinBySymbol[symbol]
	return d, ok
}

// SortDescriptors orders descriptors by category (declaration order of
// Categories) and then by SI scale.
func SortDescriptors(ds []Descriptor) {
	rank := make(map[Category]int)
	for i, c := range Categories() {
		rank[c] = i
	}
	sort.SliceStable(ds, func(i, j int) bool {
		if ds[i].Category != ds[j].Category {
			return rank[ds[i].Category] < rank[ds[j].Category]
		}
		return ds[i].Converter.Scale < ds[j].Converter.Scale
	})
}

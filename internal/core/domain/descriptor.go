package domain

// Descriptor is an atomic measurement unit such as metre or °C.
// It belongs to exactly one Category and carries the Converter that maps its
// values onto the category's SI reference.
type Descriptor struct {
	Symbol    string
	Category  Category
	Converter Converter
}

// NewDescriptor creates a descriptor.
func NewDescriptor(symbol string, category Category, converter Converter) Descriptor {
	return Descriptor{Symbol: symbol, Category: category, Converter: converter}
}

// descriptorID is the part of a descriptor that determines equality.
type descriptorID struct {
	symbol   string
	category Category
}

func (d Descriptor) identity() descriptorID {
	return descriptorID{symbol: d.Symbol, category: d.Category}
}

// Equal returns true if both descriptors share symbol and category.
func (d Descriptor) Equal(other Descriptor) bool {
	return d.identity() == other.identity()
}

// IsAffine returns true if the descriptor converts with an offset.
func (d Descriptor) IsAffine() bool {
	return d.Converter.IsAffine()
}

// IsSI returns true if d is its category's SI reference.
func (d Descriptor) IsSI() bool {
	si, err := d.Category.SI()
	return err == nil && si.Equal(d)
}

// Unit returns d as a single-factor unit.
func (d Descriptor) Unit() Unit {
	return Unit{factors: []Factor[Descriptor]{{Key: d, Exp: 1}}}
}

// Multiply returns d * other.
func (d Descriptor) Multiply(other UnitOperand) Unit {
	return d.Unit().Multiply(other)
}

// Divide returns d / other.
func (d Descriptor) Divide(other UnitOperand) Unit {
	return d.Unit().Divide(other)
}

// Power returns d^n.
func (d Descriptor) Power(n int) Unit {
	return d.Unit().Power(n)
}

// IsInstance returns true if d belongs exactly to the generic g.
func (d Descriptor) IsInstance(g GenericOperand) bool {
	return d.Unit().IsInstance(g)
}

// IsInstanceEquivalent returns true if d is equivalent to the generic g.
func (d Descriptor) IsInstanceEquivalent(g GenericOperand) bool {
	return d.Unit().IsInstanceEquivalent(g)
}

// String returns the descriptor symbol.
func (d Descriptor) String() string {
	return d.Symbol
}

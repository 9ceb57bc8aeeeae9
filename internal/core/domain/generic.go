package domain

// GenericOperand is anything that can be expressed as a generic expression:
// a Category or a GenericExpr.
type GenericOperand interface {
	Expr() GenericExpr
}

// GenericExpr is a product of categories raised to integer exponents,
// e.g. Energy / Time or Mass * Length^2 / Time^3. It is the category-level
// counterpart of Unit and is used only for matching, never for numeric
// conversion.
type GenericExpr struct {
	factors []Factor[Category]
}

// NewGenericExpr builds an expression from factors. Zero exponents are
// discarded.
func NewGenericExpr(factors ...Factor[Category]) GenericExpr {
	out := make([]Factor[Category], 0, len(factors))
	for _, f := range factors {
		if f.Exp != 0 {
			out = append(out, f)
		}
	}
	return GenericExpr{factors: out}
}

// Expr returns g itself so GenericExpr satisfies GenericOperand.
func (g GenericExpr) Expr() GenericExpr {
	return g
}

// Factors returns a copy of the factors in construction order.
func (g GenericExpr) Factors() []Factor[Category] {
	return concatFactors(nil, g.factors)
}

// IsDimensionless returns true if g has no factors other than Dimensionless.
func (g GenericExpr) IsDimensionless() bool {
	return len(g.Simplified().factors) == 0
}

// Multiply returns g * other without simplification.
func (g GenericExpr) Multiply(other GenericOperand) GenericExpr {
	return GenericExpr{factors: concatFactors(g.factors, other.Expr().factors)}
}

// Divide returns g / other without simplification.
func (g GenericExpr) Divide(other GenericOperand) GenericExpr {
	return GenericExpr{factors: concatFactors(g.factors, other.Expr().Power(-1).factors)}
}

// Power returns g^n. Dimensionless factors keep exponent 1.
func (g GenericExpr) Power(n int) GenericExpr {
	return GenericExpr{factors: scaleFactors(g.factors, n, isDimensionlessCategory)}
}

// Simplified merges duplicate categories, cancels opposing exponents and
// drops Dimensionless factors.
func (g GenericExpr) Simplified() GenericExpr {
	return GenericExpr{factors: simplifyFactors(g.factors, selfKey[Category], isDimensionlessCategory)}
}

// Expanded replaces every derived category by its base-category expression,
// recursively. The result is not simplified.
func (g GenericExpr) Expanded() GenericExpr {
	var out []Factor[Category]
	for _, f := range g.factors {
		if !f.Key.IsAlias() {
			out = append(out, f)
			continue
		}
		expanded := f.Key.Aliased().Expanded().Power(f.Exp)
		out = append(out, expanded.factors...)
	}
	return GenericExpr{factors: out}
}

// Equal reports whether g and other hold exactly the same factors, in any
// order, without simplification or alias expansion.
func (g GenericExpr) Equal(other GenericOperand) bool {
	return sameFactors(g.factors, other.Expr().factors, selfKey[Category])
}

// Equivalent reports whether g and other describe the same physical
// dimension once aliases are expanded and both sides are simplified.
// Power, Energy / Time and Force * Length / Time are all equivalent.
func (g GenericExpr) Equivalent(other GenericOperand) bool {
	a := g.Expanded().Simplified()
	b := other.Expr().Expanded().Simplified()
	return sameFactors(a.factors, b.factors, selfKey[Category])
}

// Find returns the first factor for category c.
func (g GenericExpr) Find(c Category) (Factor[Category], error) {
	f, ok := findFactor(g.factors, func(k Category) bool { return k == c })
	if !ok {
		return Factor[Category]{}, ErrUnknownDescriptor
	}
	return f, nil
}

// String renders g with category names, e.g. "(Length^2) / Time".
func (g GenericExpr) String() string {
	return renderFactors(g.factors, func(c Category) string {
		if c == Dimensionless {
			return ""
		}
		return string(c)
	})
}

func isDimensionlessCategory(c Category) bool {
	return c == Dimensionless
}

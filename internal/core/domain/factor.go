package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Factor is one element of a power-product: a key raised to a non-zero
// integer exponent. Units use Factor[Descriptor]; generic expressions use
// Factor[Category].
type Factor[K comparable] struct {
	Key K
	Exp int
}

// The helpers below implement the power-product algebra once for any
// comparable key. Every helper returns a fresh slice; inputs are never
// modified.

// concatFactors appends b to a without merging duplicates.
func concatFactors[K comparable](a, b []Factor[K]) []Factor[K] {
	out := make([]Factor[K], 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// scaleFactors multiplies every exponent by n. Keys for which keep returns
// false are copied unchanged. n == 0 yields an empty product.
func scaleFactors[K comparable](fs []Factor[K], n int, keep func(K) bool) []Factor[K] {
	if n == 0 {
		return nil
	}
	out := make([]Factor[K], 0, len(fs))
	for _, f := range fs {
		if keep != nil && keep(f.Key) {
			out = append(out, f)
			continue
		}
		out = append(out, Factor[K]{Key: f.Key, Exp: f.Exp * n})
	}
	return out
}

// simplifyFactors merges factors whose keys share an identity by summing
// exponents, drops zero results and keys rejected by drop, and orders the
// survivors with positive exponents first. Within each sign the first-seen
// order and key are kept.
func simplifyFactors[K, I comparable](fs []Factor[K], id func(K) I, drop func(K) bool) []Factor[K] {
	sums := make(map[I]int, len(fs))
	keys := make(map[I]K, len(fs))
	order := make([]I, 0, len(fs))
	for _, f := range fs {
		if drop != nil && drop(f.Key) {
			continue
		}
		k := id(f.Key)
		if _, seen := sums[k]; !seen {
			order = append(order, k)
			keys[k] = f.Key
		}
		sums[k] += f.Exp
	}

	var num, den []Factor[K]
	for _, k := range order {
		switch exp := sums[k]; {
		case exp > 0:
			num = append(num, Factor[K]{Key: keys[k], Exp: exp})
		case exp < 0:
			den = append(den, Factor[K]{Key: keys[k], Exp: exp})
		}
	}
	return concatFactors(num, den)
}

// sameFactors reports whether a and b hold the same multiset of
// (identity, exponent) pairs, regardless of order.
func sameFactors[K, I comparable](a, b []Factor[K], id func(K) I) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[Factor[I]]int, len(a))
	for _, f := range a {
		counts[Factor[I]{Key: id(f.Key), Exp: f.Exp}]++
	}
	for _, f := range b {
		k := Factor[I]{Key: id(f.Key), Exp: f.Exp}
		if counts[k] == 0 {
			return false
		}
		counts[k]--
	}
	return true
}

// selfKey is the identity for keys that are their own identity.
func selfKey[K comparable](k K) K {
	return k
}

// findFactor returns the first factor whose key satisfies match.
func findFactor[K comparable](fs []Factor[K], match func(K) bool) (Factor[K], bool) {
	for _, f := range fs {
		if match(f.Key) {
			return f, true
		}
	}
	return Factor[K]{}, false
}

// splitFactors separates positive and negative exponents, preserving order.
func splitFactors[K comparable](fs []Factor[K]) (num, den []Factor[K]) {
	for _, f := range fs {
		if f.Exp > 0 {
			num = append(num, f)
		} else if f.Exp < 0 {
			den = append(den, f)
		}
	}
	return num, den
}

// renderFactors produces the canonical "a * (b^2) / c" form. Numerator and
// denominator strings are each sorted so the output does not depend on the
// order in which a product was built.
func renderFactors[K comparable](fs []Factor[K], name func(K) string) string {
	num, den := splitFactors(fs)

	nums := make([]string, 0, len(num))
	for _, f := range num {
		if s := renderFactor(name(f.Key), f.Exp); s != "" {
			nums = append(nums, s)
		}
	}
	dens := make([]string, 0, len(den))
	for _, f := range den {
		if s := renderFactor(name(f.Key), -f.Exp); s != "" {
			dens = append(dens, s)
		}
	}
	sort.Strings(nums)
	sort.Strings(dens)

	var b strings.Builder
	b.WriteString(strings.Join(nums, " * "))
	for _, d := range dens {
		b.WriteString(" / ")
		b.WriteString(d)
	}
	return strings.TrimSpace(b.String())
}

func renderFactor(name string, exp int) string {
	if name == "" {
		return ""
	}
	if exp == 1 {
		return name
	}
	return fmt.Sprintf("(%s^%d)", name, exp)
}

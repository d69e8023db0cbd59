package core

import "axlab.dev/vvvm/pkg/scalar"

// Meet of two values in the partial order. Defined exactly where
// `PartialCompare` is; NaN operands are never repaired.
func GreatestLowerBound(a, b Value) (Value, bool) {
	if a.kind == KindFloat && b.kind == KindFloat {
		f, ok := scalar.GreatestLowerBound(a.scalar(), b.scalar())
		if !ok {
			return Value{}, false
		}
		return Float(float64(f)), true
	}

	cmp, ok := PartialCompare(a, b)
	if !ok {
		return Value{}, false
	}
	if cmp <= 0 {
		return a, true
	}
	return b, true
}

// Join of two values in the partial order.
func LeastUpperBound(a, b Value) (Value, bool) {
	if a.kind == KindFloat && b.kind == KindFloat {
		f, ok := scalar.LeastUpperBound(a.scalar(), b.scalar())
		if !ok {
			return Value{}, false
		}
		return Float(float64(f)), true
	}

	cmp, ok := PartialCompare(a, b)
	if !ok {
		return Value{}, false
	}
	if cmp >= 0 {
		return a, true
	}
	return b, true
}

// Package scalar implements the ordering rules for floating point scalars.
//
// Two relations are provided. The total order treats every NaN as equal to
// every other NaN and sorts them below all other values, and it tells `-0.0`
// apart from `0.0`. It is used for map keys and value equality. The partial
// order follows IEEE-754, where NaN is incomparable to everything.
package scalar

import (
	"math"
)

// A 64-bit float ordered by the total order.
type Float float64

func (f Float) IsNaN() bool {
	return math.IsNaN(float64(f))
}

func (f Float) negative() bool {
	return math.Signbit(float64(f))
}

// Two NaNs are equal regardless of their payload. Everything else is equal
// only if the bits match, so `-0.0` and `0.0` differ.
func Equal(a, b Float) bool {
	na, nb := a.IsNaN(), b.IsNaN()
	if na || nb {
		return na && nb
	}
	return math.Float64bits(float64(a)) == math.Float64bits(float64(b))
}

// Total order over floats: NaN first, then by sign, then by magnitude.
func Compare(a, b Float) int {
	na, nb := a.IsNaN(), b.IsNaN()
	switch {
	case na && nb:
		return 0
	case na:
		return -1
	case nb:
		return +1
	}

	sa, sb := a.negative(), b.negative()
	if sa && !sb {
		return -1
	}
	if !sa && sb {
		return +1
	}

	if a < b {
		return -1
	} else if a > b {
		return +1
	} else {
		return 0
	}
}

func Less(a, b Float) bool {
	return Compare(a, b) < 0
}

// IEEE comparison. Reports `ok == false` if either operand is NaN.
func PartialCompare(a, b Float) (cmp int, ok bool) {
	if a.IsNaN() || b.IsNaN() {
		return 0, false
	}
	if a < b {
		return -1, true
	} else if a > b {
		return +1, true
	} else {
		return 0, true
	}
}

// Meet in the partial order. Undefined if either operand is NaN.
func GreatestLowerBound(a, b Float) (Float, bool) {
	if a.IsNaN() || b.IsNaN() {
		return 0, false
	}
	return Float(math.Min(float64(a), float64(b))), true
}

// Join in the partial order. Undefined if either operand is NaN.
func LeastUpperBound(a, b Float) (Float, bool) {
	if a.IsNaN() || b.IsNaN() {
		return 0, false
	}
	return Float(math.Max(float64(a), float64(b))), true
}

// NaN bits are collapsed into this single pattern.
const NaNBits int64 = -1

// Raw IEEE bits of the float. Every NaN maps to `NaNBits`.
func Bits(f Float) int64 {
	if f.IsNaN() {
		return NaNBits
	}
	return int64(math.Float64bits(float64(f)))
}

func FromBits(n int64) Float {
	return Float(math.Float64frombits(uint64(n)))
}

const (
	minInt = -9223372036854775808.0 // -2^63
	maxInt = 9223372036854775808.0  // 2^63
)

// Truncates towards zero. Fails for NaN and anything outside the range of
// a signed 64-bit integer.
func ToInt(f Float) (int64, bool) {
	if f.IsNaN() || f < minInt || f >= maxInt {
		return 0, false
	}
	return int64(f), true
}

// Hash consistent with `Equal`.
func Hash(f Float) uint64 {
	if f.IsNaN() {
		return math.MaxUint64
	}
	return math.Float64bits(float64(f))
}

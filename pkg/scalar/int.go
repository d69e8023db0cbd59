package scalar

import (
	"math"
	"math/bits"
)

// Integer arithmetic in three flavors. The `Checked*` functions report
// overflow (and division by zero) with `ok == false`, the `Saturating*`
// functions clamp to the representable range, and the `Wrapping*` functions
// use two's complement modular arithmetic.
//
// Division and remainder come in a truncating flavor (Go's `/` and `%`) and
// an Euclidean one, where the remainder is never negative.

func CheckedAdd(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}

func CheckedSub(a, b int64) (int64, bool) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return 0, false
	}
	return c, true
}

func CheckedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

func CheckedDiv(a, b int64) (int64, bool) {
	if b == 0 || (a == math.MinInt64 && b == -1) {
		return 0, false
	}
	return a / b, true
}

func CheckedRem(a, b int64) (int64, bool) {
	if b == 0 || (a == math.MinInt64 && b == -1) {
		return 0, false
	}
	return a % b, true
}

func CheckedDivEuclid(a, b int64) (int64, bool) {
	if b == 0 || (a == math.MinInt64 && b == -1) {
		return 0, false
	}
	return divEuclid(a, b), true
}

func CheckedRemEuclid(a, b int64) (int64, bool) {
	if b == 0 || (a == math.MinInt64 && b == -1) {
		return 0, false
	}
	return remEuclid(a, b), true
}

func CheckedNeg(a int64) (int64, bool) {
	if a == math.MinInt64 {
		return 0, false
	}
	return -a, true
}

func CheckedAbs(a int64) (int64, bool) {
	if a == math.MinInt64 {
		return 0, false
	}
	if a < 0 {
		return -a, true
	}
	return a, true
}

// The exponent must not be negative.
func CheckedPow(base, exp int64) (int64, bool) {
	var (
		out = int64(1)
		ok  bool
	)
	for exp > 0 {
		if exp&1 == 1 {
			if out, ok = CheckedMul(out, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp > 0 {
			if base, ok = CheckedMul(base, base); !ok {
				return 0, false
			}
		}
	}
	return out, true
}

func SaturatingAdd(a, b int64) int64 {
	if c, ok := CheckedAdd(a, b); ok {
		return c
	}
	if b > 0 {
		return math.MaxInt64
	}
	return math.MinInt64
}

func SaturatingSub(a, b int64) int64 {
	if c, ok := CheckedSub(a, b); ok {
		return c
	}
	if b < 0 {
		return math.MaxInt64
	}
	return math.MinInt64
}

func SaturatingMul(a, b int64) int64 {
	if c, ok := CheckedMul(a, b); ok {
		return c
	}
	if (a < 0) != (b < 0) {
		return math.MinInt64
	}
	return math.MaxInt64
}

// The divisor must not be zero.
func SaturatingDiv(a, b int64) int64 {
	if a == math.MinInt64 && b == -1 {
		return math.MaxInt64
	}
	return a / b
}

func SaturatingDivEuclid(a, b int64) int64 {
	if a == math.MinInt64 && b == -1 {
		return math.MaxInt64
	}
	return divEuclid(a, b)
}

func SaturatingRem(a, b int64) int64 {
	if b == -1 {
		return 0
	}
	return a % b
}

func SaturatingRemEuclid(a, b int64) int64 {
	if b == -1 {
		return 0
	}
	return remEuclid(a, b)
}

func SaturatingNeg(a int64) int64 {
	if a == math.MinInt64 {
		return math.MaxInt64
	}
	return -a
}

func SaturatingAbs(a int64) int64 {
	if a == math.MinInt64 {
		return math.MaxInt64
	}
	if a < 0 {
		return -a
	}
	return a
}

func SaturatingPow(base, exp int64) int64 {
	if c, ok := CheckedPow(base, exp); ok {
		return c
	}
	if base < 0 && exp&1 == 1 {
		return math.MinInt64
	}
	return math.MaxInt64
}

func WrappingAdd(a, b int64) int64 { return a + b }
func WrappingSub(a, b int64) int64 { return a - b }
func WrappingMul(a, b int64) int64 { return a * b }

// `MinInt64 / -1` wraps around to `MinInt64`.
func WrappingDiv(a, b int64) int64 {
	if b == -1 {
		return -a
	}
	return a / b
}

func WrappingDivEuclid(a, b int64) int64 {
	if b == -1 {
		return -a
	}
	return divEuclid(a, b)
}

func WrappingRem(a, b int64) int64 {
	if b == -1 {
		return 0
	}
	return a % b
}

func WrappingRemEuclid(a, b int64) int64 {
	if b == -1 {
		return 0
	}
	return remEuclid(a, b)
}

func WrappingNeg(a int64) int64 {
	return -a
}

func WrappingAbs(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

func WrappingPow(base, exp int64) int64 {
	out := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			out *= base
		}
		exp >>= 1
		base *= base
	}
	return out
}

func divEuclid(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		if b > 0 {
			q -= 1
		} else {
			q += 1
		}
	}
	return q
}

func remEuclid(a, b int64) int64 {
	r := a % b
	if r < 0 {
		if b < 0 {
			r -= b
		} else {
			r += b
		}
	}
	return r
}

func Signum(a int64) int64 {
	if a > 0 {
		return 1
	} else if a < 0 {
		return -1
	}
	return 0
}

// Shifts by 64 or more positions produce zero. The amount must not be
// negative.
func ShiftLeft(n, m int64) int64 {
	if m >= 64 {
		return 0
	}
	return n << uint(m)
}

// Arithmetic right shift. Shifts by 64 or more positions produce zero.
func ShiftRight(n, m int64) int64 {
	if m >= 64 {
		return 0
	}
	return n >> uint(m)
}

// Rotation amounts are taken modulo 64.
func RotateLeft(n, m int64) int64 {
	return int64(bits.RotateLeft64(uint64(n), int(m%64)))
}

func RotateRight(n, m int64) int64 {
	return int64(bits.RotateLeft64(uint64(n), -int(m%64)))
}

func CountOnes(n int64) int64     { return int64(bits.OnesCount64(uint64(n))) }
func CountZeros(n int64) int64    { return 64 - CountOnes(n) }
func LeadingZeros(n int64) int64  { return int64(bits.LeadingZeros64(uint64(n))) }
func LeadingOnes(n int64) int64   { return int64(bits.LeadingZeros64(^uint64(n))) }
func TrailingZeros(n int64) int64 { return int64(bits.TrailingZeros64(uint64(n))) }
func TrailingOnes(n int64) int64  { return int64(bits.TrailingZeros64(^uint64(n))) }
func ReverseBytes(n int64) int64  { return int64(bits.ReverseBytes64(uint64(n))) }
func ReverseBits(n int64) int64   { return int64(bits.Reverse64(uint64(n))) }

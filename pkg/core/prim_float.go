package core

import (
	"math"

	"axlab.dev/vvvm/pkg/scalar"
)

func initFloatPrims() {
	unary := map[Prim]struct {
		name string
		op   func(float64) float64
	}{
		FloatNeg:       {"float_neg", func(x float64) float64 { return -x }},
		FloatFloor:     {"float_floor", math.Floor},
		FloatCeil:      {"float_ceil", math.Ceil},
		FloatRound:     {"float_round", math.Round},
		FloatTrunc:     {"float_trunc", math.Trunc},
		FloatFract:     {"float_fract", fract},
		FloatAbs:       {"float_abs", math.Abs},
		FloatSignum:    {"float_signum", signum},
		FloatSqrt:      {"float_sqrt", math.Sqrt},
		FloatExp:       {"float_exp", math.Exp},
		FloatExp2:      {"float_exp2", math.Exp2},
		FloatLn:        {"float_ln", math.Log},
		FloatLog2:      {"float_log2", math.Log2},
		FloatLog10:     {"float_log10", math.Log10},
		FloatSin:       {"float_sin", math.Sin},
		FloatCos:       {"float_cos", math.Cos},
		FloatTan:       {"float_tan", math.Tan},
		FloatAsin:      {"float_asin", math.Asin},
		FloatAcos:      {"float_acos", math.Acos},
		FloatAtan:      {"float_atan", math.Atan},
		FloatExpM1:     {"float_exp_m1", math.Expm1},
		FloatLn1p:      {"float_ln_1p", math.Log1p},
		FloatSinh:      {"float_sinh", math.Sinh},
		FloatCosh:      {"float_cosh", math.Cosh},
		FloatTanh:      {"float_tanh", math.Tanh},
		FloatAsinh:     {"float_asinh", math.Asinh},
		FloatAcosh:     {"float_acosh", math.Acosh},
		FloatAtanh:     {"float_atanh", math.Atanh},
		FloatToDegrees: {"float_to_degrees", func(x float64) float64 { return x * (180 / math.Pi) }},
		FloatToRadians: {"float_to_radians", func(x float64) float64 { return x * (math.Pi / 180) }},
	}
	for p, it := range unary {
		prims[p] = primDef{it.name, 1, floatUnary(it.op)}
	}

	binary := map[Prim]struct {
		name string
		op   func(a, b float64) float64
	}{
		FloatAdd:   {"float_add", func(a, b float64) float64 { return a + b }},
		FloatSub:   {"float_sub", func(a, b float64) float64 { return a - b }},
		FloatMul:   {"float_mul", func(a, b float64) float64 { return a * b }},
		FloatDiv:   {"float_div", func(a, b float64) float64 { return a / b }},
		FloatPow:   {"float_pow", math.Pow},
		FloatHypot: {"float_hypot", math.Hypot},
		FloatAtan2: {"float_atan2", math.Atan2},
	}
	for p, it := range binary {
		prims[p] = primDef{it.name, 2, floatBinary(it.op)}
	}

	prims[FloatMulAdd] = primDef{"float_mul_add", 3, floatMulAdd}
	prims[FloatIsNormal] = primDef{"float_is_normal", 1, floatIsNormal}
	prims[FloatToInt] = primDef{"float_to_int", 1, floatToInt}
	prims[FloatFromInt] = primDef{"float_from_int", 1, floatFromInt}
	prims[FloatToBits] = primDef{"float_to_bits", 1, floatToBits}
	prims[FloatFromBits] = primDef{"float_from_bits", 1, floatFromBits}
}

func floatUnary(op func(float64) float64) primFn {
	return func(args []Value) (Value, error) {
		x, err := asFloat(args[0])
		if err != nil {
			return Value{}, err
		}
		return Float(op(x)), nil
	}
}

func floatBinary(op func(a, b float64) float64) primFn {
	return func(args []Value) (Value, error) {
		a, err := asFloat(args[0])
		if err != nil {
			return Value{}, err
		}
		b, err := asFloat(args[1])
		if err != nil {
			return Value{}, err
		}
		return Float(op(a, b)), nil
	}
}

func floatMulAdd(args []Value) (Value, error) {
	var xs [3]float64
	for i := range xs {
		x, err := asFloat(args[i])
		if err != nil {
			return Value{}, err
		}
		xs[i] = x
	}
	return Float(math.FMA(xs[0], xs[1], xs[2])), nil
}

// Fractional part, keeping the sign of `x`.
func fract(x float64) float64 {
	return x - math.Trunc(x)
}

// 1.0 for positive values including +0.0, -1.0 for negative values
// including -0.0, and NaN for NaN.
func signum(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	return math.Copysign(1, x)
}

func floatIsNormal(args []Value) (Value, error) {
	x, err := asFloat(args[0])
	if err != nil {
		return Value{}, err
	}
	abs := math.Abs(x)
	normal := abs >= 0x1p-1022 && !math.IsInf(x, 0) && !math.IsNaN(x)
	return Bool(normal), nil
}

// Converts with truncation. NaN and floats outside the int range produce
// `err(x)`.
func floatToInt(args []Value) (Value, error) {
	x, err := asFloat(args[0])
	if err != nil {
		return Value{}, err
	}
	n, ok := scalar.ToInt(scalar.Float(x))
	if !ok {
		return Err(args[0]), nil
	}
	return Int(n), nil
}

func floatFromInt(args []Value) (Value, error) {
	n, err := asInt(args[0])
	if err != nil {
		return Value{}, err
	}
	return Float(float64(n)), nil
}

func floatToBits(args []Value) (Value, error) {
	x, err := asFloat(args[0])
	if err != nil {
		return Value{}, err
	}
	return Int(scalar.Bits(scalar.Float(x))), nil
}

func floatFromBits(args []Value) (Value, error) {
	n, err := asInt(args[0])
	if err != nil {
		return Value{}, err
	}
	return Float(float64(scalar.FromBits(n))), nil
}

package core

import "axlab.dev/vvvm/pkg/scalar"

// Operand check applied to the second argument of a binary int primitive.
type operand func(Value) (int64, error)

func initIntPrims() {
	prims[IntSignum] = primDef{"int_signum", 1, intTotal(scalar.Signum)}

	// checked arithmetic: overflow is `err(nil)`
	prims[IntAdd] = primDef{"int_add", 2, intChecked2(asInt, scalar.CheckedAdd)}
	prims[IntSub] = primDef{"int_sub", 2, intChecked2(asInt, scalar.CheckedSub)}
	prims[IntMul] = primDef{"int_mul", 2, intChecked2(asInt, scalar.CheckedMul)}
	prims[IntDiv] = primDef{"int_div", 2, intChecked2(asNonZeroInt, scalar.CheckedDivEuclid)}
	prims[IntDivTrunc] = primDef{"int_div_trunc", 2, intChecked2(asNonZeroInt, scalar.CheckedDiv)}
	prims[IntMod] = primDef{"int_mod", 2, intChecked2(asNonZeroInt, scalar.CheckedRemEuclid)}
	prims[IntModTrunc] = primDef{"int_mod_trunc", 2, intChecked2(asNonZeroInt, scalar.CheckedRem)}
	prims[IntNeg] = primDef{"int_neg", 1, intChecked1(scalar.CheckedNeg)}
	prims[IntAbs] = primDef{"int_abs", 1, intChecked1(scalar.CheckedAbs)}
	prims[IntPow] = primDef{"int_pow", 2, intChecked2(asPositiveInt, scalar.CheckedPow)}

	prims[IntSatAdd] = primDef{"int_sat_add", 2, intTotal2(asInt, scalar.SaturatingAdd)}
	prims[IntSatSub] = primDef{"int_sat_sub", 2, intTotal2(asInt, scalar.SaturatingSub)}
	prims[IntSatMul] = primDef{"int_sat_mul", 2, intTotal2(asInt, scalar.SaturatingMul)}
	prims[IntSatDiv] = primDef{"int_sat_div", 2, intTotal2(asNonZeroInt, scalar.SaturatingDivEuclid)}
	prims[IntSatDivTrunc] = primDef{"int_sat_div_trunc", 2, intTotal2(asNonZeroInt, scalar.SaturatingDiv)}
	prims[IntSatMod] = primDef{"int_sat_mod", 2, intTotal2(asNonZeroInt, scalar.SaturatingRemEuclid)}
	prims[IntSatModTrunc] = primDef{"int_sat_mod_trunc", 2, intTotal2(asNonZeroInt, scalar.SaturatingRem)}
	prims[IntSatNeg] = primDef{"int_sat_neg", 1, intTotal(scalar.SaturatingNeg)}
	prims[IntSatAbs] = primDef{"int_sat_abs", 1, intTotal(scalar.SaturatingAbs)}
	prims[IntSatPow] = primDef{"int_sat_pow", 2, intTotal2(asPositiveInt, scalar.SaturatingPow)}

	prims[IntWrapAdd] = primDef{"int_wrap_add", 2, intTotal2(asInt, scalar.WrappingAdd)}
	prims[IntWrapSub] = primDef{"int_wrap_sub", 2, intTotal2(asInt, scalar.WrappingSub)}
	prims[IntWrapMul] = primDef{"int_wrap_mul", 2, intTotal2(asInt, scalar.WrappingMul)}
	prims[IntWrapDiv] = primDef{"int_wrap_div", 2, intTotal2(asNonZeroInt, scalar.WrappingDivEuclid)}
	prims[IntWrapDivTrunc] = primDef{"int_wrap_div_trunc", 2, intTotal2(asNonZeroInt, scalar.WrappingDiv)}
	prims[IntWrapMod] = primDef{"int_wrap_mod", 2, intTotal2(asNonZeroInt, scalar.WrappingRemEuclid)}
	prims[IntWrapModTrunc] = primDef{"int_wrap_mod_trunc", 2, intTotal2(asNonZeroInt, scalar.WrappingRem)}
	prims[IntWrapNeg] = primDef{"int_wrap_neg", 1, intTotal(scalar.WrappingNeg)}
	prims[IntWrapAbs] = primDef{"int_wrap_abs", 1, intTotal(scalar.WrappingAbs)}
	prims[IntWrapPow] = primDef{"int_wrap_pow", 2, intTotal2(asPositiveInt, scalar.WrappingPow)}

	prims[BitCountOnes] = primDef{"bit_count_ones", 1, intTotal(scalar.CountOnes)}
	prims[BitCountZeros] = primDef{"bit_count_zeros", 1, intTotal(scalar.CountZeros)}
	prims[BitLeadingOnes] = primDef{"bit_leading_ones", 1, intTotal(scalar.LeadingOnes)}
	prims[BitLeadingZeros] = primDef{"bit_leading_zeros", 1, intTotal(scalar.LeadingZeros)}
	prims[BitTrailingOnes] = primDef{"bit_trailing_ones", 1, intTotal(scalar.TrailingOnes)}
	prims[BitTrailingZeros] = primDef{"bit_trailing_zeros", 1, intTotal(scalar.TrailingZeros)}
	prims[BitRotateLeft] = primDef{"bit_rotate_left", 2, intTotal2(asPositiveInt, scalar.RotateLeft)}
	prims[BitRotateRight] = primDef{"bit_rotate_right", 2, intTotal2(asPositiveInt, scalar.RotateRight)}
	prims[BitReverseBytes] = primDef{"bit_reverse_bytes", 1, intTotal(scalar.ReverseBytes)}
	prims[BitReverseBits] = primDef{"bit_reverse_bits", 1, intTotal(scalar.ReverseBits)}
	prims[BitShl] = primDef{"bit_shl", 2, intTotal2(asPositiveInt, scalar.ShiftLeft)}
	prims[BitShr] = primDef{"bit_shr", 2, intTotal2(asPositiveInt, scalar.ShiftRight)}
}

func intTotal(op func(int64) int64) primFn {
	return func(args []Value) (Value, error) {
		n, err := asInt(args[0])
		if err != nil {
			return Value{}, err
		}
		return Int(op(n)), nil
	}
}

func intTotal2(second operand, op func(a, b int64) int64) primFn {
	return func(args []Value) (Value, error) {
		a, b, err := intOperands(args, second)
		if err != nil {
			return Value{}, err
		}
		return Int(op(a, b)), nil
	}
}

func intChecked1(op func(int64) (int64, bool)) primFn {
	return func(args []Value) (Value, error) {
		n, err := asInt(args[0])
		if err != nil {
			return Value{}, err
		}
		return checkedResult(op(n)), nil
	}
}

func intChecked2(second operand, op func(a, b int64) (int64, bool)) primFn {
	return func(args []Value) (Value, error) {
		a, b, err := intOperands(args, second)
		if err != nil {
			return Value{}, err
		}
		return checkedResult(op(a, b)), nil
	}
}

func intOperands(args []Value, second operand) (int64, int64, error) {
	a, err := asInt(args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := second(args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func checkedResult(n int64, ok bool) Value {
	if !ok {
		return ErrNil()
	}
	return Int(n)
}

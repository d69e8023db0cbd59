package core

import (
	"fmt"

	"axlab.dev/vvvm/util"
)

// Synchronous core primitive. The declaration order is the order of
// primitives among callables.
type Prim uint16

const (
	ValueHalt Prim = iota
	ValueTypeOf
	ValueTruthy
	ValueFalsey

	ValueTotalCompare
	ValueTotalLt
	ValueTotalLeq
	ValueTotalEq
	ValueTotalGeq
	ValueTotalGt
	ValueTotalNeq
	ValueTotalMin
	ValueTotalMax

	ValuePartialCompare
	ValuePartialLt
	ValuePartialLeq
	ValuePartialEq
	ValuePartialGeq
	ValuePartialGt
	ValuePartialNeq
	ValuePartialGreatestLowerBound
	ValuePartialLeastUpperBound

	BoolNot
	BoolAnd
	BoolOr
	BoolIf
	BoolIff
	BoolXor

	FloatAdd
	FloatSub
	FloatMul
	FloatDiv
	FloatMulAdd
	FloatNeg
	FloatFloor
	FloatCeil
	FloatRound
	FloatTrunc
	FloatFract
	FloatAbs
	FloatSignum
	FloatPow
	FloatSqrt
	FloatExp
	FloatExp2
	FloatLn
	FloatLog2
	FloatLog10
	FloatHypot
	FloatSin
	FloatCos
	FloatTan
	FloatAsin
	FloatAcos
	FloatAtan
	FloatAtan2
	FloatExpM1
	FloatLn1p
	FloatSinh
	FloatCosh
	FloatTanh
	FloatAsinh
	FloatAcosh
	FloatAtanh
	FloatIsNormal
	FloatToDegrees
	FloatToRadians
	FloatToInt
	FloatFromInt
	FloatToBits
	FloatFromBits

	IntSignum
	IntAdd
	IntSub
	IntMul
	IntDiv
	IntDivTrunc
	IntMod
	IntModTrunc
	IntNeg
	IntAbs
	IntPow

	IntSatAdd
	IntSatSub
	IntSatMul
	IntSatDiv
	IntSatDivTrunc
	IntSatMod
	IntSatModTrunc
	IntSatNeg
	IntSatAbs
	IntSatPow

	IntWrapAdd
	IntWrapSub
	IntWrapMul
	IntWrapDiv
	IntWrapDivTrunc
	IntWrapMod
	IntWrapModTrunc
	IntWrapNeg
	IntWrapAbs
	IntWrapPow

	BitCountOnes
	BitCountZeros
	BitLeadingOnes
	BitLeadingZeros
	BitTrailingOnes
	BitTrailingZeros
	BitRotateLeft
	BitRotateRight
	BitReverseBytes
	BitReverseBits
	BitShl
	BitShr

	primCount
)

// Evaluation function of a primitive. The argument count has already been
// checked against the arity.
type primFn = func(args []Value) (Value, error)

type primDef struct {
	name  string
	arity int
	fn    primFn
}

var (
	prims       [primCount]primDef
	primsByName = make(map[string]Prim, primCount)
)

func init() {
	prims = [primCount]primDef{
		ValueHalt:   {"halt", 1, valueHalt},
		ValueTypeOf: {"type_of", 1, valueTypeOf},
		ValueTruthy: {"truthy", 1, valueTruthy},
		ValueFalsey: {"falsey", 1, valueFalsey},

		ValueTotalCompare: {"total_compare", 2, totalCompare},
		ValueTotalLt:      {"total_lt", 2, totalTest(func(c int) bool { return c < 0 })},
		ValueTotalLeq:     {"total_leq", 2, totalTest(func(c int) bool { return c <= 0 })},
		ValueTotalEq:      {"total_eq", 2, totalTest(func(c int) bool { return c == 0 })},
		ValueTotalGeq:     {"total_geq", 2, totalTest(func(c int) bool { return c >= 0 })},
		ValueTotalGt:      {"total_gt", 2, totalTest(func(c int) bool { return c > 0 })},
		ValueTotalNeq:     {"total_neq", 2, totalTest(func(c int) bool { return c != 0 })},
		ValueTotalMin:     {"total_min", 2, func(args []Value) (Value, error) { return Min(args[0], args[1]), nil }},
		ValueTotalMax:     {"total_max", 2, func(args []Value) (Value, error) { return Max(args[0], args[1]), nil }},

		ValuePartialCompare:            {"partial_compare", 2, partialCompare},
		ValuePartialLt:                 {"partial_lt", 2, partialTestFn(PartialLess)},
		ValuePartialLeq:                {"partial_leq", 2, partialTestFn(PartialLessEqual)},
		ValuePartialEq:                 {"partial_eq", 2, partialTestFn(PartialEqual)},
		ValuePartialGeq:                {"partial_geq", 2, partialTestFn(PartialGreaterEqual)},
		ValuePartialGt:                 {"partial_gt", 2, partialTestFn(PartialGreater)},
		ValuePartialNeq:                {"partial_neq", 2, partialTestFn(PartialNotEqual)},
		ValuePartialGreatestLowerBound: {"partial_greatest_lower_bound", 2, latticeFn(GreatestLowerBound)},
		ValuePartialLeastUpperBound:    {"partial_least_upper_bound", 2, latticeFn(LeastUpperBound)},

		BoolNot: {"bool_not", 1, boolNot},
		BoolAnd: {"bool_and", 2, boolBinary(func(a, b bool) bool { return a && b })},
		BoolOr:  {"bool_or", 2, boolBinary(func(a, b bool) bool { return a || b })},
		BoolIf:  {"bool_if", 2, boolBinary(func(a, b bool) bool { return !a || b })},
		BoolIff: {"bool_iff", 2, boolBinary(func(a, b bool) bool { return a == b })},
		BoolXor: {"bool_xor", 2, boolBinary(func(a, b bool) bool { return a != b })},
	}

	initFloatPrims()
	initIntPrims()

	for i, it := range prims {
		util.Assert(it.fn != nil, util.Msg("primitive %d has no definition", i))
		primsByName[it.name] = Prim(i)
	}
	util.Assert(len(primsByName) == int(primCount), "duplicate primitive names")
}

func (p Prim) def() primDef {
	util.Assert(p < primCount, util.Msg("invalid primitive %d", uint16(p)))
	return prims[p]
}

func (p Prim) Name() string   { return p.def().name }
func (p Prim) String() string { return p.def().name }
func (p Prim) Arity() int     { return p.def().arity }
func (p Prim) IsAsync() bool  { return false }
func (p Prim) tier() tier     { return tierCore }

// Calling a primitive with the wrong number of arguments is a scheduler
// bug and panics.
func (p Prim) Invoke(args []Value, m Machine) (Value, error) {
	def := p.def()
	util.Assert(len(args) == def.arity, util.Msg("`%s` takes %d arguments, got %d", def.name, def.arity, len(args)))
	return def.fn(args)
}

func (p Prim) Value() Value {
	return FunValue(p)
}

// All synchronous primitives in declaration order.
func Prims() []Prim {
	out := make([]Prim, primCount)
	for i := range out {
		out[i] = Prim(i)
	}
	return out
}

func PrimByName(name string) (Prim, bool) {
	p, ok := primsByName[name]
	return p, ok
}

// Asynchronous core primitive.
type AsyncPrim uint8

const (
	// Yields control back to the scheduler and resumes with `nil`.
	PreemptiveYield AsyncPrim = iota

	asyncPrimCount
)

var asyncPrimNames = [asyncPrimCount]string{
	PreemptiveYield: "yield",
}

func (p AsyncPrim) Name() string {
	if p < asyncPrimCount {
		return asyncPrimNames[p]
	}
	return fmt.Sprintf("AsyncPrim(%d)", uint8(p))
}

func (p AsyncPrim) String() string { return p.Name() }
func (p AsyncPrim) IsAsync() bool  { return true }
func (p AsyncPrim) tier() tier     { return tierCore }

func (p AsyncPrim) Arity() int {
	switch p {
	case PreemptiveYield:
		return 0
	}
	panic(fmt.Sprintf("invalid async primitive %d", uint8(p)))
}

func (p AsyncPrim) Invoke(args []Value, m Machine) Future {
	switch p {
	case PreemptiveYield:
		return Ready(Nil())
	}
	panic(fmt.Sprintf("invalid async primitive %d", uint8(p)))
}

func (p AsyncPrim) Value() Value {
	return FunValue(p)
}

func AsyncPrims() []AsyncPrim {
	out := make([]AsyncPrim, asyncPrimCount)
	for i := range out {
		out[i] = AsyncPrim(i)
	}
	return out
}

func AsyncPrimByName(name string) (AsyncPrim, bool) {
	for i, it := range asyncPrimNames {
		if it == name {
			return AsyncPrim(i), true
		}
	}
	return 0, false
}

func asBool(v Value) (bool, error) {
	if b, ok := v.AsBool(); ok {
		return b, nil
	}
	return false, fail(NotBool, v)
}

func asFloat(v Value) (float64, error) {
	if f, ok := v.AsFloat(); ok {
		return f, nil
	}
	return 0, fail(NotFloat, v)
}

func asInt(v Value) (int64, error) {
	if n, ok := v.AsInt(); ok {
		return n, nil
	}
	return 0, fail(NotInt, v)
}

// Zero counts as positive for exponents and shift amounts.
func asPositiveInt(v Value) (int64, error) {
	n, ok := v.AsInt()
	if !ok {
		return 0, fail(NotInt, v)
	}
	if n < 0 {
		return 0, fail(NotPositiveInt, v)
	}
	return n, nil
}

func asNonZeroInt(v Value) (int64, error) {
	n, ok := v.AsInt()
	if !ok {
		return 0, fail(NotInt, v)
	}
	if n == 0 {
		return 0, fail(NotNonZeroInt, v)
	}
	return n, nil
}

// Package core implements the value domain of the runtime: values, their
// total and partial orders, callables, and the catalog of core primitives.
package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"axlab.dev/vvvm/pkg/scalar"
)

// Variant tag of a `Value`. The declaration order is the order of values
// of different kinds.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindFloat
	KindInt
	KindArray
	KindMap
	KindFun
)

var kindNames = [...]string{
	KindNil:   "nil",
	KindBool:  "bool",
	KindFloat: "float",
	KindInt:   "int",
	KindArray: "array",
	KindMap:   "map",
	KindFun:   "function",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// A runtime value. Values are immutable. The zero value is `nil`.
//
// Values must be compared with `Equal` or `Compare`, never with `==`.
type Value struct {
	kind Kind
	num  uint64
	ref  any
}

func Nil() Value {
	return Value{}
}

func Bool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = 1
	}
	return v
}

func Float(f float64) Value {
	return Value{kind: KindFloat, num: math.Float64bits(f)}
}

func Int(n int64) Value {
	return Value{kind: KindInt, num: uint64(n)}
}

func ArrayValue(a Array) Value {
	return Value{kind: KindArray, ref: a}
}

func MapValue(m Map) Value {
	return Value{kind: KindMap, ref: m}
}

func FunValue(f Fun) Value {
	if f == nil {
		panic("cannot create function value from nil")
	}
	return Value{kind: KindFun, ref: f}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNil() bool {
	return v.kind == KindNil
}

// Only `nil` and `false` are falsey.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindBool:
		return v.num != 0
	default:
		return true
	}
}

func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.num != 0, true
}

func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return math.Float64frombits(v.num), true
}

func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return int64(v.num), true
}

func (v Value) AsArray() (Array, bool) {
	if v.kind != KindArray {
		return Array{}, false
	}
	return v.ref.(Array), true
}

func (v Value) AsMap() (Map, bool) {
	if v.kind != KindMap {
		return Map{}, false
	}
	return v.ref.(Map), true
}

func (v Value) AsFun() (Fun, bool) {
	if v.kind != KindFun {
		return nil, false
	}
	return v.ref.(Fun), true
}

func (v Value) scalar() scalar.Float {
	return scalar.Float(math.Float64frombits(v.num))
}

func (v Value) String() string {
	out := strings.Builder{}
	v.write(&out)
	return out.String()
}

// Like `String` but tagged with the value kind.
func (v Value) Debug() string {
	return fmt.Sprintf("<%s>(%s)", v.kind, v.String())
}

func (v Value) write(out *strings.Builder) {
	switch v.kind {
	case KindNil:
		out.WriteString("nil")
	case KindBool:
		out.WriteString(strconv.FormatBool(v.num != 0))
	case KindFloat:
		out.WriteString(formatFloat(math.Float64frombits(v.num)))
	case KindInt:
		out.WriteString(strconv.FormatInt(int64(v.num), 10))
	case KindArray:
		if str, ok := v.AsText(); ok {
			out.WriteString(strconv.Quote(str))
			return
		}
		arr := v.ref.(Array)
		out.WriteString("[")
		for i, it := range arr.items {
			if i > 0 {
				out.WriteString(", ")
			}
			it.write(out)
		}
		out.WriteString("]")
	case KindMap:
		out.WriteString("{")
		for i, it := range v.ref.(Map).entries {
			if i > 0 {
				out.WriteString(", ")
			}
			it.Key.write(out)
			out.WriteString(": ")
			it.Value.write(out)
		}
		out.WriteString("}")
	case KindFun:
		out.WriteString(FunString(v.ref.(Fun)))
	}
}

// Floats always print with a decimal point or exponent so they read back as
// floats.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, +1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	out := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(out, ".eE") {
		out += ".0"
	}
	return out
}

func isText(r rune) bool {
	return unicode.IsPrint(r) || r == '\n' || r == '\t'
}

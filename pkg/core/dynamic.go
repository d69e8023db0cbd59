package core

import "fmt"

type constant struct {
	value Value
}

// Dynamic native of arity zero that always returns `v`.
func Constant(v Value) Value {
	return FunValue(NewDynamicSync(constant{v}))
}

func (c constant) Arity() int { return 0 }

func (c constant) Invoke(args []Value, m Machine) (Value, error) {
	return c.value, nil
}

func (c constant) Trace(visit func(Value)) {
	visit(c.value)
}

func (c constant) String() string {
	return "constant"
}

type bound struct {
	fun SyncFun
	arg Value
}

// Partially applies the first argument of a synchronous callable. The
// result is a fresh dynamic native taking the remaining arguments.
func Bind(f SyncFun, arg Value) Value {
	if f.Arity() < 1 {
		panic(fmt.Sprintf("Bind: %s takes no arguments", FunString(f)))
	}
	return FunValue(NewDynamicSync(bound{f, arg}))
}

func (b bound) Arity() int { return b.fun.Arity() - 1 }

func (b bound) Invoke(args []Value, m Machine) (Value, error) {
	all := make([]Value, 0, len(args)+1)
	all = append(all, b.arg)
	all = append(all, args...)
	return b.fun.Invoke(all, m)
}

func (b bound) Trace(visit func(Value)) {
	visit(FunValue(b.fun))
	visit(b.arg)
}

func (b bound) String() string {
	return "bind " + nativeName(b.fun)
}

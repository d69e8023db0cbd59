package eval

import (
	"fmt"
	"strings"
	"time"

	"axlab.dev/vvvm/pkg/core"
)

// Builtin static natives. They order among each other by this id.
type nativeId int

const (
	idConstant nativeId = iota
	idBind
	idPrint
	idSleep
)

type staticId interface {
	id() nativeId
}

// Builtins order among themselves by id and before any host static.
func compareIds(a staticId, other any) int {
	b, ok := other.(staticId)
	if !ok {
		return -1
	}
	return int(a.id()) - int(b.id())
}

type constantNative struct{}

func (constantNative) id() nativeId   { return idConstant }
func (constantNative) Arity() int     { return 1 }
func (constantNative) String() string { return "constant" }

func (n constantNative) Compare(other core.StaticSyncNative) int {
	return compareIds(n, other)
}

func (constantNative) Invoke(args []core.Value, m core.Machine) (core.Value, error) {
	return core.Constant(args[0]), nil
}

type bindNative struct{}

func (bindNative) id() nativeId   { return idBind }
func (bindNative) Arity() int     { return 2 }
func (bindNative) String() string { return "bind" }

func (n bindNative) Compare(other core.StaticSyncNative) int {
	return compareIds(n, other)
}

func (bindNative) Invoke(args []core.Value, m core.Machine) (core.Value, error) {
	fn, ok := args[0].AsSyncFun()
	if !ok || fn.Arity() < 1 {
		return core.Value{}, fmt.Errorf("bind: %s is not a synchronous function taking arguments", args[0])
	}
	return core.Bind(fn, args[1]), nil
}

// Writes its argument to the machine output. Strings are written as is.
type PrintNative struct{}

func (PrintNative) id() nativeId   { return idPrint }
func (PrintNative) Arity() int     { return 1 }
func (PrintNative) String() string { return "print" }

func (n PrintNative) Compare(other core.StaticSyncNative) int {
	return compareIds(n, other)
}

func (PrintNative) Invoke(args []core.Value, m core.Machine) (core.Value, error) {
	machine, ok := m.(*Machine)
	if !ok {
		return core.Value{}, fmt.Errorf("print: unsupported machine %T", m)
	}

	text, ok := args[0].AsText()
	if !ok {
		text = args[0].String()
	}
	if _, err := fmt.Fprintln(machine.Out, strings.TrimRight(text, "\n")); err != nil {
		return core.Value{}, err
	}
	return core.Nil(), nil
}

// Resolves to its argument after the given number of milliseconds.
type SleepNative struct{}

func (SleepNative) id() nativeId   { return idSleep }
func (SleepNative) Arity() int     { return 1 }
func (SleepNative) String() string { return "sleep" }

func (n SleepNative) Compare(other core.StaticAsyncNative) int {
	return compareIds(n, other)
}

func (SleepNative) Invoke(args []core.Value, m core.Machine) core.Future {
	ms, ok := args[0].AsInt()
	if !ok {
		return core.Failed(&core.Failure{Kind: core.NotInt, Value: args[0]})
	}
	if ms < 0 {
		return core.Failed(&core.Failure{Kind: core.NotPositiveInt, Value: args[0]})
	}
	return core.Spawn(func() (core.Value, error) {
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return args[0], nil
	})
}

// Registers `print` and `sleep`.
func (m *Machine) DefineStdNatives() {
	m.Define("print", core.FunValue(core.StaticSync{Native: PrintNative{}}))
	m.Define("sleep", core.FunValue(core.StaticAsync{Native: SleepNative{}}))
}

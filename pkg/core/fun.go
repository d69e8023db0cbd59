package core

import (
	"fmt"
)

// Callable value. The set of implementations is closed:
//
//   - synchronous: `Prim`, `StaticSync`, `DynamicSync`
//   - asynchronous: `AsyncPrim`, `StaticAsync`, `DynamicAsync`
//   - `ClosureFun`, synchronous or not depending on the closure
type Fun interface {
	Arity() int
	IsAsync() bool
	tier() tier
}

// Callable that produces its result directly.
type SyncFun interface {
	Fun
	Invoke(args []Value, m Machine) (Value, error)
}

// Callable that produces a future for the scheduler to poll.
type AsyncFun interface {
	Fun
	Invoke(args []Value, m Machine) Future
}

// Within a synchrony class callables order by tier. Dynamic natives and
// closures share a tier and order by ordinal.
type tier uint8

const (
	tierCore tier = iota
	tierStatic
	tierOrdinal
)

type StaticSync struct {
	Native StaticSyncNative
}

func (f StaticSync) Arity() int    { return f.Native.Arity() }
func (f StaticSync) IsAsync() bool { return false }
func (f StaticSync) tier() tier    { return tierStatic }

func (f StaticSync) Invoke(args []Value, m Machine) (Value, error) {
	return f.Native.Invoke(args, m)
}

type StaticAsync struct {
	Native StaticAsyncNative
}

func (f StaticAsync) Arity() int    { return f.Native.Arity() }
func (f StaticAsync) IsAsync() bool { return true }
func (f StaticAsync) tier() tier    { return tierStatic }

func (f StaticAsync) Invoke(args []Value, m Machine) Future {
	return f.Native.Invoke(args, m)
}

// Synchronous native registered at runtime, identified by its ordinal.
type DynamicSync struct {
	ordinal Ordinal
	native  SyncNative
}

// Registers a dynamic native under a fresh ordinal.
func NewDynamicSync(native SyncNative) DynamicSync {
	return DynamicSync{NextOrdinal(), native}
}

func (f DynamicSync) Ordinal() Ordinal   { return f.ordinal }
func (f DynamicSync) Native() SyncNative { return f.native }
func (f DynamicSync) Arity() int         { return f.native.Arity() }
func (f DynamicSync) IsAsync() bool      { return false }
func (f DynamicSync) tier() tier         { return tierOrdinal }

func (f DynamicSync) Invoke(args []Value, m Machine) (Value, error) {
	return f.native.Invoke(args, m)
}

// Asynchronous native registered at runtime, identified by its ordinal.
type DynamicAsync struct {
	ordinal Ordinal
	native  AsyncNative
}

func NewDynamicAsync(native AsyncNative) DynamicAsync {
	return DynamicAsync{NextOrdinal(), native}
}

func (f DynamicAsync) Ordinal() Ordinal    { return f.ordinal }
func (f DynamicAsync) Native() AsyncNative { return f.native }
func (f DynamicAsync) Arity() int          { return f.native.Arity() }
func (f DynamicAsync) IsAsync() bool       { return true }
func (f DynamicAsync) tier() tier          { return tierOrdinal }

func (f DynamicAsync) Invoke(args []Value, m Machine) Future {
	return f.native.Invoke(args, m)
}

// User closure wrapped as a callable. Invoking it is up to the scheduler.
type ClosureFun struct {
	Closure Closure
}

func (f ClosureFun) Arity() int    { return f.Closure.Arity() }
func (f ClosureFun) IsAsync() bool { return f.Closure.IsAsync() }
func (f ClosureFun) tier() tier    { return tierOrdinal }

func NewClosure(c Closure) Value {
	return FunValue(ClosureFun{c})
}

func (v Value) AsSyncFun() (SyncFun, bool) {
	f, ok := v.ref.(SyncFun)
	return f, ok && v.kind == KindFun
}

func (v Value) AsAsyncFun() (AsyncFun, bool) {
	f, ok := v.ref.(AsyncFun)
	return f, ok && v.kind == KindFun
}

func (v Value) AsClosure() (Closure, bool) {
	if f, ok := v.ref.(ClosureFun); ok && v.kind == KindFun {
		return f.Closure, true
	}
	return nil, false
}

// Ordinal of a dynamic native or closure.
func funOrdinal(f Fun) (Ordinal, bool) {
	switch f := f.(type) {
	case DynamicSync:
		return f.ordinal, true
	case DynamicAsync:
		return f.ordinal, true
	case ClosureFun:
		return f.Closure.Ordinal(), true
	}
	return 0, false
}

// Total order over callables.
//
// Synchronous callables order before asynchronous ones. Within a synchrony
// class core primitives come first (by tag), then static natives (by their
// own order), then dynamic natives and closures by ordinal. Ordinals are
// unique across both, but should a host forge a collision the dynamic native
// orders before the closure, so only identical entities compare equal.
func CompareFun(a, b Fun) int {
	if aa, ba := a.IsAsync(), b.IsAsync(); aa != ba {
		if aa {
			return +1
		}
		return -1
	}

	ta, tb := a.tier(), b.tier()
	if ta != tb {
		return compareInt(int64(ta), int64(tb))
	}

	switch ta {
	case tierCore:
		switch a := a.(type) {
		case Prim:
			return compareInt(int64(a), int64(b.(Prim)))
		case AsyncPrim:
			return compareInt(int64(a), int64(b.(AsyncPrim)))
		}
	case tierStatic:
		switch a := a.(type) {
		case StaticSync:
			return sign(a.Native.Compare(b.(StaticSync).Native))
		case StaticAsync:
			return sign(a.Native.Compare(b.(StaticAsync).Native))
		}
	case tierOrdinal:
		oa, _ := funOrdinal(a)
		ob, _ := funOrdinal(b)
		if oa != ob {
			if oa < ob {
				return -1
			}
			return +1
		}
		_, ca := a.(ClosureFun)
		_, cb := b.(ClosureFun)
		if ca != cb {
			if ca {
				return +1
			}
			return -1
		}
		return 0
	}
	panic(fmt.Sprintf("invalid callable: %T", a))
}

func EqualFun(a, b Fun) bool {
	return CompareFun(a, b) == 0
}

func sign(n int) int {
	if n < 0 {
		return -1
	} else if n > 0 {
		return +1
	}
	return 0
}

// Hash consistent with `EqualFun`. Static natives only hash their tier.
func funHash(f Fun) uint64 {
	var payload uint64
	switch f := f.(type) {
	case Prim:
		payload = uint64(f)
	case AsyncPrim:
		payload = uint64(f)
	case DynamicSync, DynamicAsync, ClosureFun:
		ord, _ := funOrdinal(f)
		payload = uint64(ord)
		if _, ok := f.(ClosureFun); ok {
			payload |= 1 << 63
		}
	}
	class := uint64(0)
	if f.IsAsync() {
		class = 1
	}
	return (class<<2|uint64(f.tier()))<<56 ^ payload
}

// Display form of a callable.
func FunString(f Fun) string {
	switch f := f.(type) {
	case Prim:
		return fmt.Sprintf("<fn %s/%d>", f.Name(), f.Arity())
	case AsyncPrim:
		return fmt.Sprintf("<async fn %s/%d>", f.Name(), f.Arity())
	case StaticSync:
		return fmt.Sprintf("<fn %s/%d>", nativeName(f.Native), f.Arity())
	case StaticAsync:
		return fmt.Sprintf("<async fn %s/%d>", nativeName(f.Native), f.Arity())
	case DynamicSync:
		return fmt.Sprintf("<fn %s#%d/%d>", nativeName(f.native), f.ordinal, f.Arity())
	case DynamicAsync:
		return fmt.Sprintf("<async fn %s#%d/%d>", nativeName(f.native), f.ordinal, f.Arity())
	case ClosureFun:
		if f.IsAsync() {
			return fmt.Sprintf("<async closure#%d/%d>", f.Closure.Ordinal(), f.Arity())
		}
		return fmt.Sprintf("<closure#%d/%d>", f.Closure.Ordinal(), f.Arity())
	}
	return fmt.Sprintf("<fn %T>", f)
}

func nativeName(native any) string {
	if s, ok := native.(fmt.Stringer); ok {
		return s.String()
	}
	return "native"
}

// Invokes a synchronous callable. Panics for asynchronous callables and
// closures, which only the scheduler can run.
func CallSync(f Fun, args []Value, m Machine) (Value, error) {
	sync, ok := f.(SyncFun)
	if !ok {
		panic(fmt.Sprintf("CallSync: %s is not a synchronous native", FunString(f)))
	}
	return sync.Invoke(args, m)
}

// Invokes an asynchronous callable, returning the future to poll.
func CallAsync(f Fun, args []Value, m Machine) Future {
	async, ok := f.(AsyncFun)
	if !ok {
		panic(fmt.Sprintf("CallAsync: %s is not an asynchronous native", FunString(f)))
	}
	return async.Invoke(args, m)
}

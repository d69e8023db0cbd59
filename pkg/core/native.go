package core

// Scheduler on whose behalf a callable runs. The core never calls into it;
// host natives type-assert it to the host's own scheduler type.
type Machine interface{}

// Host-defined synchronous native.
type SyncNative interface {
	Arity() int
	Invoke(args []Value, m Machine) (Value, error)
}

// Host-defined asynchronous native. The returned future is polled by the
// scheduler.
type AsyncNative interface {
	Arity() int
	Invoke(args []Value, m Machine) Future
}

// Synchronous native with an intrinsic order, registered statically by the
// host. Two statics are equal iff `Compare` returns zero.
type StaticSyncNative interface {
	SyncNative
	Compare(other StaticSyncNative) int
}

// Asynchronous counterpart to `StaticSyncNative`.
type StaticAsyncNative interface {
	AsyncNative
	Compare(other StaticAsyncNative) int
}

// A user closure. Closures are created and invoked by the scheduler; the
// core only needs their ordinal, synchrony and arity.
type Closure interface {
	Arity() int
	Ordinal() Ordinal
	IsAsync() bool
}

// Implemented by natives and closures that hold values, so the values
// reachable from them can be traced.
type Tracer interface {
	Trace(visit func(Value))
}

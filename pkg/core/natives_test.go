package core_test

import (
	"axlab.dev/vvvm/pkg/core"
)

// Static native ordered by its id.
type staticNative struct {
	id    int
	arity int
}

func (n staticNative) Arity() int { return n.arity }

func (n staticNative) Invoke(args []core.Value, m core.Machine) (core.Value, error) {
	return core.Int(int64(n.id)), nil
}

func (n staticNative) Compare(other core.StaticSyncNative) int {
	o := other.(staticNative)
	return n.id - o.id
}

type staticAsyncNative struct {
	id int
}

func (n staticAsyncNative) Arity() int { return 0 }

func (n staticAsyncNative) Invoke(args []core.Value, m core.Machine) core.Future {
	return core.Ready(core.Int(int64(n.id)))
}

func (n staticAsyncNative) Compare(other core.StaticAsyncNative) int {
	return n.id - other.(staticAsyncNative).id
}

// Sums its integer arguments.
type sumNative struct {
	arity int
}

func (n sumNative) Arity() int { return n.arity }

func (n sumNative) Invoke(args []core.Value, m core.Machine) (core.Value, error) {
	var sum int64
	for _, it := range args {
		v, _ := it.AsInt()
		sum += v
	}
	return core.Int(sum), nil
}

func (n sumNative) String() string { return "sum" }

type asyncEcho struct{}

func (asyncEcho) Arity() int { return 1 }

func (asyncEcho) Invoke(args []core.Value, m core.Machine) core.Future {
	return core.Ready(args[0])
}

type testClosure struct {
	ordinal  core.Ordinal
	async    bool
	captured []core.Value
}

func newClosure(async bool, captured ...core.Value) *testClosure {
	return &testClosure{core.NextOrdinal(), async, captured}
}

func (c *testClosure) Arity() int            { return 1 }
func (c *testClosure) Ordinal() core.Ordinal { return c.ordinal }
func (c *testClosure) IsAsync() bool         { return c.async }

func (c *testClosure) Trace(visit func(core.Value)) {
	for _, it := range c.captured {
		visit(it)
	}
}

// Closure with a fixed ordinal, for forging collisions.
type fixedClosure struct {
	ordinal core.Ordinal
	async   bool
}

func (c fixedClosure) Arity() int            { return 0 }
func (c fixedClosure) Ordinal() core.Ordinal { return c.ordinal }
func (c fixedClosure) IsAsync() bool         { return c.async }

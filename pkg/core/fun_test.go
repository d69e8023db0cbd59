package core_test

import (
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"axlab.dev/vvvm/pkg/core"
	"github.com/stretchr/testify/require"
)

func TestCallableOrdering(t *testing.T) {
	test := require.New(t)

	prim := core.IntAdd.Value()
	static := core.FunValue(core.StaticSync{Native: staticNative{id: 1, arity: 0}})
	dynamic := core.FunValue(core.NewDynamicSync(sumNative{2}))
	closure := core.NewClosure(newClosure(false))
	asyncClosure := core.NewClosure(fixedClosure{ordinal: 1, async: true})

	ordered := []core.Value{prim, static, dynamic, closure, asyncClosure}
	for i := range ordered {
		for j := range ordered {
			expected := 0
			if i < j {
				expected = -1
			} else if i > j {
				expected = +1
			}
			test.Equal(expected, core.Compare(ordered[i], ordered[j]), "%s vs %s", ordered[i], ordered[j])
		}
	}
}

func TestCallableOrderingFixedOrdinals(t *testing.T) {
	test := require.New(t)

	prim := core.IntAdd.Value()
	static := core.FunValue(core.StaticSync{Native: staticNative{id: 1, arity: 0}})
	dynamic := core.FunValue(core.DynamicSyncAt(3, sumNative{2}))
	closure := core.NewClosure(fixedClosure{ordinal: 5})
	asyncClosure := core.NewClosure(fixedClosure{ordinal: 1, async: true})

	test.Equal(-1, core.Compare(prim, static))
	test.Equal(-1, core.Compare(static, dynamic))
	test.Equal(-1, core.Compare(dynamic, closure))
	for _, it := range []core.Value{prim, static, dynamic, closure} {
		test.Equal(+1, core.Compare(asyncClosure, it), "async closure vs %s", it)
		test.Equal(-1, core.Compare(it, asyncClosure), "%s vs async closure", it)
	}

	values := []core.Value{asyncClosure, closure, dynamic, static, prim}
	sort.Slice(values, func(i, j int) bool { return core.Less(values[i], values[j]) })
	test.Equal([]core.Value{prim, static, dynamic, closure, asyncClosure}, values)
}

func TestCallableTiers(t *testing.T) {
	test := require.New(t)

	test.Equal(-1, core.Compare(core.ValueHalt.Value(), core.BitShr.Value()))
	test.Equal(-1, core.Compare(core.BitShr.Value(), core.PreemptiveYield.Value()))

	s1 := core.FunValue(core.StaticSync{Native: staticNative{id: 1}})
	s2 := core.FunValue(core.StaticSync{Native: staticNative{id: 7}})
	test.Equal(-1, core.Compare(s1, s2))
	test.True(core.Equal(s1, core.FunValue(core.StaticSync{Native: staticNative{id: 1, arity: 3}})))

	a1 := core.FunValue(core.StaticAsync{Native: staticAsyncNative{id: 1}})
	test.Equal(+1, core.Compare(a1, s2))
	test.Equal(+1, core.Compare(a1, core.PreemptiveYield.Value()))

	dynAsync := core.FunValue(core.NewDynamicAsync(asyncEcho{}))
	test.Equal(+1, core.Compare(dynAsync, a1))
	test.Equal(+1, core.Compare(dynAsync, core.NewClosure(newClosure(false))))
}

func TestForgedOrdinalCollision(t *testing.T) {
	test := require.New(t)

	dyn := core.NewDynamicSync(sumNative{1})
	forged := core.ClosureFun{Closure: fixedClosure{ordinal: dyn.Ordinal()}}

	test.Equal(-1, core.CompareFun(dyn, forged))
	test.Equal(+1, core.CompareFun(forged, dyn))
	test.False(core.EqualFun(dyn, forged))
	test.True(core.EqualFun(forged, core.ClosureFun{Closure: fixedClosure{ordinal: dyn.Ordinal()}}))
}

func TestOrdinalsIncrease(t *testing.T) {
	test := require.New(t)

	a := core.NextOrdinal()
	b := core.NewDynamicSync(sumNative{0}).Ordinal()
	c := newClosure(false).Ordinal()
	test.Less(uint64(a), uint64(b))
	test.Less(uint64(b), uint64(c))
}

func TestOrdinalsConcurrent(t *testing.T) {
	test := require.New(t)

	const workers, count = 8, 1000

	var (
		mutex sync.Mutex
		wg    sync.WaitGroup
		all   []core.Ordinal
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]core.Ordinal, count)
			for j := range local {
				local[j] = core.NextOrdinal()
			}
			for j := 1; j < len(local); j++ {
				if local[j] <= local[j-1] {
					panic("ordinals not increasing")
				}
			}
			mutex.Lock()
			all = append(all, local...)
			mutex.Unlock()
		}()
	}
	wg.Wait()

	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	test.Len(all, workers*count)
	for i := 1; i < len(all); i++ {
		test.NotEqual(all[i-1], all[i])
	}
}

func TestFunString(t *testing.T) {
	test := require.New(t)

	dyn := core.NewDynamicSync(sumNative{2})
	test.Equal("<fn sum#"+ordStr(dyn.Ordinal())+"/2>", core.FunString(dyn))

	closure := newClosure(true)
	test.Equal("<async closure#"+ordStr(closure.Ordinal())+"/1>", core.NewClosure(closure).String())

	test.Equal("<fn native/0>", core.FunValue(core.StaticSync{Native: staticNative{}}).String())
}

func ordStr(o core.Ordinal) string {
	return core.Int(int64(o)).String()
}

func TestCallSync(t *testing.T) {
	test := require.New(t)

	res, err := core.CallSync(core.IntAdd, []core.Value{core.Int(1), core.Int(2)}, nil)
	test.NoError(err)
	test.Equal("3", res.String())

	res, err = core.CallSync(core.NewDynamicSync(sumNative{3}), []core.Value{core.Int(1), core.Int(2), core.Int(3)}, nil)
	test.NoError(err)
	test.Equal("6", res.String())

	test.Panics(func() { core.CallSync(core.PreemptiveYield, nil, nil) })
	test.Panics(func() { core.CallSync(core.ClosureFun{Closure: newClosure(false)}, nil, nil) })
	test.Panics(func() { core.CallAsync(core.IntAdd, nil, nil) })

	future := core.CallAsync(core.PreemptiveYield, nil, nil)
	v, done, err := future.Poll(nil)
	test.True(done)
	test.NoError(err)
	test.True(v.IsNil())

	future = core.CallAsync(core.NewDynamicAsync(asyncEcho{}), []core.Value{core.Int(5)}, nil)
	v, done, err = future.Poll(nil)
	test.True(done)
	test.NoError(err)
	test.Equal("5", v.String())
}

func TestFunAccessors(t *testing.T) {
	test := require.New(t)

	_, ok := core.IntAdd.Value().AsSyncFun()
	test.True(ok)
	_, ok = core.IntAdd.Value().AsAsyncFun()
	test.False(ok)
	_, ok = core.PreemptiveYield.Value().AsAsyncFun()
	test.True(ok)

	closure := newClosure(false)
	c, ok := core.NewClosure(closure).AsClosure()
	test.True(ok)
	test.Equal(closure.Ordinal(), c.Ordinal())
	_, ok = core.NewClosure(closure).AsSyncFun()
	test.False(ok)
	_, ok = core.Int(1).AsClosure()
	test.False(ok)
}

func TestFutures(t *testing.T) {
	test := require.New(t)

	v, done, err := core.Ready(core.Int(1)).Poll(nil)
	test.True(done)
	test.NoError(err)
	test.Equal("1", v.String())

	boom := errors.New("boom")
	_, done, err = core.Failed(boom).Poll(nil)
	test.True(done)
	test.ErrorIs(err, boom)

	release := make(chan struct{})
	future := core.Spawn(func() (core.Value, error) {
		<-release
		return core.String("done"), nil
	})

	_, done, err = future.Poll(nil)
	test.False(done)
	test.NoError(err)

	close(release)
	test.Eventually(func() bool {
		_, done, _ := future.Poll(nil)
		return done
	}, time.Second, time.Millisecond)

	v, done, err = future.Poll(nil)
	test.True(done)
	test.NoError(err)
	test.Equal(`"done"`, v.String())
}

func TestConstantAndBind(t *testing.T) {
	test := require.New(t)

	c := core.Constant(core.String("x"))
	fn, ok := c.AsSyncFun()
	test.True(ok)
	test.Equal(0, fn.Arity())
	res, err := fn.Invoke(nil, nil)
	test.NoError(err)
	test.Equal(`"x"`, res.String())

	test.False(core.Equal(c, core.Constant(core.String("x"))))

	inc := core.Bind(core.IntAdd, core.Int(1))
	fn, ok = inc.AsSyncFun()
	test.True(ok)
	test.Equal(1, fn.Arity())
	res, err = fn.Invoke([]core.Value{core.Int(41)}, nil)
	test.NoError(err)
	test.Equal("42", res.String())

	sub := core.Bind(core.IntSub, core.Int(10))
	fn, _ = sub.AsSyncFun()
	res, err = fn.Invoke([]core.Value{core.Int(3)}, nil)
	test.NoError(err)
	test.Equal("7", res.String())

	test.Panics(func() { core.Bind(core.NewDynamicSync(sumNative{0}), core.Nil()) })
}

func TestWalk(t *testing.T) {
	test := require.New(t)

	closure := core.NewClosure(newClosure(false, core.Int(3), core.String("s")))
	root := core.List(
		core.Int(1),
		core.Dict(core.Int(2), core.Bind(core.IntAdd, core.Float(0.5))),
		closure,
		core.Constant(core.Bool(true)),
	)

	var ints []string
	core.Walk(root, func(v core.Value) bool {
		switch v.Kind() {
		case core.KindInt:
			ints = append(ints, v.String())
		case core.KindArray:
			if _, ok := v.AsString(); ok {
				return false
			}
		}
		return true
	})
	test.Equal([]string{"1", "2", "3"}, ints)

	var kinds []core.Kind
	core.Walk(root, func(v core.Value) bool {
		kinds = append(kinds, v.Kind())
		return v.Kind() != core.KindMap
	})
	test.Equal([]core.Kind{
		core.KindArray, core.KindInt, core.KindMap, core.KindFun,
		core.KindInt, core.KindArray, core.KindInt,
		core.KindFun, core.KindBool,
	}, kinds)
}

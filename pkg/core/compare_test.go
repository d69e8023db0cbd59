package core_test

import (
	"math"
	"testing"

	"axlab.dev/vvvm/pkg/core"
	"github.com/stretchr/testify/require"
)

var negZero = math.Copysign(0, -1)

func sampleValues() []core.Value {
	return []core.Value{
		core.Nil(),
		core.Bool(false),
		core.Bool(true),
		core.Float(math.NaN()),
		core.Float(math.Float64frombits(0xfff8_0000_0000_0001)),
		core.Float(math.Inf(-1)),
		core.Float(-1.5),
		core.Float(negZero),
		core.Float(0),
		core.Float(2),
		core.Float(math.Inf(+1)),
		core.Int(math.MinInt64),
		core.Int(-1),
		core.Int(0),
		core.Int(1),
		core.Int(math.MaxInt64),
		core.List(),
		core.List(core.Int(1)),
		core.List(core.Int(1), core.Nil()),
		core.List(core.Float(math.NaN())),
		core.String("abc"),
		core.Dict(),
		core.Dict(core.Int(1), core.Int(2)),
		core.Dict(core.Int(1), core.Int(3)),
		core.Dict(core.Int(0), core.Int(9)),
		core.IntAdd.Value(),
		core.BoolNot.Value(),
		core.FunValue(core.StaticSync{Native: staticNative{id: 1}}),
		core.Constant(core.Int(1)),
		core.NewClosure(newClosure(false)),
		core.PreemptiveYield.Value(),
		core.NewClosure(newClosure(true)),
	}
}

func TestCompareIsTotalOrder(t *testing.T) {
	test := require.New(t)

	values := sampleValues()
	for _, a := range values {
		test.Equal(0, core.Compare(a, a), "reflexive: %s", a.Debug())
		for _, b := range values {
			ab, ba := core.Compare(a, b), core.Compare(b, a)
			test.Equal(-ab, ba, "antisymmetric: %s %s", a.Debug(), b.Debug())
			if ab == 0 {
				test.Equal(core.Hash(a), core.Hash(b), "hash: %s %s", a.Debug(), b.Debug())
			}
			for _, c := range values {
				if ab <= 0 && core.Compare(b, c) <= 0 {
					test.LessOrEqual(core.Compare(a, c), 0, "transitive: %s %s %s", a.Debug(), b.Debug(), c.Debug())
				}
			}
		}
	}
}

func TestCompareKinds(t *testing.T) {
	test := require.New(t)

	ordered := []core.Value{
		core.Nil(),
		core.Bool(true),
		core.Float(math.Inf(1)),
		core.Int(math.MinInt64),
		core.List(),
		core.Dict(),
		core.IntAdd.Value(),
	}
	for i := 1; i < len(ordered); i++ {
		test.Equal(-1, core.Compare(ordered[i-1], ordered[i]))
		test.True(ordered[i-1].Less(ordered[i]))
	}
	test.Equal(+1, core.Compare(core.Bool(true), core.Bool(false)))
}

func TestCompareFloats(t *testing.T) {
	test := require.New(t)

	nan := core.Float(math.NaN())
	otherNaN := core.Float(math.Float64frombits(0x7ff0_0000_0000_0001))

	test.True(core.Equal(nan, nan))
	test.True(core.Equal(nan, otherNaN))
	test.Equal(-1, core.Compare(nan, core.Float(math.Inf(-1))))
	test.False(core.Equal(core.Float(negZero), core.Float(0)))
	test.Equal(-1, core.Compare(core.Float(negZero), core.Float(0)))
	test.Equal(-1, core.Compare(core.Float(-2), core.Float(-1)))
	test.False(core.Equal(core.Float(1), core.Int(1)))
}

func TestCompareCollections(t *testing.T) {
	test := require.New(t)

	test.Equal(-1, core.Compare(core.List(), core.List(core.Nil())))
	test.Equal(-1, core.Compare(core.List(core.Int(1)), core.List(core.Int(2))))
	test.Equal(+1, core.Compare(core.List(core.Int(2)), core.List(core.Int(1), core.Int(5))))
	test.True(core.Equal(core.String("abc"), core.List(core.Int('a'), core.Int('b'), core.Int('c'))))

	test.Equal(-1, core.Compare(core.Dict(core.Int(0), core.Int(9)), core.Dict(core.Int(1), core.Int(0))))
	test.Equal(-1, core.Compare(core.Dict(core.Int(1), core.Int(2)), core.Dict(core.Int(1), core.Int(3))))
	test.Equal(-1, core.Compare(core.Dict(core.Int(1), core.Int(2)), core.Dict(core.Int(1), core.Int(2), core.Int(3), core.Int(0))))
	test.True(core.Equal(
		core.Dict(core.Int(1), core.Nil(), core.Int(2), core.Nil()),
		core.Dict(core.Int(2), core.Nil(), core.Int(1), core.Nil()),
	))
}

func TestMinMax(t *testing.T) {
	test := require.New(t)

	a, b := core.Int(1), core.Int(2)
	test.True(core.Equal(a, core.Min(a, b)))
	test.True(core.Equal(a, core.Min(b, a)))
	test.True(core.Equal(b, core.Max(a, b)))
	test.True(core.Equal(b, core.Max(b, a)))

	nan := core.Float(math.NaN())
	test.True(core.Equal(nan, core.Min(nan, core.Float(0))))
	test.True(core.Equal(core.Float(0), core.Max(nan, core.Float(0))))
}

func TestPartialCompare(t *testing.T) {
	test := require.New(t)

	nan := core.Float(math.NaN())
	for _, it := range sampleValues() {
		_, ok := core.PartialCompare(nan, it)
		test.False(ok, "nan vs %s", it.Debug())
		_, ok = core.PartialCompare(it, nan)
		test.False(ok, "%s vs nan", it.Debug())
	}

	cmp, ok := core.PartialCompare(core.Float(negZero), core.Float(0))
	test.True(ok)
	test.Equal(0, cmp)

	_, ok = core.PartialCompare(core.Int(1), core.Float(1))
	test.False(ok)

	cmp, ok = core.PartialCompare(core.Int(1), core.Int(2))
	test.True(ok)
	test.Equal(-1, cmp)

	cmp, ok = core.PartialCompare(core.List(core.Int(1), nan), core.List(core.Int(2), nan))
	test.True(ok)
	test.Equal(-1, cmp)

	_, ok = core.PartialCompare(core.List(core.Int(1), nan), core.List(core.Int(1), nan))
	test.False(ok)

	_, ok = core.PartialCompare(core.List(core.Int(1)), core.List(core.Float(1)))
	test.False(ok)

	cmp, ok = core.PartialCompare(core.Dict(core.Int(0), nan), core.Dict(core.Int(1), nan))
	test.True(ok)
	test.Equal(-1, cmp)

	_, ok = core.PartialCompare(core.Dict(core.Int(0), nan), core.Dict(core.Int(0), nan))
	test.False(ok)

	cmp, ok = core.PartialCompare(core.Dict(core.Float(math.NaN()), core.Int(1)), core.Dict(core.Float(math.NaN()), core.Int(1)))
	test.True(ok)
	test.Equal(0, cmp)
}

func TestPartialPredicates(t *testing.T) {
	test := require.New(t)

	one, two := core.Float(1), core.Float(2)
	nan := core.Float(math.NaN())

	check := func(fn func(a, b core.Value) (bool, bool), a, b core.Value, expected bool) {
		res, ok := fn(a, b)
		test.True(ok)
		test.Equal(expected, res)
	}

	check(core.PartialLess, one, two, true)
	check(core.PartialLessEqual, one, one, true)
	check(core.PartialEqual, core.Float(negZero), core.Float(0), true)
	check(core.PartialGreaterEqual, one, two, false)
	check(core.PartialGreater, two, one, true)
	check(core.PartialNotEqual, one, two, true)

	for _, fn := range []func(a, b core.Value) (bool, bool){
		core.PartialLess, core.PartialLessEqual, core.PartialEqual,
		core.PartialGreaterEqual, core.PartialGreater, core.PartialNotEqual,
	} {
		_, ok := fn(nan, nan)
		test.False(ok)
	}
}

func TestLattice(t *testing.T) {
	test := require.New(t)

	nan := core.Float(math.NaN())

	v, ok := core.GreatestLowerBound(core.Float(1), core.Float(2))
	test.True(ok)
	test.Equal("1.0", v.String())

	v, ok = core.LeastUpperBound(core.Float(1), core.Float(2))
	test.True(ok)
	test.Equal("2.0", v.String())

	_, ok = core.GreatestLowerBound(nan, core.Float(1))
	test.False(ok)
	_, ok = core.LeastUpperBound(core.Float(1), nan)
	test.False(ok)
	_, ok = core.LeastUpperBound(nan, nan)
	test.False(ok)

	v, ok = core.GreatestLowerBound(core.Int(3), core.Int(-3))
	test.True(ok)
	test.True(core.Equal(core.Int(-3), v))

	v, ok = core.LeastUpperBound(core.String("a"), core.String("b"))
	test.True(ok)
	test.Equal(`"b"`, v.String())

	_, ok = core.GreatestLowerBound(core.Int(1), core.Float(1))
	test.False(ok)

	_, ok = core.LeastUpperBound(core.List(nan), core.List(nan))
	test.False(ok)
}

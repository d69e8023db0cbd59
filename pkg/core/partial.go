package core

import "axlab.dev/vvvm/pkg/scalar"

// Partial order over values, as used by the comparison operators of the
// language. Reports `ok == false` when the operands are incomparable.
//
//   - values of different kinds are incomparable;
//   - floats follow IEEE-754, so NaN is incomparable to everything;
//   - nil, booleans, integers and functions agree with the total order;
//   - arrays compare lexicographically and are incomparable as soon as the
//     first differing element pair is;
//   - maps compare their sorted entries, keys under the total order and
//     values under the partial order.
func PartialCompare(a, b Value) (cmp int, ok bool) {
	if a.kind != b.kind {
		return 0, false
	}

	switch a.kind {
	case KindFloat:
		return scalar.PartialCompare(a.scalar(), b.scalar())
	case KindArray:
		return partialSeq(a.ref.(Array).items, b.ref.(Array).items)
	case KindMap:
		return partialEntries(a.ref.(Map).entries, b.ref.(Map).entries)
	default:
		return Compare(a, b), true
	}
}

func (a Value) PartialCompare(b Value) (int, bool) {
	return PartialCompare(a, b)
}

func partialSeq(a, b []Value) (int, bool) {
	for i := 0; i < len(a) && i < len(b); i++ {
		cmp, ok := PartialCompare(a[i], b[i])
		if !ok || cmp != 0 {
			return cmp, ok
		}
	}
	return compareInt(int64(len(a)), int64(len(b))), true
}

func partialEntries(a, b []Entry) (int, bool) {
	for i := 0; i < len(a) && i < len(b); i++ {
		if cmp := Compare(a[i].Key, b[i].Key); cmp != 0 {
			return cmp, true
		}
		cmp, ok := PartialCompare(a[i].Value, b[i].Value)
		if !ok || cmp != 0 {
			return cmp, ok
		}
	}
	return compareInt(int64(len(a)), int64(len(b))), true
}

func partialTest(a, b Value, test func(cmp int) bool) (bool, bool) {
	cmp, ok := PartialCompare(a, b)
	if !ok {
		return false, false
	}
	return test(cmp), true
}

func PartialLess(a, b Value) (bool, bool) {
	return partialTest(a, b, func(cmp int) bool { return cmp < 0 })
}

func PartialLessEqual(a, b Value) (bool, bool) {
	return partialTest(a, b, func(cmp int) bool { return cmp <= 0 })
}

func PartialEqual(a, b Value) (bool, bool) {
	return partialTest(a, b, func(cmp int) bool { return cmp == 0 })
}

func PartialGreaterEqual(a, b Value) (bool, bool) {
	return partialTest(a, b, func(cmp int) bool { return cmp >= 0 })
}

func PartialGreater(a, b Value) (bool, bool) {
	return partialTest(a, b, func(cmp int) bool { return cmp > 0 })
}

func PartialNotEqual(a, b Value) (bool, bool) {
	return partialTest(a, b, func(cmp int) bool { return cmp != 0 })
}

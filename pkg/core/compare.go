package core

import (
	"encoding/binary"
	"hash"
	"hash/fnv"

	"axlab.dev/vvvm/pkg/scalar"
)

// Total order over all values. Returns -1, 0 or +1.
//
// Values of different kinds order by `Kind`. Floats use the NaN-aware order
// of the `scalar` package, arrays compare lexicographically, maps compare
// their sorted entry sequences, and functions follow `CompareFun`.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		return compareInt(int64(a.kind), int64(b.kind))
	}

	switch a.kind {
	case KindNil:
		return 0
	case KindBool, KindInt:
		return compareInt(int64(a.num), int64(b.num))
	case KindFloat:
		return scalar.Compare(a.scalar(), b.scalar())
	case KindArray:
		return compareSeq(a.ref.(Array).items, b.ref.(Array).items, Compare)
	case KindMap:
		return compareEntries(a.ref.(Map).entries, b.ref.(Map).entries, func(x, y Entry) int {
			if cmp := Compare(x.Key, y.Key); cmp != 0 {
				return cmp
			}
			return Compare(x.Value, y.Value)
		})
	case KindFun:
		return CompareFun(a.ref.(Fun), b.ref.(Fun))
	}
	panic("invalid value kind")
}

func (a Value) Compare(b Value) int {
	return Compare(a, b)
}

func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

func (a Value) Equal(b Value) bool {
	return Compare(a, b) == 0
}

func Less(a, b Value) bool {
	return Compare(a, b) < 0
}

func (a Value) Less(b Value) bool {
	return Compare(a, b) < 0
}

// Lesser of two values under the total order, `a` on ties.
func Min(a, b Value) Value {
	if Compare(b, a) < 0 {
		return b
	}
	return a
}

// Greater of two values under the total order, `b` on ties.
func Max(a, b Value) Value {
	if Compare(b, a) < 0 {
		return a
	}
	return b
}

func compareInt(a, b int64) int {
	if a < b {
		return -1
	} else if a > b {
		return +1
	}
	return 0
}

func compareSeq(a, b []Value, cmp func(x, y Value) int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp(a[i], b[i]); c != 0 {
			return c
		}
	}
	return compareInt(int64(len(a)), int64(len(b)))
}

func compareEntries(a, b []Entry, cmp func(x, y Entry) int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp(a[i], b[i]); c != 0 {
			return c
		}
	}
	return compareInt(int64(len(a)), int64(len(b)))
}

// Hash consistent with `Equal`, for hosts that keep values in hash tables.
func Hash(v Value) uint64 {
	h := fnv.New64a()
	writeHash(h, v)
	return h.Sum64()
}

func (v Value) Hash() uint64 {
	return Hash(v)
}

func writeHash(h hash.Hash64, v Value) {
	var buf [9]byte
	buf[0] = byte(v.kind)
	switch v.kind {
	case KindBool, KindInt:
		binary.LittleEndian.PutUint64(buf[1:], v.num)
	case KindFloat:
		binary.LittleEndian.PutUint64(buf[1:], scalar.Hash(v.scalar()))
	case KindArray:
		binary.LittleEndian.PutUint64(buf[1:], uint64(v.ref.(Array).Len()))
	case KindMap:
		binary.LittleEndian.PutUint64(buf[1:], uint64(v.ref.(Map).Len()))
	case KindFun:
		binary.LittleEndian.PutUint64(buf[1:], funHash(v.ref.(Fun)))
	}
	h.Write(buf[:])

	switch v.kind {
	case KindArray:
		for _, it := range v.ref.(Array).items {
			writeHash(h, it)
		}
	case KindMap:
		for _, it := range v.ref.(Map).entries {
			writeHash(h, it.Key)
			writeHash(h, it.Value)
		}
	}
}

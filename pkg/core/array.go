package core

import (
	"unicode/utf8"

	"axlab.dev/vvvm/util"
)

// Immutable sequence of values. Updates return a new array and leave the
// receiver untouched, so arrays can be shared freely. The zero value is the
// empty array.
type Array struct {
	items []Value
}

func NewArray(items ...Value) Array {
	out := make([]Value, len(items))
	copy(out, items)
	return Array{out}
}

// Shorthand for `ArrayValue(NewArray(items...))`.
func List(items ...Value) Value {
	return ArrayValue(NewArray(items...))
}

func (a Array) Len() int {
	return len(a.items)
}

func (a Array) Get(index int) (Value, bool) {
	if index < 0 || index >= len(a.items) {
		return Value{}, false
	}
	return a.items[index], true
}

// Copy of the elements.
func (a Array) Items() []Value {
	return NewArray(a.items...).items
}

func (a Array) Push(items ...Value) Array {
	return Array{util.Inserted(a.items, len(a.items), items...)}
}

func (a Array) Insert(index int, items ...Value) Array {
	return Array{util.Inserted(a.items, index, items...)}
}

func (a Array) Set(index int, item Value) Array {
	return Array{util.Replaced(a.items, index, item)}
}

func (a Array) Remove(index int) Array {
	return Array{util.Removed(a.items, index, index+1)}
}

// Sub-array sharing the storage of the receiver. The capacity is clipped so
// later pushes never write into the shared storage.
func (a Array) Slice(sta, end int) Array {
	util.Assert(0 <= sta && sta <= end && end <= len(a.items), util.Msg("slice %d..%d out of range for length %d", sta, end, len(a.items)))
	return Array{a.items[sta:end:end]}
}

func (a Array) Concat(b Array) Array {
	if len(b.items) == 0 {
		return a
	}
	if len(a.items) == 0 {
		return b
	}
	return a.Push(b.items...)
}

// Decodes the array as a string of code points, if it is one.
func (a Array) text() (string, bool) {
	runes := make([]rune, 0, len(a.items))
	for _, it := range a.items {
		n, ok := it.AsInt()
		if !ok || n < 0 || n > utf8.MaxRune || !utf8.ValidRune(rune(n)) || !isText(rune(n)) {
			return "", false
		}
		runes = append(runes, rune(n))
	}
	return string(runes), true
}

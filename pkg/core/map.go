package core

import (
	"sort"

	"axlab.dev/vvvm/util"
)

type Entry struct {
	Key   Value
	Value Value
}

// Immutable mapping sorted by key under the total order. Keys are unique.
// Updates return a new map. The zero value is the empty map.
type Map struct {
	entries []Entry
}

// Builds a map from the given entries. For duplicate keys the last entry
// wins.
func NewMap(entries ...Entry) Map {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Compare(sorted[i].Key, sorted[j].Key) < 0
	})

	out := sorted[:0]
	for i, it := range sorted {
		if i+1 < len(sorted) && Equal(it.Key, sorted[i+1].Key) {
			continue
		}
		out = append(out, it)
	}
	return Map{out}
}

// Shorthand for building a map value from alternating keys and values.
func Dict(pairs ...Value) Value {
	util.Assert(len(pairs)%2 == 0, "Dict requires an even number of arguments")
	entries := make([]Entry, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		entries = append(entries, Entry{pairs[i], pairs[i+1]})
	}
	return MapValue(NewMap(entries...))
}

func (m Map) Len() int {
	return len(m.entries)
}

// Index of the first entry whose key is not less than `key`.
func (m Map) search(key Value) (int, bool) {
	index := sort.Search(len(m.entries), func(i int) bool {
		return Compare(m.entries[i].Key, key) >= 0
	})
	found := index < len(m.entries) && Equal(m.entries[index].Key, key)
	return index, found
}

func (m Map) Get(key Value) (Value, bool) {
	if index, found := m.search(key); found {
		return m.entries[index].Value, true
	}
	return Value{}, false
}

func (m Map) Has(key Value) bool {
	_, found := m.search(key)
	return found
}

func (m Map) Insert(key, value Value) Map {
	index, found := m.search(key)
	if found {
		return Map{util.Replaced(m.entries, index, Entry{key, value})}
	}
	return Map{util.Inserted(m.entries, index, Entry{key, value})}
}

func (m Map) Remove(key Value) Map {
	index, found := m.search(key)
	if !found {
		return m
	}
	return Map{util.Removed(m.entries, index, index+1)}
}

// Entries in key order.
func (m Map) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m Map) Keys() []Value {
	out := make([]Value, len(m.entries))
	for i, it := range m.entries {
		out[i] = it.Key
	}
	return out
}

func (m Map) Values() []Value {
	out := make([]Value, len(m.entries))
	for i, it := range m.entries {
		out[i] = it.Value
	}
	return out
}

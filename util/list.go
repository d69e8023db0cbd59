package util

// Returns a new slice with `elems` inserted at `index`. The input slice is
// never written to, so it can keep being shared by older values.
func Inserted[T any](ls []T, index int, elems ...T) []T {
	Assert(index >= 0 && index <= len(ls), Msg("insert index %d out of range for length %d", index, len(ls)))
	out := make([]T, len(ls)+len(elems))
	copy(out, ls[:index])
	copy(out[index:], elems)
	copy(out[index+len(elems):], ls[index:])
	return out
}

// Returns a new slice without the elements in `[sta, end)`.
func Removed[T any](ls []T, sta, end int) []T {
	Assert(0 <= sta && sta <= end && end <= len(ls), Msg("remove range %d..%d out of range for length %d", sta, end, len(ls)))
	out := make([]T, 0, len(ls)-(end-sta))
	out = append(out, ls[:sta]...)
	out = append(out, ls[end:]...)
	return out
}

// Returns a copy of the slice with the element at `index` replaced.
func Replaced[T any](ls []T, index int, elem T) []T {
	Assert(index >= 0 && index < len(ls), Msg("replace index %d out of range for length %d", index, len(ls)))
	out := make([]T, len(ls))
	copy(out, ls)
	out[index] = elem
	return out
}

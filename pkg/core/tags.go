package core

// Strings, `ok` and `err` are not variants of their own. They follow a
// tagging convention over the existing variants:
//
//   - a string is an array of `Int` Unicode code points;
//   - `ok(v)` is the array `["ok", v]` and `err(v)` is `["err", v]`.

var (
	okTag  = String("ok")
	errTag = String("err")
)

func String(s string) Value {
	runes := []rune(s)
	items := make([]Value, len(runes))
	for i, r := range runes {
		items[i] = Int(int64(r))
	}
	return ArrayValue(Array{items})
}

// Decodes a string value. Any array of valid code points is a string.
func (v Value) AsString() (string, bool) {
	arr, ok := v.AsArray()
	if !ok {
		return "", false
	}
	runes := make([]rune, 0, arr.Len())
	for _, it := range arr.items {
		n, ok := it.AsInt()
		if !ok || n < 0 || n > 0x10FFFF || (n >= 0xD800 && n <= 0xDFFF) {
			return "", false
		}
		runes = append(runes, rune(n))
	}
	return string(runes), true
}

// Decodes a non-empty string of printable characters. This is the rule
// used to display an array as a string.
func (v Value) AsText() (string, bool) {
	arr, ok := v.AsArray()
	if !ok || arr.Len() == 0 {
		return "", false
	}
	return arr.text()
}

func Ok(v Value) Value {
	return ArrayValue(Array{[]Value{okTag, v}})
}

func Err(v Value) Value {
	return ArrayValue(Array{[]Value{errTag, v}})
}

func ErrNil() Value {
	return Err(Nil())
}

func (v Value) IsOk() bool {
	return v.hasTag(okTag)
}

func (v Value) IsErr() bool {
	return v.hasTag(errTag)
}

// Payload of an `ok` or `err` value.
func (v Value) Unwrap() (Value, bool) {
	if !v.IsOk() && !v.IsErr() {
		return Value{}, false
	}
	arr, _ := v.AsArray()
	return arr.items[1], true
}

func (v Value) hasTag(tag Value) bool {
	arr, ok := v.AsArray()
	return ok && arr.Len() == 2 && Equal(arr.items[0], tag)
}

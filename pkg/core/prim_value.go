package core

func valueHalt(args []Value) (Value, error) {
	return Value{}, fail(Halt, args[0])
}

func valueTypeOf(args []Value) (Value, error) {
	return String(args[0].Kind().String()), nil
}

func valueTruthy(args []Value) (Value, error) {
	return Bool(args[0].Truthy()), nil
}

func valueFalsey(args []Value) (Value, error) {
	return Bool(!args[0].Truthy()), nil
}

var (
	orderLess    = String("<")
	orderEqual   = String("=")
	orderGreater = String(">")
)

// Ordering as the strings `"<"`, `"="` and `">"`.
func orderingValue(cmp int) Value {
	switch {
	case cmp < 0:
		return orderLess
	case cmp > 0:
		return orderGreater
	default:
		return orderEqual
	}
}

func totalCompare(args []Value) (Value, error) {
	return orderingValue(Compare(args[0], args[1])), nil
}

func totalTest(test func(cmp int) bool) primFn {
	return func(args []Value) (Value, error) {
		return Bool(test(Compare(args[0], args[1]))), nil
	}
}

func partialCompare(args []Value) (Value, error) {
	cmp, ok := PartialCompare(args[0], args[1])
	if !ok {
		return ErrNil(), nil
	}
	return Ok(orderingValue(cmp)), nil
}

func partialTestFn(test func(a, b Value) (bool, bool)) primFn {
	return func(args []Value) (Value, error) {
		res, ok := test(args[0], args[1])
		if !ok {
			return ErrNil(), nil
		}
		return Ok(Bool(res)), nil
	}
}

func latticeFn(bound func(a, b Value) (Value, bool)) primFn {
	return func(args []Value) (Value, error) {
		res, ok := bound(args[0], args[1])
		if !ok {
			return ErrNil(), nil
		}
		return Ok(res), nil
	}
}

func boolNot(args []Value) (Value, error) {
	b, err := asBool(args[0])
	if err != nil {
		return Value{}, err
	}
	return Bool(!b), nil
}

// Both operands are checked before the operation, so `false and 1` fails.
func boolBinary(op func(a, b bool) bool) primFn {
	return func(args []Value) (Value, error) {
		a, err := asBool(args[0])
		if err != nil {
			return Value{}, err
		}
		b, err := asBool(args[1])
		if err != nil {
			return Value{}, err
		}
		return Bool(op(a, b)), nil
	}
}

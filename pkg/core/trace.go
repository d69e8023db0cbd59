package core

// Calls `visit` for each value directly reachable from `v`: array items,
// map keys and values, and whatever a traceable native or closure holds.
func (v Value) Trace(visit func(Value)) {
	switch v.kind {
	case KindArray:
		for _, it := range v.ref.(Array).items {
			visit(it)
		}
	case KindMap:
		for _, it := range v.ref.(Map).entries {
			visit(it.Key)
			visit(it.Value)
		}
	case KindFun:
		if tracer, ok := funTracer(v.ref.(Fun)); ok {
			tracer.Trace(visit)
		}
	}
}

func funTracer(f Fun) (Tracer, bool) {
	var target any
	switch f := f.(type) {
	case StaticSync:
		target = f.Native
	case StaticAsync:
		target = f.Native
	case DynamicSync:
		target = f.native
	case DynamicAsync:
		target = f.native
	case ClosureFun:
		target = f.Closure
	default:
		return nil, false
	}
	tracer, ok := target.(Tracer)
	return tracer, ok
}

// Depth-first walk over `v` and everything reachable from it. Returning
// false from `fn` skips the children of that value.
func Walk(v Value, fn func(Value) bool) {
	if !fn(v) {
		return
	}
	v.Trace(func(child Value) {
		Walk(child, fn)
	})
}

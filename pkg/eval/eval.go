package eval

import (
	"fmt"
	"time"

	"axlab.dev/vvvm/pkg/core"
	"axlab.dev/vvvm/pkg/reader"
)

// Error raised while evaluating a node, carrying its location. Core failures
// are wrapped unchanged, so `core.AsFailure` and `core.IsHalt` see through it.
type Error struct {
	Node *reader.Node
	Err  error
}

func (err *Error) Error() string {
	return fmt.Sprintf("%s: %v", err.Node.Span.Location(), err.Err)
}

func (err *Error) Unwrap() error {
	return err.Err
}

func (m *Machine) errorAt(node *reader.Node, msg string, args ...any) error {
	return &Error{Node: node, Err: fmt.Errorf(msg, args...)}
}

func (m *Machine) Eval(node *reader.Node) (core.Value, error) {
	switch node.Kind {
	case reader.NodeLiteral:
		return node.Value, nil
	case reader.NodeIdent:
		if v, ok := m.globals[node.Name]; ok {
			return v, nil
		}
		return core.Value{}, m.errorAt(node, "undefined `%s`", node.Name)
	case reader.NodeArray:
		items, err := m.evalAll(node.Items)
		if err != nil {
			return core.Value{}, err
		}
		return core.List(items...), nil
	case reader.NodeMap:
		items, err := m.evalAll(node.Items)
		if err != nil {
			return core.Value{}, err
		}
		return core.Dict(items...), nil
	case reader.NodeCall:
		if node.CallName() == "def" {
			return m.evalDef(node)
		}
		return m.evalCall(node)
	}
	panic(fmt.Sprintf("invalid node kind: %s", node.Kind))
}

func (m *Machine) evalAll(nodes []*reader.Node) ([]core.Value, error) {
	out := make([]core.Value, len(nodes))
	for i, it := range nodes {
		v, err := m.Eval(it)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (m *Machine) evalDef(node *reader.Node) (core.Value, error) {
	if len(node.Items) != 3 || node.Items[1].Kind != reader.NodeIdent {
		return core.Value{}, m.errorAt(node, "expected `def name value`")
	}
	name := node.Items[1].Name
	if name == "def" {
		return core.Value{}, m.errorAt(node.Items[1], "cannot redefine `def`")
	}
	value, err := m.Eval(node.Items[2])
	if err != nil {
		return core.Value{}, err
	}
	m.Define(name, value)
	return value, nil
}

func (m *Machine) evalCall(node *reader.Node) (core.Value, error) {
	callee, err := m.Eval(node.Items[0])
	if err != nil {
		return core.Value{}, err
	}
	fn, ok := callee.AsFun()
	if !ok {
		return core.Value{}, m.errorAt(node.Items[0], "%s is not callable", callee)
	}

	args, err := m.evalAll(node.Items[1:])
	if err != nil {
		return core.Value{}, err
	}

	result, err := m.Call(fn, args)
	if err != nil {
		if _, isHalt := core.IsHalt(err); isHalt {
			return core.Value{}, err
		}
		return core.Value{}, &Error{Node: node, Err: err}
	}
	return result, nil
}

// Invokes a callable, checking its arity and polling asynchronous results
// to completion.
func (m *Machine) Call(fn core.Fun, args []core.Value) (core.Value, error) {
	if fn.Arity() != len(args) {
		return core.Value{}, fmt.Errorf("%s expects %d arguments, got %d", core.FunString(fn), fn.Arity(), len(args))
	}

	if _, ok := fn.(core.ClosureFun); ok {
		return core.Value{}, fmt.Errorf("cannot call %s: closures are not supported", core.FunString(fn))
	}

	if !fn.IsAsync() {
		return core.CallSync(fn, args, m)
	}
	return m.Await(core.CallAsync(fn, args, m))
}

// Polls the future until it resolves or the poll budget runs out.
func (m *Machine) Await(future core.Future) (core.Value, error) {
	for i := 0; m.MaxPolls <= 0 || i < m.MaxPolls; i++ {
		m.polls++
		v, done, err := future.Poll(m)
		if done {
			return v, err
		}
		if m.PollInterval > 0 {
			time.Sleep(m.PollInterval)
		}
	}
	return core.Value{}, fmt.Errorf("%w after %d polls", ErrNotReady, m.MaxPolls)
}

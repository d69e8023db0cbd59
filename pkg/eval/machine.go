// Package eval runs parsed expressions against the core primitives. It is a
// minimal scheduler: it checks arities, polls futures and stops on `halt`.
package eval

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"axlab.dev/vvvm/pkg/core"
	"axlab.dev/vvvm/pkg/lexer"
	"axlab.dev/vvvm/pkg/reader"
)

const (
	DefaultMaxPolls     = 10000
	DefaultPollInterval = time.Millisecond
)

var ErrNotReady = errors.New("future not ready")

// Evaluation state. Implements `core.Machine` for the natives it invokes.
type Machine struct {
	Out          io.Writer
	MaxPolls     int
	PollInterval time.Duration

	globals map[string]core.Value
	polls   int
}

func New() *Machine {
	m := &Machine{
		Out:          os.Stdout,
		MaxPolls:     DefaultMaxPolls,
		PollInterval: DefaultPollInterval,
		globals:      make(map[string]core.Value),
	}
	for _, it := range core.Prims() {
		m.globals[it.Name()] = it.Value()
	}
	for _, it := range core.AsyncPrims() {
		m.globals[it.Name()] = it.Value()
	}
	m.globals["constant"] = core.FunValue(core.StaticSync{Native: constantNative{}})
	m.globals["bind"] = core.FunValue(core.StaticSync{Native: bindNative{}})
	return m
}

// Result of running a program. `Halted` is set when the program stopped
// through `halt`, in which case `Value` is the halt value.
type Outcome struct {
	Value  core.Value
	Halted bool
}

func (m *Machine) Define(name string, v core.Value) {
	m.globals[name] = v
}

func (m *Machine) Lookup(name string) (core.Value, bool) {
	v, ok := m.globals[name]
	return v, ok
}

// Names of all globals in sorted order.
func (m *Machine) Names() []string {
	out := make([]string, 0, len(m.globals))
	for name := range m.globals {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Registers a host native under `name`. Natives with an intrinsic order are
// registered as static natives, any other as a dynamic native with a fresh
// ordinal.
func (m *Machine) DefineNative(name string, native any) error {
	var fn core.Fun
	switch native := native.(type) {
	case core.StaticSyncNative:
		fn = core.StaticSync{Native: native}
	case core.StaticAsyncNative:
		fn = core.StaticAsync{Native: native}
	case core.SyncNative:
		fn = core.NewDynamicSync(native)
	case core.AsyncNative:
		fn = core.NewDynamicAsync(native)
	default:
		return fmt.Errorf("cannot define `%s`: %T is not a native", name, native)
	}
	m.Define(name, core.FunValue(fn))
	return nil
}

// Total number of future polls since the machine was created.
func (m *Machine) Polls() int {
	return m.polls
}

func (m *Machine) Run(src *lexer.Source) (out Outcome, err error) {
	nodes, err := reader.Parse(src)
	if err != nil {
		return out, err
	}
	return m.RunNodes(nodes)
}

func (m *Machine) RunString(name, text string) (Outcome, error) {
	return m.Run(lexer.SourceString(name, text))
}

// Evaluates the nodes in order. The outcome holds the value of the last one.
func (m *Machine) RunNodes(nodes []*reader.Node) (out Outcome, err error) {
	for _, it := range nodes {
		out.Value, err = m.Eval(it)
		if err != nil {
			if v, ok := core.IsHalt(err); ok {
				return Outcome{Value: v, Halted: true}, nil
			}
			return Outcome{}, err
		}
	}
	return out, nil
}

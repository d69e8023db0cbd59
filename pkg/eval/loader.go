package eval

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"axlab.dev/vvvm/pkg/lexer"
	"axlab.dev/vvvm/pkg/reader"
)

// Parsed source file.
type Module struct {
	Source *lexer.Source
	Nodes  []*reader.Node
	order  int
}

// Loads and parses source files relative to a base path. Each file is read
// at most once, and a failed load keeps returning the same error.
type Loader struct {
	BasePath string
	TabWidth int

	mutex   sync.Mutex
	modules map[string]loadResult
}

type loadResult struct {
	mod *Module
	err error
}

func (loader *Loader) Load(file string) (mod *Module, err error) {
	loader.mutex.Lock()
	defer loader.mutex.Unlock()

	if loader.modules == nil {
		loader.modules = make(map[string]loadResult)
	}

	base := loader.BasePath
	if base == "" {
		base = "."
	}
	if base, err = filepath.Abs(base); err != nil {
		return nil, err
	}

	if !filepath.IsAbs(file) {
		file = filepath.Join(base, file)
	}
	if res, ok := loader.modules[file]; ok {
		return res.mod, res.err
	}

	mod, err = loader.read(base, file)
	if mod != nil {
		mod.order = len(loader.modules) + 1
	}
	loader.modules[file] = loadResult{mod, err}
	return mod, err
}

func (loader *Loader) read(base, file string) (*Module, error) {
	name, err := filepath.Rel(base, file)
	if err != nil {
		return nil, err
	}
	name = strings.Replace(name, "\\", "/", -1)

	text, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	src := &lexer.Source{Name: name, Text: string(text), TabW: loader.TabWidth}
	nodes, err := reader.Parse(src)
	if err != nil {
		return nil, err
	}
	return &Module{Source: src, Nodes: nodes}, nil
}

// Successfully loaded modules in load order.
func (loader *Loader) Modules() (out []*Module) {
	loader.mutex.Lock()
	defer loader.mutex.Unlock()

	for _, it := range loader.modules {
		if it.mod != nil {
			out = append(out, it.mod)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].order < out[j].order
	})
	return out
}

// Loads `file` and runs it on the machine.
func (m *Machine) RunFile(loader *Loader, file string) (Outcome, error) {
	mod, err := loader.Load(file)
	if err != nil {
		return Outcome{}, err
	}
	return m.RunNodes(mod.Nodes)
}

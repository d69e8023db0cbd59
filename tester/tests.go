package tester

import (
	"fmt"
	"strings"
	"testing"

	"axlab.dev/vvvm/pkg/core"
)

// Test over the text of an input file. The result is checked according to
// its type:
//
//   - `string` and `[]string` against the `.out` file, line by line;
//   - `core.Value` and `[]core.Value` against the `.out` file, one displayed
//     value per line;
//   - an `error` fails the test;
//   - any other data against the `.out.yaml` file.
type FuncTest = func(input Input) any

// Test over the non-blank, non-comment lines of an input file.
type LineTest = func(input []string) any

func CheckInput(t *testing.T, testdata string, fn FuncTest) {
	runner := NewRunner(t, testdata, funcTestRunner{fn})
	runner.Run()
}

func CheckLines(t *testing.T, testdata string, lineFunc LineTest) {
	CheckInput(t, testdata, func(input Input) any {
		return lineFunc(input.Lines())
	})
}

type funcTestRunner struct {
	fn FuncTest
}

func (runner funcTestRunner) Run(input Input) (out Output) {
	switch v := runner.fn(input).(type) {
	case nil:
		out.Error = fmt.Errorf("the test generated no output")
	case error:
		out.Error = v
	case string:
		out.StdOut = v
	case []string:
		out.StdOut = strings.Join(v, "\n")
	case core.Value:
		out.StdOut = v.String()
	case []core.Value:
		lines := make([]string, len(v))
		for i, it := range v {
			lines[i] = it.String()
		}
		out.StdOut = strings.Join(lines, "\n")
	default:
		out.Data = v
	}
	return
}

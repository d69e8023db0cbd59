package tester_test

import (
	"strconv"
	"testing"

	"axlab.dev/vvvm/pkg/core"
	"axlab.dev/vvvm/pkg/scalar"
	"axlab.dev/vvvm/tester"
	"axlab.dev/vvvm/util"
	"github.com/stretchr/testify/require"
)

// Adds the integer on each line. Overflow gives `err(nil)`.
func sumLines(lines []string) core.Value {
	var total int64
	for _, it := range lines {
		n := util.Try(strconv.ParseInt(it, 0, 64))
		sum, ok := scalar.CheckedAdd(total, n)
		if !ok {
			return core.ErrNil()
		}
		total = sum
	}
	return core.Int(total)
}

func TestSum(t *testing.T) {
	tester.CheckLines(t, "testdata/sum", func(input []string) any {
		return sumLines(input)
	})
}

func TestStats(t *testing.T) {
	tester.CheckLines(t, "testdata/stats", func(input []string) any {
		sum, ok := sumLines(input).AsInt()
		require.True(t, ok)
		return map[string]any{"lines": len(input), "sum": int(sum)}
	})
}

func TestOutput(t *testing.T) {
	tester.CheckLines(t, "testdata/output", func(input []string) any {
		return input
	})
}

func TestValueLines(t *testing.T) {
	tester.CheckLines(t, "testdata/values", func(input []string) any {
		var out []core.Value
		for _, it := range input {
			out = append(out, core.String(it))
		}
		return out
	})
}

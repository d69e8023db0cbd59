package tester

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Line diff between an actual and an expected output.
type Diff struct {
	blocks []DiffBlock
}

// A run of lines in a diff. `Kind` is zero for lines common to both sides,
// negative for lines only in the source (actual) and positive for lines
// only in the destination (expected).
type DiffBlock struct {
	Kind int
	Src  int
	Dst  int
	Len  int
}

func Compare(src, dst []string) Diff {
	matcher := difflib.NewMatcher(src, dst)
	var out Diff
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			out.push(0, op.I1, op.J1, op.I2-op.I1)
		case 'd':
			out.push(-1, op.I1, op.J1, op.I2-op.I1)
		case 'i':
			out.push(+1, op.I1, op.J1, op.J2-op.J1)
		case 'r':
			out.push(-1, op.I1, op.J1, op.I2-op.I1)
			out.push(+1, op.I2, op.J1, op.J2-op.J1)
		}
	}
	return out
}

func (diff *Diff) push(kind, src, dst, size int) {
	if size > 0 {
		diff.blocks = append(diff.blocks, DiffBlock{Kind: kind, Src: src, Dst: dst, Len: size})
	}
}

// True if both sides are the same.
func (diff Diff) Empty() bool {
	for _, it := range diff.blocks {
		if it.Kind != 0 {
			return false
		}
	}
	return true
}

func (diff Diff) Blocks() []DiffBlock {
	return diff.blocks
}

// Unified diff text, as used in test failure messages.
func UnifiedDiff(actual, expected []string) string {
	text, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        addNewlines(actual),
		B:        addNewlines(expected),
		FromFile: "actual",
		ToFile:   "expected",
		Context:  2,
	})
	return text
}

func addNewlines(lines []string) []string {
	out := make([]string, len(lines))
	for i, it := range lines {
		out[i] = it + "\n"
	}
	return out
}

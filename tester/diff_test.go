package tester_test

import (
	"testing"

	"axlab.dev/vvvm/tester"
	"github.com/stretchr/testify/require"
)

func TestCompareEqual(t *testing.T) {
	test := require.New(t)

	lines := []string{"a", "b", "c"}
	diff := tester.Compare(lines, lines)
	test.True(diff.Empty())
	test.Equal([]tester.DiffBlock{{Kind: 0, Src: 0, Dst: 0, Len: 3}}, diff.Blocks())

	test.True(tester.Compare(nil, nil).Empty())
}

func TestCompareChanges(t *testing.T) {
	test := require.New(t)

	actual := []string{"a", "x", "c", "d"}
	expected := []string{"a", "b", "c"}

	diff := tester.Compare(actual, expected)
	test.False(diff.Empty())
	test.Equal([]tester.DiffBlock{
		{Kind: 0, Src: 0, Dst: 0, Len: 1},
		{Kind: -1, Src: 1, Dst: 1, Len: 1},
		{Kind: +1, Src: 2, Dst: 1, Len: 1},
		{Kind: 0, Src: 2, Dst: 2, Len: 1},
		{Kind: -1, Src: 3, Dst: 3, Len: 1},
	}, diff.Blocks())
}

func TestUnifiedDiff(t *testing.T) {
	test := require.New(t)

	text := tester.UnifiedDiff([]string{"a", "x"}, []string{"a", "b"})
	test.Contains(text, "--- actual")
	test.Contains(text, "+++ expected")
	test.Contains(text, "-x")
	test.Contains(text, "+b")

	test.Empty(tester.UnifiedDiff([]string{"a"}, []string{"a"}))
}

package reader_test

import (
	"math"
	"testing"

	"axlab.dev/vvvm/pkg/core"
	"axlab.dev/vvvm/pkg/lexer"
	"axlab.dev/vvvm/pkg/reader"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, text string) []*reader.Node {
	t.Helper()
	nodes, err := reader.Parse(lexer.SourceString("test", text))
	require.NoError(t, err)
	return nodes
}

func TestParseLiterals(t *testing.T) {
	test := require.New(t)

	nodes := parse(t, "nil\ntrue\nfalse\n42\n-0x10\n1_000\n2.5\n-inf\nnan\n\"a\\tb\"")
	var out []string
	for _, it := range nodes {
		test.Equal(reader.NodeLiteral, it.Kind)
		out = append(out, it.Value.Debug())
	}
	test.Equal([]string{
		"<nil>(nil)", "<bool>(true)", "<bool>(false)", "<int>(42)", "<int>(-16)",
		"<int>(1000)", "<float>(2.5)", "<float>(-inf)", "<float>(nan)", `<array>("a\tb")`,
	}, out)
}

func TestParseNegativeSpecialFloats(t *testing.T) {
	test := require.New(t)

	nodes := parse(t, "-nan\n-inf\n[-nan 1]")
	test.Len(nodes, 3)

	f, ok := nodes[0].Value.AsFloat()
	test.True(ok)
	test.True(math.IsNaN(f))

	f, ok = nodes[1].Value.AsFloat()
	test.True(ok)
	test.True(math.IsInf(f, -1))

	test.Equal(reader.NodeArray, nodes[2].Kind)
	test.Equal("<float>(nan)", nodes[2].Items[0].Value.Debug())
}

func TestParseCollections(t *testing.T) {
	test := require.New(t)

	nodes := parse(t, "[1 2, [3]]\n{a: 1, \"b\": [x]}\n{}")
	test.Len(nodes, 3)
	test.Equal(reader.NodeArray, nodes[0].Kind)
	test.Equal("[1 2 [3]]", nodes[0].String())
	test.Equal(reader.NodeMap, nodes[1].Kind)
	test.Len(nodes[1].Items, 4)
	test.Equal(`{a: 1 "b": [x]}`, nodes[1].String())
	test.Equal(reader.NodeIdent, nodes[1].Items[0].Kind)
	test.Empty(nodes[2].Items)
}

func TestParseCalls(t *testing.T) {
	test := require.New(t)

	nodes := parse(t, "int_add 1 2\n(int_neg (int_add 1 2))\nx\n# only a comment\n\ndef y [\n  1\n  2\n]")
	test.Len(nodes, 4)

	test.Equal(reader.NodeCall, nodes[0].Kind)
	test.Equal("int_add", nodes[0].CallName())
	test.Equal("(int_add 1 2)", nodes[0].String())

	test.Equal("(int_neg (int_add 1 2))", nodes[1].String())

	test.Equal(reader.NodeIdent, nodes[2].Kind)
	test.Equal("", nodes[2].CallName())

	test.Equal("(def y [1 2])", nodes[3].String())
	test.Equal("test:6:1", nodes[3].Span.Location())
}

func TestParseErrors(t *testing.T) {
	test := require.New(t)

	check := func(text, msg string, incomplete bool) {
		_, err := reader.Parse(lexer.SourceString("test", text))
		test.Error(err, text)
		test.Equal(msg, err.Error())
		test.Equal(incomplete, reader.IsIncomplete(err), text)
	}

	check("[1 2", "test:1:5: missing `]` for `[` at test:1:1", true)
	check("(f\n  1", "test:2:4: missing `)` for `(` at test:1:1", true)
	check(`"abc`, "test:1:5: unterminated string", true)
	check("{a 1}", "test:1:4: expected `:` after map key a", false)
	check("{a:", "test:1:4: missing value for map key a", true)
	check("1 2", "test:1:3: unexpected 2 after 1", false)
	check(")", "test:1:1: unexpected `)`", false)
	check("()", "test:1:1: empty call", false)
	check("a @", "test:1:3: invalid character `@`", false)
	check("12abc", "test:1:1: invalid integer `12abc`", false)

	_, err := reader.ParseString("expr", "1\n2")
	test.EqualError(err, "expr: expected one expression, found 2")
}

func TestParseString(t *testing.T) {
	test := require.New(t)

	node, err := reader.ParseString("expr", `["ok" {1: 2.0}]`)
	test.NoError(err)
	test.Equal(`["ok" {1: 2.0}]`, node.String())
	test.Equal(reader.NodeLiteral, node.Items[0].Kind)
	test.True(core.Equal(core.String("ok"), node.Items[0].Value))
}

func TestMultilineString(t *testing.T) {
	test := require.New(t)

	node, err := reader.ParseString("expr", "\"line 1\nline 2\"")
	test.NoError(err)
	s, ok := node.Value.AsString()
	test.True(ok)
	test.Equal("line 1\nline 2", s)
}

package codec_test

import (
	"math"
	"testing"

	"axlab.dev/vvvm/pkg/codec"
	"axlab.dev/vvvm/pkg/core"
	"axlab.dev/vvvm/tester"
	"axlab.dev/vvvm/util"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDocuments(t *testing.T) {
	tester.CheckInput(t, "testdata", func(input tester.Input) any {
		var doc yaml.Node
		input.Yaml(&doc)

		v, err := codec.FromNode(&doc)
		if err != nil {
			return []string{"error: " + err.Error()}
		}

		data, err := codec.EncodeYAML(v)
		if err != nil {
			return []string{v.String(), "error: " + err.Error()}
		}
		return append([]string{v.String(), "---"}, util.Lines(string(data))...)
	})
}

func TestEncodeScalars(t *testing.T) {
	test := require.New(t)

	check := func(v core.Value, expected string) {
		out, err := codec.EncodeYAML(v)
		test.NoError(err)
		test.Equal(expected, string(out), "encoding %s", v.Debug())
	}

	check(core.Nil(), "null\n")
	check(core.Bool(true), "true\n")
	check(core.Int(-42), "-42\n")
	check(core.Float(1.5), "1.5\n")
	check(core.Float(2), "2.0\n")
	check(core.Float(math.NaN()), ".nan\n")
	check(core.Float(math.Inf(+1)), ".inf\n")
	check(core.Float(math.Inf(-1)), "-.inf\n")
	check(core.String("abc"), "abc\n")
	check(core.String("true"), "\"true\"\n")
	check(core.List(), "[]\n")
	check(core.Dict(), "{}\n")
}

func TestEncodeCollections(t *testing.T) {
	test := require.New(t)

	v := core.Dict(
		core.String("b"), core.List(core.Int(1), core.Int(2)),
		core.String("a"), core.Bool(false),
	)
	out, err := codec.EncodeYAML(v)
	test.NoError(err)
	test.Equal("a: false\nb:\n  - 1\n  - 2\n", string(out))
}

func TestEncodeFunctionFails(t *testing.T) {
	test := require.New(t)

	_, err := codec.EncodeYAML(core.List(core.Int(1), core.IntAdd.Value()))
	test.ErrorIs(err, codec.ErrFunction)
}

func TestDecode(t *testing.T) {
	test := require.New(t)

	v, err := codec.DecodeYAML([]byte(`
name: vvvm
count: 3
ratio: 0.25
flags: [true, false, ~]
nested:
  - {x: 1}
  - .nan
`))
	test.NoError(err)

	expected := core.Dict(
		core.String("name"), core.String("vvvm"),
		core.String("count"), core.Int(3),
		core.String("ratio"), core.Float(0.25),
		core.String("flags"), core.List(core.Bool(true), core.Bool(false), core.Nil()),
		core.String("nested"), core.List(
			core.Dict(core.String("x"), core.Int(1)),
			core.Float(math.NaN()),
		),
	)
	test.True(expected.Equal(v), "got %s", v.Debug())
}

func TestDecodeEmpty(t *testing.T) {
	test := require.New(t)

	v, err := codec.DecodeYAML(nil)
	test.NoError(err)
	test.True(v.IsNil())
}

func TestDecodeAlias(t *testing.T) {
	test := require.New(t)

	v, err := codec.DecodeYAML([]byte("a: &x [1, 2]\nb: *x\n"))
	test.NoError(err)

	m, ok := v.AsMap()
	test.True(ok)
	a, _ := m.Get(core.String("a"))
	b, _ := m.Get(core.String("b"))
	test.True(a.Equal(b))
}

func TestDecodeInvalid(t *testing.T) {
	test := require.New(t)

	_, err := codec.DecodeYAML([]byte("a: [1, 2"))
	test.Error(err)

	_, err = codec.DecodeYAML([]byte("!!binary aGVsbG8="))
	test.ErrorContains(err, "unsupported YAML tag")
}

func TestRoundTrip(t *testing.T) {
	test := require.New(t)

	values := []core.Value{
		core.Float(math.Inf(-1)),
		core.Float(-0.5),
		core.Float(1e100),
		core.Int(math.MinInt64),
		core.String("line one\nline two\n"),
		core.List(core.List(), core.Int(0x41), core.String("")),
		core.Dict(core.List(core.Int(1), core.Int(2)), core.String("pair")),
		core.Dict(core.Int(1), core.Nil(), core.Bool(true), core.Float(2)),
	}

	for _, v := range values {
		data, err := codec.EncodeYAML(v)
		test.NoError(err)

		back, err := codec.DecodeYAML(data)
		test.NoError(err)
		test.True(v.Equal(back), "round trip of %s gave %s from:\n%s", v.Debug(), back.Debug(), data)
	}
}

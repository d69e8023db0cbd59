// Package codec converts values to and from YAML documents.
//
// Scalars map to YAML scalars, with `.nan`, `.inf` and `-.inf` for the
// special floats. Arrays that read as text are written as strings, other
// arrays as sequences. Maps become mappings, where any value can be a key.
// Functions cannot be encoded.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"

	"axlab.dev/vvvm/pkg/core"
	"gopkg.in/yaml.v3"
)

var ErrFunction = errors.New("functions cannot be encoded")

func EncodeYAML(v core.Value) ([]byte, error) {
	node, err := ToNode(v)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	enc := yaml.NewEncoder(&out)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Decodes the first document in `data`. An empty document is `nil`.
func DecodeYAML(data []byte) (core.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return core.Value{}, err
	}
	if doc.Kind == 0 {
		return core.Nil(), nil
	}
	return FromNode(&doc)
}

func ToNode(v core.Value) (*yaml.Node, error) {
	switch v.Kind() {
	case core.KindNil:
		return scalar("!!null", "null"), nil
	case core.KindBool:
		b, _ := v.AsBool()
		return scalar("!!bool", strconv.FormatBool(b)), nil
	case core.KindInt:
		n, _ := v.AsInt()
		return scalar("!!int", strconv.FormatInt(n, 10)), nil
	case core.KindFloat:
		f, _ := v.AsFloat()
		return scalar("!!float", formatFloat(f)), nil
	case core.KindArray:
		if text, ok := v.AsText(); ok {
			return scalar("!!str", text), nil
		}
		arr, _ := v.AsArray()
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if arr.Len() == 0 {
			node.Style = yaml.FlowStyle
		}
		for _, it := range arr.Items() {
			item, err := ToNode(it)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, item)
		}
		return node, nil
	case core.KindMap:
		m, _ := v.AsMap()
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if m.Len() == 0 {
			node.Style = yaml.FlowStyle
		}
		for _, it := range m.Entries() {
			key, err := ToNode(it.Key)
			if err != nil {
				return nil, err
			}
			value, err := ToNode(it.Value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, key, value)
		}
		return node, nil
	case core.KindFun:
		return nil, fmt.Errorf("%w: %s", ErrFunction, v)
	}
	return nil, fmt.Errorf("invalid value kind %s", v.Kind())
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, +1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return core.Float(f).String()
}

func FromNode(node *yaml.Node) (core.Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return core.Nil(), nil
		}
		return FromNode(node.Content[0])
	case yaml.AliasNode:
		return FromNode(node.Alias)
	case yaml.SequenceNode:
		items := make([]core.Value, len(node.Content))
		for i, it := range node.Content {
			v, err := FromNode(it)
			if err != nil {
				return core.Value{}, err
			}
			items[i] = v
		}
		return core.List(items...), nil
	case yaml.MappingNode:
		pairs := make([]core.Value, len(node.Content))
		for i, it := range node.Content {
			v, err := FromNode(it)
			if err != nil {
				return core.Value{}, err
			}
			pairs[i] = v
		}
		return core.Dict(pairs...), nil
	case yaml.ScalarNode:
		return fromScalar(node)
	}
	return core.Value{}, fmt.Errorf("line %d: unsupported YAML node", node.Line)
}

func fromScalar(node *yaml.Node) (core.Value, error) {
	switch tag := node.ShortTag(); tag {
	case "!!null":
		return core.Nil(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return core.Value{}, err
		}
		return core.Bool(b), nil
	case "!!int":
		var n int64
		if err := node.Decode(&n); err != nil {
			return core.Value{}, err
		}
		return core.Int(n), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return core.Value{}, err
		}
		return core.Float(f), nil
	case "!!str":
		return core.String(node.Value), nil
	default:
		return core.Value{}, fmt.Errorf("line %d: unsupported YAML tag %s", node.Line, tag)
	}
}

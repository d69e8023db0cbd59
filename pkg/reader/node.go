// Package reader parses the literal and call syntax used by the command
// line tools into an expression tree.
package reader

import (
	"fmt"
	"strings"

	"axlab.dev/vvvm/pkg/core"
	"axlab.dev/vvvm/pkg/lexer"
)

type NodeKind uint8

const (
	NodeLiteral NodeKind = iota
	NodeIdent
	NodeArray
	NodeMap
	NodeCall
)

var nodeKindNames = [...]string{
	NodeLiteral: "Literal",
	NodeIdent:   "Ident",
	NodeArray:   "Array",
	NodeMap:     "Map",
	NodeCall:    "Call",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return fmt.Sprintf("NodeKind(%d)", k)
}

// Expression node.
//
// Map items alternate between keys and values. Call items start with the
// callee, followed by the arguments.
type Node struct {
	Kind  NodeKind
	Span  lexer.Span
	Value core.Value
	Name  string
	Items []*Node
}

func (node *Node) String() string {
	out := strings.Builder{}
	node.write(&out)
	return out.String()
}

func (node *Node) write(out *strings.Builder) {
	switch node.Kind {
	case NodeLiteral:
		out.WriteString(node.Value.String())
	case NodeIdent:
		out.WriteString(node.Name)
	case NodeArray, NodeMap, NodeCall:
		sta, end := "[", "]"
		if node.Kind == NodeMap {
			sta, end = "{", "}"
		} else if node.Kind == NodeCall {
			sta, end = "(", ")"
		}
		out.WriteString(sta)
		for i, it := range node.Items {
			if i > 0 {
				if node.Kind == NodeMap && i%2 == 1 {
					out.WriteString(": ")
				} else {
					out.WriteString(" ")
				}
			}
			it.write(out)
		}
		out.WriteString(end)
	}
}

// Callee name if the node is a call to an identifier.
func (node *Node) CallName() string {
	if node.Kind == NodeCall && len(node.Items) > 0 && node.Items[0].Kind == NodeIdent {
		return node.Items[0].Name
	}
	return ""
}

type Error struct {
	Span       lexer.Span
	Message    string
	Incomplete bool
}

func (err *Error) Error() string {
	return fmt.Sprintf("%s: %s", err.Span.Location(), err.Message)
}

// True if parsing failed only because the input ended early, so more
// input could complete it.
func IsIncomplete(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Incomplete
	}
	return false
}

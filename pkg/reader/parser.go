package reader

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"axlab.dev/vvvm/pkg/core"
	"axlab.dev/vvvm/pkg/lexer"
)

type parser struct {
	src    *lexer.Source
	tokens []lexer.Token
	pos    int
}

// Parses each line of the source as one expression. A line holding an
// identifier followed by more items is a call, so `f a b` reads as
// `(f a b)`. Line breaks inside brackets are ignored.
func Parse(src *lexer.Source) ([]*Node, error) {
	return ParseWith(lexer.Default(), src)
}

func ParseWith(lex *lexer.Lexer, src *lexer.Source) (out []*Node, err error) {
	p := &parser{src: src}
	for _, it := range lex.Tokenize(src) {
		if it.Kind != lexer.TokenComment {
			p.tokens = append(p.tokens, it)
		}
	}

	for {
		p.skipBreaks()
		if p.done() {
			return out, nil
		}
		node, err := p.parseLine()
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
}

// Parses a single expression spanning the whole text.
func ParseString(name, text string) (*Node, error) {
	nodes, err := Parse(lexer.SourceString(name, text))
	if err != nil {
		return nil, err
	}
	if len(nodes) != 1 {
		return nil, fmt.Errorf("%s: expected one expression, found %d", name, len(nodes))
	}
	return nodes[0], nil
}

func (p *parser) done() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) peek() *lexer.Token {
	if p.done() {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *parser) skipBreaks() {
	for !p.done() && p.tokens[p.pos].Kind == lexer.TokenBreak {
		p.pos++
	}
}

func (p *parser) endSpan() lexer.Span {
	span := p.src.Span()
	span.Sta = span.End
	if len(p.tokens) > 0 {
		last := p.tokens[len(p.tokens)-1].Span
		last.Advance(last.Len())
		span = last
	}
	return span
}

func (p *parser) errorAt(span lexer.Span, msg string, args ...any) error {
	return &Error{Span: span, Message: fmt.Sprintf(msg, args...)}
}

func (p *parser) incomplete(msg string, args ...any) error {
	return &Error{Span: p.endSpan(), Message: fmt.Sprintf(msg, args...), Incomplete: true}
}

func (p *parser) parseLine() (*Node, error) {
	var items []*Node
	for !p.done() && p.peek().Kind != lexer.TokenBreak {
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if len(items) == 1 {
		return items[0], nil
	}

	head := items[0]
	if head.Kind != NodeIdent {
		return nil, p.errorAt(items[1].Span, "unexpected %s after %s", items[1], head)
	}
	return &Node{
		Kind:  NodeCall,
		Span:  head.Span.Merged(items[len(items)-1].Span),
		Items: items,
	}, nil
}

func (p *parser) parseItem() (*Node, error) {
	tok := *p.peek()
	p.pos++

	text := tok.Text()
	switch tok.Kind {
	case lexer.TokenWord:
		return p.parseWord(tok), nil
	case lexer.TokenInteger:
		n, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return nil, p.errorAt(tok.Span, "invalid integer `%s`", text)
		}
		return literal(tok, core.Int(n)), nil
	case lexer.TokenFloat:
		if text == "-nan" {
			return literal(tok, core.Float(math.NaN())), nil
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(text, "_", ""), 64)
		if err != nil {
			return nil, p.errorAt(tok.Span, "invalid float `%s`", text)
		}
		return literal(tok, core.Float(f)), nil
	case lexer.TokenString:
		str, err := unquote(text)
		if err != nil {
			return nil, p.errorAt(tok.Span, "invalid string %s", text)
		}
		return literal(tok, core.String(str)), nil
	case lexer.TokenSymbol:
		switch text {
		case "[":
			return p.parseList(tok, NodeArray, "]")
		case "(":
			node, err := p.parseList(tok, NodeCall, ")")
			if err == nil && len(node.Items) == 0 {
				err = p.errorAt(node.Span, "empty call")
			}
			return node, err
		case "{":
			return p.parseMap(tok)
		}
		return nil, p.errorAt(tok.Span, "unexpected `%s`", text)
	case lexer.TokenInvalid:
		if strings.HasPrefix(text, `"`) {
			return nil, p.incomplete("unterminated string")
		}
		return nil, p.errorAt(tok.Span, "invalid character `%s`", text)
	}
	return nil, p.errorAt(tok.Span, "unexpected %s", tok.Kind)
}

func literal(tok lexer.Token, v core.Value) *Node {
	return &Node{Kind: NodeLiteral, Span: tok.Span, Value: v}
}

func (p *parser) parseWord(tok lexer.Token) *Node {
	switch text := tok.Text(); text {
	case "nil":
		return literal(tok, core.Nil())
	case "true":
		return literal(tok, core.Bool(true))
	case "false":
		return literal(tok, core.Bool(false))
	case "nan":
		return literal(tok, core.Float(math.NaN()))
	case "inf":
		return literal(tok, core.Float(math.Inf(+1)))
	default:
		return &Node{Kind: NodeIdent, Span: tok.Span, Name: text}
	}
}

func (p *parser) parseList(sta lexer.Token, kind NodeKind, end string) (*Node, error) {
	node := &Node{Kind: kind, Span: sta.Span}
	for {
		p.skipBreaks()
		next := p.peek()
		if next == nil {
			return nil, p.incomplete("missing `%s` for `%s` at %s", end, sta.Text(), sta.Span.Location())
		}
		if next.Kind == lexer.TokenSymbol && next.Text() == end {
			node.Span = node.Span.Merged(next.Span)
			p.pos++
			return node, nil
		}
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		node.Items = append(node.Items, item)
	}
}

func (p *parser) parseMap(sta lexer.Token) (*Node, error) {
	node := &Node{Kind: NodeMap, Span: sta.Span}
	for {
		p.skipBreaks()
		next := p.peek()
		if next == nil {
			return nil, p.incomplete("missing `}` for `{` at %s", sta.Span.Location())
		}
		if next.Kind == lexer.TokenSymbol && next.Text() == "}" {
			node.Span = node.Span.Merged(next.Span)
			p.pos++
			return node, nil
		}

		key, err := p.parseItem()
		if err != nil {
			return nil, err
		}

		p.skipBreaks()
		if colon := p.peek(); colon == nil {
			return nil, p.incomplete("missing `:` after map key %s", key)
		} else if colon.Kind != lexer.TokenSymbol || colon.Text() != ":" {
			return nil, p.errorAt(colon.Span, "expected `:` after map key %s", key)
		}
		p.pos++

		p.skipBreaks()
		if p.done() {
			return nil, p.incomplete("missing value for map key %s", key)
		}
		value, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		node.Items = append(node.Items, key, value)
	}
}

func unquote(text string) (string, error) {
	text = strings.ReplaceAll(text, "\r\n", `\n`)
	text = strings.ReplaceAll(text, "\n", `\n`)
	return strconv.Unquote(text)
}

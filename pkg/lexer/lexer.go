package lexer

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

type Lexer struct {
	Comment   string
	symbol_re *regexp.Regexp
	symbols   []string
	matchers  []func(span *Span) (bool, Token)
}

func New() *Lexer {
	return &Lexer{}
}

// Lexer for the value syntax: numbers, strings, words, `#` comments and the
// bracket symbols.
func Default() *Lexer {
	lex := New()
	lex.Comment = "#"
	lex.MatchStrings()
	lex.MatchNumbers()
	lex.AddSymbols("(", ")", "[", "]", "{", "}", ":")
	return lex
}

func (lex *Lexer) Clone() *Lexer {
	out := *lex
	out.symbols = append([]string(nil), lex.symbols...)
	out.matchers = append([]func(span *Span) (bool, Token)(nil), lex.matchers...)
	return &out
}

// Numbers may start with a minus sign. Trailing letters are kept in the
// token so that a malformed number is reported as a whole.
func (lex *Lexer) MatchNumbers() {
	lex.MatchRE(TokenInteger, `-?0[xX][_A-Za-z0-9]*`)
	lex.MatchRE(TokenFloat, `-?[0-9][_0-9]*(\.[0-9][_0-9]*([eE][-+]?[0-9][_0-9]*)?|[eE][-+]?[0-9][_0-9]*)[_A-Za-z0-9]*`)
	lex.MatchRE(TokenInteger, `-?[0-9][_0-9]*[_A-Za-z0-9]*`)
	lex.MatchRE(TokenFloat, `-(inf|nan)\b`)
}

// Double quoted strings with backslash escapes. An unterminated string is
// an invalid token.
func (lex *Lexer) MatchStrings() {
	lex.MatchRE(TokenString, `"(\\.|[^"\\])*"`)
	lex.MatchRE(TokenInvalid, `"(\\.|[^"\\])*`)
}

func (lex *Lexer) MatchRE(kind TokenKind, re string) {
	if !strings.HasPrefix(re, "^") {
		re = "^" + re
	}
	regex := regexp.MustCompile(re)
	lex.matchers = append(lex.matchers, func(span *Span) (ok bool, out Token) {
		text := span.Text()
		size := len(regex.FindString(text))
		if size > 0 {
			out = NewToken(kind, span, size)
			return true, out
		}
		return
	})
}

func (lex *Lexer) AddSymbols(symbols ...string) {
	lex.symbols = append(lex.symbols, symbols...)
	sort.SliceStable(lex.symbols, func(a, b int) bool {
		return len(lex.symbols[a]) > len(lex.symbols[b])
	})

	re := strings.Builder{}
	re.WriteString("^(")
	for n, it := range lex.symbols {
		if n > 0 {
			re.WriteString("|")
		}
		re.WriteString(regexp.QuoteMeta(it))
	}
	re.WriteString(")")
	lex.symbol_re = regexp.MustCompile(re.String())
}

func (lex *Lexer) MatchSymbol(span *Span) (ok bool, out Token) {
	if len(lex.symbols) == 0 {
		return
	}

	text := span.Text()
	size := len(lex.symbol_re.FindString(text))
	if size > 0 {
		out = NewToken(TokenSymbol, span, size)
		return true, out
	}

	return
}

func (lex *Lexer) MatchComment(span *Span) (ok bool, out Token) {
	if lex.Comment == "" || !strings.HasPrefix(span.Text(), lex.Comment) {
		return
	}

	text := span.Text()
	size := strings.IndexAny(text, "\r\n")
	if size < 0 {
		size = len(text)
	}
	return true, NewToken(TokenComment, span, size)
}

func IsSpace(chr rune) bool {
	if IsLineBreak(chr) {
		return false
	}
	return unicode.IsSpace(chr) || chr == ','
}

func IsLineBreak(chr rune) bool {
	return chr == '\r' || chr == '\n'
}

type IdPos int

const (
	ID_STA IdPos = iota
	ID_MID
	ID_END
)

func IsIdent(chr rune, pos IdPos) bool {
	if '0' <= chr && chr <= '9' {
		return pos > ID_STA
	}

	if pos > ID_STA && (chr == '!' || chr == '?' || chr == '-') {
		return true
	}

	if chr == '_' || ('a' <= chr && chr <= 'z') || ('A' <= chr && chr <= 'Z') {
		return true
	}

	return unicode.IsLetter(chr)
}

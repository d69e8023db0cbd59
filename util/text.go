package util

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reLineBreak = regexp.MustCompile(`\r\n?|\n`)
	reLeadTabs  = regexp.MustCompile(`^[\t]+`)
)

// Splits on any line break: `\n`, `\r\n` or a lone `\r`.
func Lines(input string) []string {
	return reLineBreak.Split(input, -1)
}

// Removes trailing spaces from each line and drops trailing blank lines.
// Modifies the slice in place.
func TrimLines(lines []string) []string {
	for i, it := range lines {
		lines[i] = strings.TrimRightFunc(it, unicode.IsSpace)
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// Normalizes an indented text block, usually a raw string literal in a
// test. Leading blank lines are skipped, tabs used as indentation count as
// four spaces, and the indentation of the first line is removed from all.
func Text(input string) string {
	var out []string
	var prefix string
	for _, it := range TrimLines(Lines(input)) {
		it = reLeadTabs.ReplaceAllStringFunc(it, func(tabs string) string {
			return strings.Repeat("    ", len(tabs))
		})
		if len(out) == 0 {
			if it == "" {
				continue
			}
			prefix = it[:len(it)-len(strings.TrimLeftFunc(it, unicode.IsSpace))]
		}
		out = append(out, strings.TrimPrefix(it, prefix))
	}
	return strings.Join(out, "\n")
}

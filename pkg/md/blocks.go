// blocks.go implements the line predicates used to classify block starters.
package md

import (
	"strings"
)

// ListMarker describes a list item marker found at the start of a line.
type ListMarker struct {
	Indent  int    // columns of leading whitespace
	Ordered bool   // true for "<n>." markers
	Number  int    // set when Ordered
	Bullet  byte   // '-', '*' or '+' when unordered
	Content string // text after the marker, trimmed
}

// ParseHeading reports whether trimmed is an ATX heading and returns its
// level and text. A heading needs 1-6 '#' followed by a space or nothing.
func ParseHeading(trimmed string) (int, string, bool) {
	if !strings.HasPrefix(trimmed, "#") {
		return 0, "", false
	}
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level > 6 {
		return 0, "", false
	}
	if level < len(trimmed) && trimmed[level] != ' ' && trimmed[level] != '\t' {
		return 0, "", false
	}
	return level, strings.TrimSpace(trimmed[level:]), true
}

// IsFence reports whether trimmed opens or closes a fenced code block.
func IsFence(trimmed string) bool {
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

// fenceInfo splits a fence line into its marker and info string.
func fenceInfo(trimmed string) (marker string, info string) {
	ch := trimmed[0]
	n := 0
	for n < len(trimmed) && trimmed[n] == ch {
		n++
	}
	return trimmed[:n], strings.TrimSpace(trimmed[n:])
}

// IsBlockquote reports whether trimmed starts a block quote.
func IsBlockquote(trimmed string) bool {
	return strings.HasPrefix(trimmed, ">")
}

// IsHorizontalRule reports whether trimmed is a thematic break: three or more
// of the same '-', '*' or '_' character, optionally separated by spaces.
func IsHorizontalRule(trimmed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	ch := trimmed[0]
	if ch != '-' && ch != '*' && ch != '_' {
		return false
	}
	count := 0
	for i := 0; i < len(trimmed); i++ {
		switch trimmed[i] {
		case ch:
			count++
		case ' ', '\t':
		default:
			return false
		}
	}
	return count >= 3
}

// ParseListMarker reports whether line begins with a list marker. Unlike the
// other predicates it takes the untrimmed line since the indent matters.
func ParseListMarker(line string) (ListMarker, bool) {
	indent := indentOf(line)
	text := strings.TrimLeft(line, " \t")
	if text == "" {
		return ListMarker{}, false
	}

	switch text[0] {
	case '-', '*', '+':
		if len(text) > 1 && text[1] != ' ' && text[1] != '\t' {
			return ListMarker{}, false
		}
		return ListMarker{
			Indent:  indent,
			Bullet:  text[0],
			Content: strings.TrimSpace(text[1:]),
		}, true
	}

	i := 0
	num := 0
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		num = num*10 + int(text[i]-'0')
		i++
	}
	if i == 0 || i > 9 || i >= len(text) || text[i] != '.' {
		return ListMarker{}, false
	}
	if i+1 < len(text) && text[i+1] != ' ' && text[i+1] != '\t' {
		return ListMarker{}, false
	}
	return ListMarker{
		Indent:  indent,
		Ordered: true,
		Number:  num,
		Content: strings.TrimSpace(text[i+1:]),
	}, true
}

// IsBlockStarter reports whether trimmed unconditionally begins a
// non-paragraph block. '{' and '[' are deliberately not starters: template
// syntax like {{x}} and markdown links are far more common in prose.
func IsBlockStarter(trimmed string) bool {
	if trimmed == "" {
		return false
	}
	if _, _, ok := ParseHeading(trimmed); ok {
		return true
	}
	if IsFence(trimmed) || IsBlockquote(trimmed) || IsHorizontalRule(trimmed) {
		return true
	}
	_, ok := ParseListMarker(trimmed)
	return ok
}

// indentOf counts leading whitespace columns, a tab counting as four.
func indentOf(line string) int {
	n := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			n++
		case '\t':
			n += 4
		default:
			return n
		}
	}
	return n
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

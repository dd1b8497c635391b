// serialize.go writes tokens back out as markdown text.
package md

import (
	"strconv"
	"strings"
)

// Serialize renders tokens as markdown, one blank line between blocks.
// Tokenizing the output yields the same token sequence.
func Serialize(tokens []Token) string {
	blocks := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		blocks = append(blocks, serializeToken(tok))
	}
	return strings.Join(blocks, "\n\n")
}

func serializeToken(tok Token) string {
	switch tok.Type {
	case TokenHeading:
		s := strings.Repeat("#", tok.Level)
		if tok.Content != "" {
			s += " " + tok.Content
		}
		return s
	case TokenList:
		var sb strings.Builder
		writeList(&sb, tok, 0)
		return strings.TrimRight(sb.String(), "\n")
	case TokenCodeBlock:
		if tok.Detected && redetects(tok.Content) {
			return tok.Content
		}
		return fence(tok.Content, tok.Lang())
	case TokenBlockquote:
		lines := strings.Split(tok.Content, "\n")
		for i, l := range lines {
			if l == "" {
				lines[i] = ">"
			} else {
				lines[i] = "> " + l
			}
		}
		return strings.Join(lines, "\n")
	case TokenRule:
		return "---"
	default:
		return tok.Content
	}
}

func writeList(sb *strings.Builder, tok Token, indent int) {
	pad := strings.Repeat(" ", indent)
	for i, item := range tok.Items {
		marker := "-"
		if tok.Ordered {
			marker = strconv.Itoa(tok.StartNumber()+i) + "."
		}
		width := len(marker) + 1
		lines := strings.Split(item.Content, "\n")
		sb.WriteString(pad + marker)
		if lines[0] != "" {
			sb.WriteString(" " + lines[0])
		}
		sb.WriteByte('\n')
		for _, l := range lines[1:] {
			sb.WriteString(pad + strings.Repeat(" ", width) + l + "\n")
		}
		for _, child := range item.Children {
			writeList(sb, child, indent+width)
		}
	}
}

// fence wraps content in a code fence long enough not to collide with any
// backtick run inside it.
func fence(content, language string) string {
	marker := "```"
	for strings.Contains(content, marker) {
		marker += "`"
	}
	if content == "" {
		return marker + language + "\n" + marker
	}
	return marker + language + "\n" + content + "\n" + marker
}

// redetects reports whether content, written out bare, is detected again as
// one structured-data block. Converted data can fall short of that, e.g.
// single-line YAML.
func redetects(content string) bool {
	lines := SplitLines(content)
	_, n, ok := DetectStructuredData(lines, 0)
	return ok && n == len(lines)
}

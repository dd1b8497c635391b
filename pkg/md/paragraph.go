// paragraph.go collects plain text lines into paragraph tokens.
package md

import (
	"strings"
)

// ParseParagraph greedily collects non-blank lines from start until a blank
// line or a block starter. A line opening with '{' or '[' ends the paragraph
// only if it really begins a JSON or YAML block; otherwise it is ordinary
// text. ok is false when no line was collected, meaning another parser
// should be tried at start.
func ParseParagraph(lines []string, start int) (tok Token, end int, ok bool) {
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || IsBlockStarter(trimmed) {
			break
		}
		if trimmed[0] == '{' || trimmed[0] == '[' {
			if _, _, found := DetectStructuredData(lines, i); found {
				break
			}
		}
		i++
	}
	if i == start {
		return Token{}, start, false
	}
	return Token{
		Type:    TokenParagraph,
		Content: strings.Join(lines[start:i], "\n"),
	}, i, true
}

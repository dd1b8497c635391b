// structured.go detects JSON and YAML pasted into prose without a code fence.
package md

import (
	"encoding/json"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlStartPattern matches "key: value" and "- key: value" lines.
var yamlStartPattern = regexp.MustCompile(`^\s*(?:-\s+)?[\w][\w .-]*:\s+\S`)

// minYAMLLines is the shortest run accepted as YAML. A single "Note: text"
// line is far more likely to be prose.
const minYAMLLines = 2

// DetectStructuredData checks whether the lines starting at index form an
// unfenced JSON or YAML block. It returns a code_block token and the number
// of lines it consumed. JSON is tried first; the two paths never both match
// because JSON requires a leading '{' or '['.
func DetectStructuredData(lines []string, index int) (Token, int, bool) {
	if index < 0 || index >= len(lines) {
		return Token{}, 0, false
	}
	if tok, n, ok := detectJSON(lines, index); ok {
		return tok, n, true
	}
	if tok, n, ok := detectYAML(lines, index); ok {
		return tok, n, true
	}
	return Token{}, 0, false
}

func detectJSON(lines []string, index int) (Token, int, bool) {
	first := strings.TrimSpace(lines[index])
	if !strings.HasPrefix(first, "{") && !strings.HasPrefix(first, "[") {
		return Token{}, 0, false
	}

	var scan bracketScanner
	end := -1
	for i := index; i < len(lines); i++ {
		if isBlank(lines[i]) {
			// a blank line before the brackets balance means the block is incomplete
			return Token{}, 0, false
		}
		scan.feed(lines[i])
		if scan.depth < 0 {
			return Token{}, 0, false
		}
		if scan.depth == 0 {
			end = i + 1
			break
		}
	}
	if end < 0 {
		return Token{}, 0, false
	}

	content := strings.Join(lines[index:end], "\n")
	if !isJSON(content) {
		return Token{}, 0, false
	}
	return newCodeBlock(LanguageJSON, content, true), end - index, true
}

// bracketScanner tracks bracket depth across lines, ignoring brackets that
// appear inside double-quoted strings.
type bracketScanner struct {
	depth    int
	inString bool
	escaped  bool
}

func (s *bracketScanner) feed(line string) {
	for i := 0; i < len(line); i++ {
		c := line[i]
		if s.escaped {
			s.escaped = false
			continue
		}
		if s.inString {
			switch c {
			case '\\':
				s.escaped = true
			case '"':
				s.inString = false
			}
			continue
		}
		switch c {
		case '"':
			s.inString = true
		case '{', '[':
			s.depth++
		case '}', ']':
			s.depth--
		}
	}
}

// isJSON reports whether text is a complete JSON document. This is what
// rejects markdown links like [text](url), whose brackets balance.
func isJSON(text string) bool {
	return json.Valid([]byte(text))
}

func detectYAML(lines []string, index int) (Token, int, bool) {
	if !yamlStartPattern.MatchString(lines[index]) {
		return Token{}, 0, false
	}

	end := index
	for end < len(lines) && !isBlank(lines[end]) {
		end++
	}
	if end-index < minYAMLLines {
		return Token{}, 0, false
	}

	content := strings.Join(lines[index:end], "\n")
	if !isStructuredYAML(content) {
		return Token{}, 0, false
	}
	return newCodeBlock(LanguageYAML, content, true), end - index, true
}

// isStructuredYAML reports whether text parses as a YAML mapping or
// sequence. Scalars parse fine but are just prose.
func isStructuredYAML(text string) bool {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return false
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return false
	}
	switch doc.Content[0].Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		return true
	default:
		return false
	}
}

// tokenizer.go drives the block matchers and parsers over a line sequence.
package md

import (
	"strings"
)

// Tokenize splits text into lines and returns its block tokens.
func Tokenize(text string) []Token {
	return TokenizeWithOptions(text, TokenizeOptions{}).Tokens
}

// TokenizeLines returns the block tokens of an already split line sequence.
func TokenizeLines(lines []string) []Token {
	return tokenizeLines(lines, TokenizeOptions{}).Tokens
}

// TokenizeWithOptions tokenizes text and reports warnings alongside the
// tokens. It is a pure function of its input and safe for concurrent use.
func TokenizeWithOptions(text string, opts TokenizeOptions) *TokenizeResult {
	return tokenizeLines(SplitLines(text), opts)
}

// SplitLines splits text on line breaks, accepting both \n and \r\n.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

func tokenizeLines(lines []string, opts TokenizeOptions) *TokenizeResult {
	result := &TokenizeResult{}
	if opts.PreferredFormat != "" && !ValidFormat(opts.PreferredFormat) {
		result.AddWarning("unknown preferred format %q, keeping detected formats", opts.PreferredFormat)
		opts.PreferredFormat = ""
	}

	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			i++
			continue
		}

		if IsFence(trimmed) {
			tok, end := parseFencedBlock(lines, i, result)
			result.Tokens = append(result.Tokens, tok)
			i = end
			continue
		}

		if level, content, ok := ParseHeading(trimmed); ok {
			result.Tokens = append(result.Tokens, Token{Type: TokenHeading, Level: level, Content: content})
			i++
			continue
		}

		if IsHorizontalRule(trimmed) {
			result.Tokens = append(result.Tokens, Token{Type: TokenRule})
			i++
			continue
		}

		if IsBlockquote(trimmed) {
			tok, end := parseBlockquote(lines, i)
			result.Tokens = append(result.Tokens, tok)
			i = end
			continue
		}

		// Lists win over YAML sequences: "- key: value" lines stay list items.
		if _, ok := ParseListMarker(line); ok {
			list := ParseList(lines, i, indentOf(line))
			if len(list.Tokens) > 0 {
				result.Tokens = append(result.Tokens, list.Tokens...)
				i = list.End
				continue
			}
		}

		if tok, n, ok := DetectStructuredData(lines, i); ok {
			result.Tokens = append(result.Tokens, applyPreferredFormat(tok, opts.PreferredFormat, result))
			i += n
			continue
		}

		if tok, end, ok := ParseParagraph(lines, i); ok {
			result.Tokens = append(result.Tokens, tok)
			i = end
			continue
		}

		// Nothing claimed the line; keep it as text so the loop always advances.
		result.Tokens = append(result.Tokens, Token{Type: TokenParagraph, Content: line})
		i++
	}

	return result
}

// parseFencedBlock reads a ``` or ~~~ block starting at start. The closing
// fence must use the same character at least as many times as the opener.
// An unclosed fence runs to the end of the input.
func parseFencedBlock(lines []string, start int, result *TokenizeResult) (Token, int) {
	marker, info := fenceInfo(strings.TrimSpace(lines[start]))
	language := info
	if idx := strings.IndexAny(language, " \t"); idx >= 0 {
		language = language[:idx]
	}

	var body []string
	for i := start + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if isClosingFence(trimmed, marker) {
			return newCodeBlock(language, strings.Join(body, "\n"), false), i + 1
		}
		body = append(body, lines[i])
	}

	result.AddWarning("unclosed code fence opened on line %d", start+1)
	return newCodeBlock(language, strings.Join(body, "\n"), false), len(lines)
}

func isClosingFence(trimmed, marker string) bool {
	if len(trimmed) < len(marker) {
		return false
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] != marker[0] {
			return false
		}
	}
	return true
}

// parseBlockquote joins consecutive '>' lines, dropping the marker and one
// following space.
func parseBlockquote(lines []string, start int) (Token, int) {
	var body []string
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if !IsBlockquote(trimmed) {
			break
		}
		text := strings.TrimPrefix(trimmed, ">")
		text = strings.TrimPrefix(text, " ")
		body = append(body, text)
		i++
	}
	return Token{Type: TokenBlockquote, Content: strings.Join(body, "\n")}, i
}

// applyPreferredFormat rewrites a detected structured-data block into the
// preferred format. Conversion failures keep the block as detected.
func applyPreferredFormat(tok Token, preferred string, result *TokenizeResult) Token {
	if preferred == "" || !tok.Detected || tok.Lang() == preferred {
		return tok
	}
	converted, err := ConvertStructured(tok.Content, tok.Lang(), preferred)
	if err != nil {
		result.AddWarning("could not convert %s block to %s: %v", tok.Lang(), preferred, err)
		return tok
	}
	return newCodeBlock(preferred, converted, true)
}

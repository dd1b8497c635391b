package md

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// editorChromePattern matches elements an editor surface adds around content
// that have no markdown meaning (caret placeholders, zero-width spans).
var editorChromePattern = regexp.MustCompile(`<span[^>]*data-caret[^>]*>.*?</span>|\x{200B}`)

// FromHTML converts an HTML fragment to markdown suitable for Tokenize.
func FromHTML(html string) (string, error) {
	if html == "" {
		return "", nil
	}

	html = editorChromePattern.ReplaceAllString(html, "")

	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(markdown), nil
}

// TokenizeHTML converts html to markdown and tokenizes the result.
func TokenizeHTML(html string, opts TokenizeOptions) (*TokenizeResult, error) {
	markdown, err := FromHTML(html)
	if err != nil {
		return nil, err
	}
	return TokenizeWithOptions(markdown, opts), nil
}

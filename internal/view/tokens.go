package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/open-cli-collective/mdblock/pkg/md"
)

const previewLen = 40

// RenderTokens renders a token stream: the raw token JSON in json format,
// otherwise one row per top-level block.
func (r *Renderer) RenderTokens(tokens []md.Token) error {
	if r.format == FormatJSON {
		if tokens == nil {
			tokens = []md.Token{}
		}
		return r.RenderJSON(tokens)
	}

	headers := []string{"#", "TYPE", "DETAIL", "SIZE", "CONTENT"}
	rows := make([][]string, 0, len(tokens))
	for i, tok := range tokens {
		rows = append(rows, []string{
			strconv.Itoa(i),
			string(tok.Type),
			TokenDetail(tok),
			humanize.Bytes(uint64(len(tokenText(tok)))),
			Truncate(Preview(tokenText(tok)), previewLen),
		})
	}
	r.RenderTable(headers, rows)
	return nil
}

// RenderWarnings prints tokenizer warnings in red.
func (r *Renderer) RenderWarnings(warnings []string) {
	for _, w := range warnings {
		r.Error(w)
	}
}

// TokenDetail summarizes the type-specific fields of tok.
func TokenDetail(tok md.Token) string {
	switch tok.Type {
	case md.TokenHeading:
		return fmt.Sprintf("h%d", tok.Level)
	case md.TokenList:
		kind := "unordered"
		if tok.Ordered {
			kind = "ordered from " + strconv.Itoa(tok.StartNumber())
		}
		return fmt.Sprintf("%s, %s", kind, humanize.Comma(int64(countItems(tok))))
	case md.TokenCodeBlock:
		detail := tok.Lang()
		if detail == "" {
			detail = "plain"
		}
		if tok.Detected {
			detail += " (detected)"
		}
		return detail
	}
	return ""
}

// Preview collapses text onto one line.
func Preview(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func tokenText(tok md.Token) string {
	if tok.Type != md.TokenList {
		return tok.Content
	}
	var parts []string
	for _, item := range tok.Items {
		parts = append(parts, item.Content)
		for _, child := range item.Children {
			parts = append(parts, tokenText(child))
		}
	}
	return strings.Join(parts, "\n")
}

// countItems counts list items at every nesting depth.
func countItems(tok md.Token) int {
	n := 0
	for _, item := range tok.Items {
		n++
		for _, child := range item.Children {
			n += countItems(child)
		}
	}
	return n
}

// list.go parses indentation-nested ordered and unordered lists.
package md

import (
	"strings"
)

// ListResult is the output of ParseList. End is the index of the first line
// not consumed. An empty Tokens slice with End == start means there is no
// list at start, which callers use to try other parsers.
type ListResult struct {
	Tokens []Token
	End    int
}

// ParseList parses the list starting at lines[start]. Items are lines at
// baseIndent or deeper carrying a list marker; a line indented deeper than
// the current item opens a nested list parsed recursively with that line's
// indent as its base.
//
// A single blank line never ends a list. Parsing stops, without consuming the
// offending line, on indent regression below baseIndent, on a non-marker line
// at the list's own level, or on a switch between ordered and unordered
// markers after two or more blank lines. A switch without that gap starts a
// new list token in the same result.
func ParseList(lines []string, start, baseIndent int) ListResult {
	res := ListResult{End: start}
	var cur *Token
	blankRun := 0

	i := start
	for i < len(lines) {
		line := lines[i]
		if isBlank(line) {
			blankRun++
			i++
			continue
		}
		if indentOf(line) < baseIndent || IsHorizontalRule(strings.TrimSpace(line)) {
			break
		}
		m, ok := ParseListMarker(line)
		if !ok {
			break
		}

		if cur != nil && m.Ordered != cur.Ordered {
			if blankRun >= 2 {
				break
			}
			res.Tokens = append(res.Tokens, *cur)
			cur = nil
		}
		if cur == nil {
			cur = &Token{Type: TokenList, Ordered: m.Ordered}
			if m.Ordered {
				cur.Start = intPtr(m.Number)
			}
		}

		item := ListItem{Content: m.Content}
		i++
		res.End = i
		blankRun = 0
		i, res.End = parseItemBody(lines, i, m.Indent, &item, res.End)
		cur.Items = append(cur.Items, item)
	}

	if cur != nil {
		res.Tokens = append(res.Tokens, *cur)
	}
	return res
}

// parseItemBody consumes what belongs to the item just parsed: lazy
// continuation lines directly below it and nested lists indented deeper than
// itemIndent. It returns the next cursor and the updated end index.
func parseItemBody(lines []string, i, itemIndent int, item *ListItem, end int) (int, int) {
	for i < len(lines) {
		j := i
		for j < len(lines) && isBlank(lines[j]) {
			j++
		}
		if j >= len(lines) {
			break
		}
		next := lines[j]
		childIndent := indentOf(next)
		if childIndent <= itemIndent {
			break
		}

		trimmed := strings.TrimSpace(next)
		if _, isMarker := ParseListMarker(next); isMarker && !IsHorizontalRule(trimmed) {
			child := ParseList(lines, j, childIndent)
			if len(child.Tokens) == 0 {
				break
			}
			item.Children = append(item.Children, child.Tokens...)
			i = child.End
			end = child.End
			continue
		}

		// deeper prose after a blank line is left for the tokenizer
		if j > i {
			break
		}
		item.Content += "\n" + trimmed
		i = j + 1
		end = i
	}
	return i, end
}

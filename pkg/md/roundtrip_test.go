package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize_Blocks(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   string
	}{
		{
			name:   "heading",
			tokens: []Token{{Type: TokenHeading, Level: 3, Content: "Three"}},
			want:   "### Three",
		},
		{
			name:   "fenced code",
			tokens: []Token{newCodeBlock("go", "x := 1", false)},
			want:   "```go\nx := 1\n```",
		},
		{
			name:   "fence longer than content backticks",
			tokens: []Token{newCodeBlock("md", "```\ninner\n```", false)},
			want:   "````md\n```\ninner\n```\n````",
		},
		{
			name:   "detected code stays unfenced",
			tokens: []Token{newCodeBlock(LanguageYAML, "a: 1\nb: 2", true)},
			want:   "a: 1\nb: 2",
		},
		{
			name:   "single line yaml gets a fence",
			tokens: []Token{newCodeBlock(LanguageYAML, "a: 1", true)},
			want:   "```yaml\na: 1\n```",
		},
		{
			name:   "blockquote",
			tokens: []Token{{Type: TokenBlockquote, Content: "one\n\ntwo"}},
			want:   "> one\n>\n> two",
		},
		{
			name: "ordered list numbering from start",
			tokens: []Token{{
				Type:    TokenList,
				Ordered: true,
				Start:   intPtr(9),
				Items:   []ListItem{{Content: "nine"}, {Content: "ten"}},
			}},
			want: "9. nine\n10. ten",
		},
		{
			name: "nested list with continuation",
			tokens: []Token{{
				Type: TokenList,
				Items: []ListItem{
					{Content: "a\nmore", Children: []Token{{
						Type:    TokenList,
						Ordered: true,
						Start:   intPtr(1),
						Items:   []ListItem{{Content: "b"}},
					}}},
				},
			}},
			want: "- a\n  more\n  1. b",
		},
		{
			name:   "blocks separated by blank lines",
			tokens: []Token{{Type: TokenParagraph, Content: "p"}, {Type: TokenRule}, {Type: TokenParagraph, Content: "q"}},
			want:   "p\n\n---\n\nq",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Serialize(tt.tokens))
		})
	}
}

func TestRoundtrip_ListContinuation(t *testing.T) {
	input := "- a\n  more\n  1. b\n- c"

	tokens := Tokenize(input)
	require.Len(t, tokens, 1)
	assert.Equal(t, input, Serialize(tokens))
}

func TestRoundtrip_PreferredFormatStable(t *testing.T) {
	opts := TokenizeOptions{PreferredFormat: LanguageJSON}
	first := TokenizeWithOptions("intro\n\nname: John\nage: 30", opts).Tokens
	require.Len(t, first, 2)
	assert.Equal(t, LanguageJSON, first[1].Lang())

	second := TokenizeWithOptions(Serialize(first), opts).Tokens
	assert.Equal(t, first, second)
}

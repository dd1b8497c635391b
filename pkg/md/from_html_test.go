package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "basic paragraph",
			input:    "<p>Hello world</p>",
			expected: "Hello world",
		},
		{
			name:     "multiple paragraphs",
			input:    "<p>First paragraph.</p><p>Second paragraph.</p>",
			expected: "First paragraph.\n\nSecond paragraph.",
		},
		{
			name:     "h2 header",
			input:    "<h2>Subtitle</h2>",
			expected: "## Subtitle",
		},
		{
			name:     "unordered list",
			input:    "<ul><li>Item 1</li><li>Item 2</li></ul>",
			expected: "- Item 1\n- Item 2",
		},
		{
			name:     "ordered list",
			input:    "<ol><li>First</li><li>Second</li></ol>",
			expected: "1. First\n2. Second",
		},
		{
			name:     "code block",
			input:    "<pre><code>code here</code></pre>",
			expected: "```\ncode here\n```",
		},
		{
			name:     "blockquote",
			input:    "<blockquote><p>This is a quote</p></blockquote>",
			expected: "> This is a quote",
		},
		{
			name:     "caret placeholder stripped",
			input:    `<p>Hello<span data-caret="true">|</span> world</p>`,
			expected: "Hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := FromHTML(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTokenizeHTML(t *testing.T) {
	result, err := TokenizeHTML("<h1>Title</h1><ul><li>Item 1</li><li>Item 2</li></ul><pre><code>code here</code></pre>", TokenizeOptions{})
	require.NoError(t, err)
	require.Len(t, result.Tokens, 3)
	assert.Equal(t, TokenHeading, result.Tokens[0].Type)
	assert.Equal(t, TokenList, result.Tokens[1].Type)
	assert.Len(t, result.Tokens[1].Items, 2)
	assert.Equal(t, TokenCodeBlock, result.Tokens[2].Type)
	assert.Equal(t, "code here", result.Tokens[2].Content)
}

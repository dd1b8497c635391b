package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_EmptyInput(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("\n\n  \n"))
}

func TestTokenize_ParagraphStructuredDataBoundary(t *testing.T) {
	lines := []string{
		"Here is some data:",
		"",
		`{"name": "John", "age": 30}`,
		"",
		"More text after.",
	}

	tokens := TokenizeLines(lines)
	require.Len(t, tokens, 3)
	assert.Equal(t, TokenParagraph, tokens[0].Type)
	assert.Equal(t, "Here is some data:", tokens[0].Content)
	assert.Equal(t, TokenCodeBlock, tokens[1].Type)
	assert.Equal(t, LanguageJSON, tokens[1].Lang())
	assert.Equal(t, lines[2], tokens[1].Content)
	assert.Equal(t, TokenParagraph, tokens[2].Type)
	assert.Equal(t, "More text after.", tokens[2].Content)
}

func TestTokenize_StructuredDataDirectlyAfterProse(t *testing.T) {
	tokens := Tokenize("The response was\n{\"ok\": true}\nand that was it")
	require.Len(t, tokens, 3)
	assert.Equal(t, TokenParagraph, tokens[0].Type)
	assert.Equal(t, TokenCodeBlock, tokens[1].Type)
	assert.Equal(t, TokenParagraph, tokens[2].Type)
	assert.Equal(t, "and that was it", tokens[2].Content)
}

func TestTokenize_MarkdownLinkIsParagraph(t *testing.T) {
	tokens := Tokenize("[Click here](https://example.com)")
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenParagraph, tokens[0].Type)
}

func TestTokenize_IncompleteJSONIsParagraph(t *testing.T) {
	tokens := TokenizeLines([]string{`{"name": "John"`, ""})
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenParagraph, tokens[0].Type)
	assert.Equal(t, `{"name": "John"`, tokens[0].Content)
}

func TestTokenize_YAML(t *testing.T) {
	t.Run("single line is prose", func(t *testing.T) {
		tokens := Tokenize("name: John")
		require.Len(t, tokens, 1)
		assert.Equal(t, TokenParagraph, tokens[0].Type)
	})

	t.Run("two lines are yaml", func(t *testing.T) {
		tokens := TokenizeLines([]string{"name: John", "age: 30"})
		require.Len(t, tokens, 1)
		assert.Equal(t, TokenCodeBlock, tokens[0].Type)
		assert.Equal(t, LanguageYAML, tokens[0].Lang())
		assert.Equal(t, "name: John\nage: 30", tokens[0].Content)
	})
}

func TestTokenize_AllBlockKinds(t *testing.T) {
	input := `# Title

Intro paragraph
spanning two lines.

- one
  - one.a
- two

3. third
4. fourth

> quoted
> text

---

` + "```go\nfunc main() {}\n\n// done\n```" + `

## Closing`

	tokens := Tokenize(input)
	require.Len(t, tokens, 8)

	assert.Equal(t, Token{Type: TokenHeading, Level: 1, Content: "Title"}, tokens[0])
	assert.Equal(t, "Intro paragraph\nspanning two lines.", tokens[1].Content)

	assert.Equal(t, TokenList, tokens[2].Type)
	assert.Len(t, tokens[2].Items, 2)
	assert.Len(t, tokens[2].Items[0].Children, 1)

	assert.True(t, tokens[3].Ordered)
	assert.Equal(t, 3, *tokens[3].Start)

	assert.Equal(t, Token{Type: TokenBlockquote, Content: "quoted\ntext"}, tokens[4])
	assert.Equal(t, TokenRule, tokens[5].Type)

	assert.Equal(t, TokenCodeBlock, tokens[6].Type)
	assert.Equal(t, "go", tokens[6].Lang())
	assert.False(t, tokens[6].Detected)
	assert.Equal(t, "func main() {}\n\n// done", tokens[6].Content)

	assert.Equal(t, 2, tokens[7].Level)
}

func TestTokenize_FencedBlocks(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantLang    string
		wantContent string
	}{
		{"no language", "```\nplain\n```", "", "plain"},
		{"tilde fence", "~~~python\nprint(1)\n~~~", "python", "print(1)"},
		{"info string", "```js title=x\nlet a\n```", "js", "let a"},
		{"longer closer", "```\nx\n`````", "", "x"},
		{"inner shorter fence", "````md\n```\ninner\n```\n````", "md", "```\ninner\n```"},
		{"json inside fence stays fenced", "```\n{\"a\": 1}\n```", "", `{"a": 1}`},
		{"empty", "```sh\n```", "sh", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			require.Len(t, tokens, 1)
			assert.Equal(t, TokenCodeBlock, tokens[0].Type)
			require.NotNil(t, tokens[0].Language)
			assert.Equal(t, tt.wantLang, tokens[0].Lang())
			assert.Equal(t, tt.wantContent, tokens[0].Content)
			assert.False(t, tokens[0].Detected)
		})
	}
}

func TestTokenize_UnclosedFenceWarns(t *testing.T) {
	result := TokenizeWithOptions("```go\nfmt.Println()\n\nmore", TokenizeOptions{})
	require.Len(t, result.Tokens, 1)
	assert.Equal(t, "fmt.Println()\n\nmore", result.Tokens[0].Content)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "unclosed code fence")
}

func TestTokenize_CRLF(t *testing.T) {
	tokens := Tokenize("# Title\r\n\r\nbody\r\n")
	require.Len(t, tokens, 2)
	assert.Equal(t, "Title", tokens[0].Content)
	assert.Equal(t, "body", tokens[1].Content)
}

func TestTokenize_PreferredFormat(t *testing.T) {
	input := `{"name": "John", "age": 30}`

	t.Run("converts detected json to yaml", func(t *testing.T) {
		result := TokenizeWithOptions(input, TokenizeOptions{PreferredFormat: LanguageYAML})
		require.Len(t, result.Tokens, 1)
		assert.Equal(t, LanguageYAML, result.Tokens[0].Lang())
		assert.Equal(t, "name: John\nage: 30", result.Tokens[0].Content)
		assert.True(t, result.Tokens[0].Detected)
	})

	t.Run("leaves fenced blocks alone", func(t *testing.T) {
		result := TokenizeWithOptions("```json\n"+input+"\n```", TokenizeOptions{PreferredFormat: LanguageYAML})
		require.Len(t, result.Tokens, 1)
		assert.Equal(t, LanguageJSON, result.Tokens[0].Lang())
		assert.Equal(t, input, result.Tokens[0].Content)
	})

	t.Run("unknown format warns and keeps detection", func(t *testing.T) {
		result := TokenizeWithOptions(input, TokenizeOptions{PreferredFormat: "toml"})
		require.Len(t, result.Tokens, 1)
		assert.Equal(t, LanguageJSON, result.Tokens[0].Lang())
		assert.NotEmpty(t, result.Warnings)
	})
}

func TestTokenize_PartitionsLines(t *testing.T) {
	input := "para\n- a\n- b\n{\"x\": [1,\n2]}\n> q\n# h"

	tokens := Tokenize(input)
	require.Len(t, tokens, 5)
	assert.Equal(t, TokenParagraph, tokens[0].Type)
	assert.Equal(t, TokenList, tokens[1].Type)
	assert.Equal(t, TokenCodeBlock, tokens[2].Type)
	assert.Equal(t, "{\"x\": [1,\n2]}", tokens[2].Content)
	assert.Equal(t, TokenBlockquote, tokens[3].Type)
	assert.Equal(t, TokenHeading, tokens[4].Type)
}

func TestTokenize_Idempotent(t *testing.T) {
	inputs := []string{
		"# Title\n\nSome text\n\n- a\n  - b\n  - c\n- d",
		"5. x\n6. y\n\n> quote\n>\n> more",
		"Here is some data:\n\n{\"name\": \"John\", \"age\": 30}\n\nMore text after.",
		"name: John\nage: 30\n\n---\n\n```go\nx := 1\n```",
		"- a\n- b\n1. c\n\n```\n```\n\n##",
	}

	for _, input := range inputs {
		first := Tokenize(input)
		second := Tokenize(Serialize(first))
		assert.Equal(t, first, second, input)
	}
}

func TestTokenize_DashedKeyValueIsList(t *testing.T) {
	lines := []string{"- name: John", "  age: 30", "- name: Jane", "  age: 31"}

	_, n, ok := DetectStructuredData(lines, 0)
	require.True(t, ok, "the lines alone are a YAML sequence")
	assert.Equal(t, 4, n)

	tokens := TokenizeLines(lines)
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenList, tokens[0].Type)
	assert.False(t, tokens[0].Ordered)
	require.Len(t, tokens[0].Items, 2)
	assert.Equal(t, "name: John\nage: 30", tokens[0].Items[0].Content)
	assert.Equal(t, "name: Jane\nage: 31", tokens[0].Items[1].Content)
}

package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHeading(t *testing.T) {
	tests := []struct {
		input     string
		wantLevel int
		wantText  string
		wantOK    bool
	}{
		{"# Title", 1, "Title", true},
		{"###### Six", 6, "Six", true},
		{"####### Seven", 0, "", false},
		{"#hashtag", 0, "", false},
		{"#", 1, "", true},
		{"## Spaced   ", 2, "Spaced", true},
		{"Title", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, text, ok := ParseHeading(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantText, text)
		})
	}
}

func TestParseListMarker(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantOK      bool
		wantOrdered bool
		wantNumber  int
		wantIndent  int
		wantContent string
	}{
		{"dash", "- item", true, false, 0, 0, "item"},
		{"star", "* item", true, false, 0, 0, "item"},
		{"plus", "+ item", true, false, 0, 0, "item"},
		{"indented", "    - deep", true, false, 0, 4, "deep"},
		{"tab indented", "\t- tab", true, false, 0, 4, "tab"},
		{"ordered", "12. twelve", true, true, 12, 0, "twelve"},
		{"empty item", "-", true, false, 0, 0, ""},
		{"no space after dash", "-item", false, false, 0, 0, ""},
		{"rule", "---", false, false, 0, 0, ""},
		{"number without dot", "12 apples", false, false, 0, 0, ""},
		{"decimal", "3.14 is pi", false, false, 0, 0, ""},
		{"paren marker", "1) one", false, false, 0, 0, ""},
		{"plain", "hello", false, false, 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := ParseListMarker(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantOrdered, m.Ordered)
			assert.Equal(t, tt.wantNumber, m.Number)
			assert.Equal(t, tt.wantIndent, m.Indent)
			assert.Equal(t, tt.wantContent, m.Content)
		})
	}
}

func TestIsHorizontalRule(t *testing.T) {
	assert.True(t, IsHorizontalRule("---"))
	assert.True(t, IsHorizontalRule("***"))
	assert.True(t, IsHorizontalRule("___"))
	assert.True(t, IsHorizontalRule("- - -"))
	assert.True(t, IsHorizontalRule("-----"))
	assert.False(t, IsHorizontalRule("--"))
	assert.False(t, IsHorizontalRule("-*-"))
	assert.False(t, IsHorizontalRule("--- text"))
}

func TestIsBlockStarter(t *testing.T) {
	starters := []string{"# h", "```go", "~~~", "> quote", "- item", "1. item", "---", "***", "___"}
	for _, s := range starters {
		assert.True(t, IsBlockStarter(s), s)
	}

	plain := []string{"", "text", "{\"a\": 1}", "[link](url)", "{{template}}", "#tag", "3.5 stars"}
	for _, s := range plain {
		assert.False(t, IsBlockStarter(s), s)
	}
}

func TestIndentOf(t *testing.T) {
	assert.Equal(t, 0, indentOf("a"))
	assert.Equal(t, 2, indentOf("  a"))
	assert.Equal(t, 6, indentOf("\t  a"))
	assert.Equal(t, 3, indentOf("   "))
}

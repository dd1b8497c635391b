// tokens.go defines the block token types produced by the tokenizer.
package md

// TokenType identifies the kind of block a Token describes.
type TokenType string

const (
	TokenHeading    TokenType = "heading"
	TokenParagraph  TokenType = "paragraph"
	TokenList       TokenType = "list"
	TokenCodeBlock  TokenType = "code_block"
	TokenBlockquote TokenType = "blockquote"
	TokenRule       TokenType = "hr"
)

// Structured-data languages assigned to unfenced code blocks.
const (
	LanguageJSON = "json"
	LanguageYAML = "yaml"
)

// Token is a single block-level element. Which fields are meaningful depends
// on Type; optional fields are pointers or nil slices so that "absent" and
// "empty" stay distinguishable once encoded.
type Token struct {
	Type     TokenType  `json:"type"`
	Level    int        `json:"level,omitempty"`    // heading: 1..6
	Content  string     `json:"content,omitempty"`  // heading, paragraph, code_block, blockquote
	Ordered  bool       `json:"ordered,omitempty"`  // list
	Start    *int       `json:"start,omitempty"`    // list, only when Ordered
	Items    []ListItem `json:"items,omitempty"`    // list
	Language *string    `json:"language,omitempty"` // code_block, may point at ""
	Detected bool       `json:"detected,omitempty"` // code_block found without a fence
}

// ListItem is one entry of a list token. Children only ever holds list
// tokens and is nil when the item has no nested list.
type ListItem struct {
	Content  string  `json:"content"`
	Children []Token `json:"children,omitempty"`
}

// HasChildren reports whether the item carries a nested list.
func (li ListItem) HasChildren() bool {
	return li.Children != nil
}

// Lang returns the code block language, or "" when unset.
func (t Token) Lang() string {
	if t.Language == nil {
		return ""
	}
	return *t.Language
}

// StartNumber returns the first number of an ordered list, or 1 when unset.
func (t Token) StartNumber() int {
	if t.Start == nil {
		return 1
	}
	return *t.Start
}

func newCodeBlock(language, content string, detected bool) Token {
	return Token{
		Type:     TokenCodeBlock,
		Content:  content,
		Language: &language,
		Detected: detected,
	}
}

func intPtr(n int) *int {
	return &n
}

// parser.go defines the result and option types shared by the tokenizer.
package md

import (
	"fmt"
	"log"
)

// TokenizeOptions configures TokenizeWithOptions.
type TokenizeOptions struct {
	// PreferredFormat rewrites auto-detected JSON/YAML blocks into this
	// format ("json" or "yaml"). Fenced blocks are never touched. Empty
	// means keep whatever was detected.
	PreferredFormat string
}

// TokenizeResult contains the token sequence and any warnings raised while
// producing it. Warnings never stop tokenization.
type TokenizeResult struct {
	Tokens   []Token
	Warnings []string
}

// AddWarning logs a warning and stores it in the result.
func (tr *TokenizeResult) AddWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	tr.Warnings = append(tr.Warnings, msg)
	log.Printf("WARN: "+format, args...)
}

// CodeBlocks returns the code_block tokens at the top level of the result.
func (tr *TokenizeResult) CodeBlocks() []Token {
	var blocks []Token
	for _, tok := range tr.Tokens {
		if tok.Type == TokenCodeBlock {
			blocks = append(blocks, tok)
		}
	}
	return blocks
}

// ValidFormat reports whether f names a structured-data format.
func ValidFormat(f string) bool {
	return f == LanguageJSON || f == LanguageYAML
}

// render.go renders block tokens to HTML.
package md

import (
	"bytes"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// DefaultTheme is the chroma style used when HTMLOptions.Theme is empty.
const DefaultTheme = "monokai"

// inlineParser renders the text inside a block. Block segmentation is ours;
// goldmark only sees one block's content at a time.
var inlineParser = goldmark.New(
	goldmark.WithExtensions(
		extension.Strikethrough,
		extension.Linkify,
	),
)

// HTMLOptions configures RenderHTML.
type HTMLOptions struct {
	Highlight bool   // syntax-highlight code blocks with chroma
	Theme     string // chroma style name
}

// RenderHTML renders tokens as an HTML fragment.
func RenderHTML(tokens []Token, opts HTMLOptions) (string, error) {
	var buf bytes.Buffer
	for _, tok := range tokens {
		if err := renderToken(&buf, tok, opts); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func renderToken(buf *bytes.Buffer, tok Token, opts HTMLOptions) error {
	switch tok.Type {
	case TokenHeading:
		inline, err := RenderInline(tok.Content)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "<h%d>%s</h%d>\n", tok.Level, inline, tok.Level)

	case TokenParagraph:
		inline, err := RenderInline(tok.Content)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "<p>%s</p>\n", inline)

	case TokenList:
		return renderList(buf, tok, opts)

	case TokenBlockquote:
		var inner bytes.Buffer
		if err := inlineParser.Convert([]byte(tok.Content), &inner); err != nil {
			return fmt.Errorf("failed to render blockquote: %w", err)
		}
		fmt.Fprintf(buf, "<blockquote>\n%s</blockquote>\n", inner.String())

	case TokenCodeBlock:
		return renderCodeBlock(buf, tok, opts)

	case TokenRule:
		buf.WriteString("<hr>\n")
	}
	return nil
}

func renderList(buf *bytes.Buffer, tok Token, opts HTMLOptions) error {
	tag := "ul"
	if tok.Ordered {
		tag = "ol"
	}
	if tok.Ordered && tok.StartNumber() != 1 {
		fmt.Fprintf(buf, "<ol start=\"%s\">\n", strconv.Itoa(tok.StartNumber()))
	} else {
		fmt.Fprintf(buf, "<%s>\n", tag)
	}
	for _, item := range tok.Items {
		inline, err := RenderInline(item.Content)
		if err != nil {
			return err
		}
		buf.WriteString("<li>" + inline)
		if item.HasChildren() {
			buf.WriteByte('\n')
			for _, child := range item.Children {
				if err := renderList(buf, child, opts); err != nil {
					return err
				}
			}
		}
		buf.WriteString("</li>\n")
	}
	fmt.Fprintf(buf, "</%s>\n", tag)
	return nil
}

func renderCodeBlock(buf *bytes.Buffer, tok Token, opts HTMLOptions) error {
	lang := tok.Lang()
	fmt.Fprintf(buf, "<div class=\"code-block\" data-language=\"%s\">", html.EscapeString(lang))
	if !opts.Highlight {
		class := ""
		if lang != "" {
			class = fmt.Sprintf(" class=\"language-%s\"", html.EscapeString(lang))
		}
		fmt.Fprintf(buf, "<pre><code%s>%s</code></pre>", class, html.EscapeString(tok.Content))
		buf.WriteString("</div>\n")
		return nil
	}

	if err := Highlight(buf, tok.Content, lang, opts.Theme); err != nil {
		return err
	}
	buf.WriteString("</div>\n")
	return nil
}

// Highlight writes content as chroma-highlighted HTML. Unknown languages are
// guessed from the content, then fall back to plain text.
func Highlight(buf *bytes.Buffer, content, language, theme string) error {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(content)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	if theme == "" {
		theme = DefaultTheme
	}
	style := styles.Get(theme)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return fmt.Errorf("failed to tokenise %s code: %w", language, err)
	}
	formatter := chromahtml.New(chromahtml.WithClasses(false))
	if err := formatter.Format(buf, style, iterator); err != nil {
		return fmt.Errorf("failed to highlight code: %w", err)
	}
	return nil
}

// ThemeExists reports whether chroma knows the named style.
func ThemeExists(theme string) bool {
	_, ok := styles.Registry[theme]
	return ok
}

// ThemeNames lists the chroma styles, sorted.
func ThemeNames() []string {
	return styles.Names()
}

// RenderInline renders the inline markup of a single block's text, without
// the paragraph wrapper goldmark adds.
func RenderInline(text string) (string, error) {
	if text == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := inlineParser.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("failed to render inline content: %w", err)
	}
	out := strings.TrimSuffix(buf.String(), "\n")
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out, nil
}

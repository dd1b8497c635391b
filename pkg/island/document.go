package island

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const islandSelector = "[" + AttrID + "]"

// Document is an HTML editing surface implementing Tree. Structural edits
// made through it are recorded as Mutations and handed out by
// TakeMutations, standing in for a browser's mutation observer.
type Document struct {
	doc     *goquery.Document
	body    *html.Node
	elems   map[*html.Node]*Element
	pending Mutation
	caret   *Element
	offset  int
}

// Element is a node of a Document. A Document hands out one Element per
// underlying node, so Elements compare equal with ==.
type Element struct {
	doc  *Document
	node *html.Node
}

// ParseDocument parses an HTML fragment or page into a Document.
func ParseDocument(src string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	body := doc.Find("body")
	if body.Length() == 0 {
		return nil, fmt.Errorf("parsing document: no body element")
	}
	return &Document{
		doc:   doc,
		body:  body.Nodes[0],
		elems: make(map[*html.Node]*Element),
	}, nil
}

func (d *Document) wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	if e, ok := d.elems[n]; ok {
		return e
	}
	e := &Element{doc: d, node: n}
	d.elems[n] = e
	return e
}

// Root returns the body element.
func (d *Document) Root() *Element {
	return d.wrap(d.body)
}

// Blocks returns the top-level elements of the body in order.
func (d *Document) Blocks() []*Element {
	var blocks []*Element
	d.Root().selection().Children().Each(func(_ int, s *goquery.Selection) {
		blocks = append(blocks, d.wrap(s.Nodes[0]))
	})
	return blocks
}

// Block returns the i-th top-level element, or nil when out of range.
func (d *Document) Block(i int) *Element {
	blocks := d.Blocks()
	if i < 0 || i >= len(blocks) {
		return nil
	}
	return blocks[i]
}

// HTML renders the body's contents.
func (d *Document) HTML() (string, error) {
	return d.Root().selection().Html()
}

// Caret returns the element holding the caret and the offset into it.
func (d *Document) Caret() (*Element, int) {
	return d.caret, d.offset
}

// TakeMutations returns the changes recorded since the last call.
func (d *Document) TakeMutations() Mutation {
	m := d.pending
	d.pending = Mutation{}
	return m
}

// EnclosingIsland implements Tree.
func (d *Document) EnclosingIsland(n Node) Node {
	e, ok := n.(*Element)
	if !ok || e == nil {
		return nil
	}
	island := e.selection().Closest(islandSelector)
	if island.Length() == 0 {
		return nil
	}
	return d.wrap(island.Nodes[0])
}

// ConvertToIsland implements Tree. The island is a non-editable div
// carrying the id, language and content attributes, with an empty mount
// point child.
func (d *Document) ConvertToIsland(block Node, st State) Node {
	e, ok := block.(*Element)
	if !ok || e == nil {
		return nil
	}
	div := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
		Attr: []html.Attribute{
			{Key: "class", Val: ClassIsland},
			{Key: AttrID, Val: st.ID},
			{Key: AttrLanguage, Val: st.Language},
			{Key: AttrContent, Val: st.Content},
			{Key: "contenteditable", Val: "false"},
		},
	}
	div.AppendChild(&html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
		Attr:     []html.Attribute{{Key: "class", Val: ClassMountPoint}},
	})
	if !d.replace(e.node, div) {
		return nil
	}
	return d.wrap(div)
}

// ConvertToBlock implements Tree, replacing island with a paragraph.
func (d *Document) ConvertToBlock(island Node, text string) Node {
	e, ok := island.(*Element)
	if !ok || e == nil {
		return nil
	}
	p := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
	if text != "" {
		p.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	if !d.replace(e.node, p) {
		return nil
	}
	return d.wrap(p)
}

// PlaceCaret implements Tree.
func (d *Document) PlaceCaret(n Node, offset int) {
	e, ok := n.(*Element)
	if !ok {
		return
	}
	d.caret = e
	d.offset = offset
}

// SetAttr sets an attribute on e.
func (d *Document) SetAttr(e *Element, name, value string) {
	e.selection().SetAttr(name, value)
}

func (d *Document) replace(old, repl *html.Node) bool {
	parent := old.Parent
	if parent == nil {
		return false
	}
	parent.InsertBefore(repl, old)
	parent.RemoveChild(old)
	if d.caret != nil && d.caret.node == old {
		d.caret = nil
		d.offset = 0
	}
	d.pending.Removed = append(d.pending.Removed, d.wrap(old))
	d.pending.Added = append(d.pending.Added, d.wrap(repl))
	return true
}

func (e *Element) selection() *goquery.Selection {
	return goquery.NewDocumentFromNode(e.node).Selection
}

// Tag returns the element name.
func (e *Element) Tag() string {
	return e.node.Data
}

// IslandID implements Node.
func (e *Element) IslandID() string {
	return e.Attr(AttrID)
}

// MountPoint implements Node.
func (e *Element) MountPoint() Node {
	mount := e.selection().Find("." + ClassMountPoint).First()
	if mount.Length() == 0 {
		return nil
	}
	return e.doc.wrap(mount.Nodes[0])
}

// Islands implements Node.
func (e *Element) Islands() []Node {
	sel := e.selection()
	var out []Node
	if sel.Is(islandSelector) {
		out = append(out, e)
	}
	sel.Find(islandSelector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, e.doc.wrap(s.Nodes[0]))
	})
	return out
}

// Attr implements Node.
func (e *Element) Attr(name string) string {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// Text implements Node.
func (e *Element) Text() string {
	return e.selection().Text()
}

// IsListItem implements Node.
func (e *Element) IsListItem() bool {
	return e.selection().Closest("li").Length() > 0
}

// Connected implements Node. Elements replaced by a conversion are
// detached and stay so.
func (e *Element) Connected() bool {
	for n := e.node; n != nil; n = n.Parent {
		if n == e.doc.body {
			return true
		}
	}
	return false
}

package island

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Renderer is a live view of one island, attached to its mount point.
type Renderer interface {
	// Update pushes new state into the view.
	Update(st State)
	// Focus puts the caret offset characters into the editable surface.
	Focus(offset int)
	// Destroy tears the view down.
	Destroy()
}

// RendererFactory builds a renderer inside mount, initialised with st.
type RendererFactory func(mount Node, st State) Renderer

// MountPointRenderer draws an island as <pre><code> inside its mount point.
type MountPointRenderer struct {
	doc   *Document
	mount *Element
	state State
}

// Renderers returns a factory of MountPointRenderers drawing into d.
func (d *Document) Renderers() RendererFactory {
	return func(mount Node, st State) Renderer {
		el, ok := mount.(*Element)
		if !ok {
			return nopRenderer{}
		}
		r := &MountPointRenderer{doc: d, mount: el}
		r.Update(st)
		return r
	}
}

// Update redraws the mount point for st.
func (r *MountPointRenderer) Update(st State) {
	r.state = st
	clearChildren(r.mount.node)

	code := &html.Node{Type: html.ElementNode, Data: "code", DataAtom: atom.Code}
	if st.Language != "" {
		code.Attr = []html.Attribute{{Key: "class", Val: "language-" + st.Language}}
	}
	code.AppendChild(&html.Node{Type: html.TextNode, Data: st.Content})
	pre := &html.Node{Type: html.ElementNode, Data: "pre", DataAtom: atom.Pre}
	pre.AppendChild(code)
	r.mount.node.AppendChild(pre)
}

// Focus moves the document caret into the mount point.
func (r *MountPointRenderer) Focus(offset int) {
	r.doc.PlaceCaret(r.mount, offset)
}

// Destroy empties the mount point.
func (r *MountPointRenderer) Destroy() {
	clearChildren(r.mount.node)
}

// State returns the last state drawn.
func (r *MountPointRenderer) State() State {
	return r.state
}

type nopRenderer struct{}

func (nopRenderer) Update(State) {}
func (nopRenderer) Focus(int)    {}
func (nopRenderer) Destroy()     {}

func clearChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
}

package island

// Attributes and classes making up the island element contract.
const (
	AttrID          = "data-code-block-id"
	AttrLanguage    = "data-language"
	AttrContent     = "data-content"
	ClassIsland     = "code-block-island"
	ClassMountPoint = "code-block-mount"
)

// Node is a handle onto an element of the editable tree.
type Node interface {
	// IslandID returns the island id carried by the element, or "".
	IslandID() string
	// MountPoint returns the descendant a renderer attaches to, or nil.
	MountPoint() Node
	// Islands returns the island elements in the subtree rooted at the
	// node, the node itself included.
	Islands() []Node
	// Attr returns an attribute value, or "" when absent.
	Attr(name string) string
	// Text returns the text content of the element.
	Text() string
	// IsListItem reports whether the element is, or sits inside, a list item.
	IsListItem() bool
	// Connected reports whether the element is still part of the tree.
	Connected() bool
}

// Tree is the mutable document the state machine edits in place.
type Tree interface {
	// EnclosingIsland returns the island element containing n (n itself
	// included), or nil.
	EnclosingIsland(n Node) Node
	// ConvertToIsland replaces block with an island element for st.
	ConvertToIsland(block Node, st State) Node
	// ConvertToBlock replaces island with an editable block holding text.
	ConvertToBlock(island Node, text string) Node
	// PlaceCaret moves the caret to offset characters into n.
	PlaceCaret(n Node, offset int)
}

// Mutation is one batch of structural changes observed in the tree.
type Mutation struct {
	Added   []Node
	Removed []Node
}

// Empty reports whether the batch carries no changes.
func (m Mutation) Empty() bool {
	return len(m.Added) == 0 && len(m.Removed) == 0
}

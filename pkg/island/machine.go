package island

import (
	"regexp"
	"unicode/utf8"
)

// fencePattern matches a block whose whole text is an opening code fence,
// optionally followed by a language.
var fencePattern = regexp.MustCompile("^```([A-Za-z0-9_+#.-]*)\\s*$")

// Machine converts editable blocks into code islands and back.
type Machine struct {
	tree     Tree
	store    *Store
	manager  *Manager
	onChange func()
}

// NewMachine creates a state machine editing tree. onChange, if not nil, is
// called after every conversion.
func NewMachine(tree Tree, store *Store, manager *Manager, onChange func()) *Machine {
	return &Machine{
		tree:     tree,
		store:    store,
		manager:  manager,
		onChange: onChange,
	}
}

// Toggle converts target between an editable block and a code island.
//
// Inside an island, the island is replaced by a block holding its stored
// content, the state entry is removed and the caret goes to the end of the
// text. On an editable block, the block's text becomes the content of a new
// island with no language, which is marked to receive focus once mounted.
// A nil target, a list item or an element no longer in the tree is left
// alone and Toggle returns false.
func (m *Machine) Toggle(target Node) bool {
	if target == nil {
		return false
	}

	if island := m.tree.EnclosingIsland(target); island != nil {
		id := island.IslandID()
		content := island.Attr(AttrContent)
		if st, ok := m.store.Get(id); ok {
			content = st.Content
		}
		block := m.tree.ConvertToBlock(island, content)
		if block == nil {
			tracer().Debugf("toggle skipped: %s is detached", id)
			return false
		}
		m.store.remove(id)
		m.manager.clearPendingFocus(id)
		m.tree.PlaceCaret(block, utf8.RuneCountInString(content))
		m.changed()
		return true
	}

	if target.IsListItem() {
		return false
	}
	return m.createIsland(target, target.Text(), "")
}

// DetectFencePattern converts target into an empty island when its text is
// an opening code fence such as "```go". The language after the fence seeds
// the island. It reports whether a conversion happened so callers can skip
// further per-keystroke handling.
func (m *Machine) DetectFencePattern(target Node) bool {
	if target == nil || target.IsListItem() || m.tree.EnclosingIsland(target) != nil {
		return false
	}
	match := fencePattern.FindStringSubmatch(target.Text())
	if match == nil {
		return false
	}
	return m.createIsland(target, "", match[1])
}

// createIsland replaces block with a new island. Nothing is recorded when
// the tree refuses the conversion.
func (m *Machine) createIsland(block Node, content, language string) bool {
	st := State{
		ID:       m.manager.NewID(),
		Content:  content,
		Language: language,
	}
	if m.tree.ConvertToIsland(block, st) == nil {
		tracer().Debugf("conversion to %s refused", st.ID)
		return false
	}
	m.store.set(st)
	m.manager.MarkPendingFocus(st.ID)
	m.changed()
	return true
}

func (m *Machine) changed() {
	if m.onChange != nil {
		m.onChange()
	}
}

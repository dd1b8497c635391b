package island

// Editor ties a Document to a Store, Manager and Machine. Every edit is
// followed by a sync of the recorded mutations and a flush of deferred
// mount notifications, which is the order a browser would run them in.
type Editor struct {
	doc     *Document
	store   *Store
	manager *Manager
	machine *Machine
	changes int
}

// NewEditor creates an editor over doc. A nil factory draws islands with
// the document's MountPointRenderer.
func NewEditor(doc *Document, factory RendererFactory, opts ...ManagerOption) *Editor {
	if factory == nil {
		factory = doc.Renderers()
	}
	e := &Editor{
		doc:   doc,
		store: NewStore(),
	}
	e.manager = NewManager(e.store, factory, opts...)
	e.machine = NewMachine(doc, e.store, e.manager, func() { e.changes++ })
	return e
}

// Load mounts every island already present in the document.
func (e *Editor) Load() {
	e.manager.Sync(Mutation{Added: []Node{e.doc.Root()}})
	e.manager.Flush()
	tracer().Infof("loaded document with %d islands", e.store.Len())
}

// Document returns the edited document.
func (e *Editor) Document() *Document { return e.doc }

// Store returns the island state store.
func (e *Editor) Store() *Store { return e.store }

// Manager returns the lifecycle manager.
func (e *Editor) Manager() *Manager { return e.manager }

// Changes returns how many conversions have happened.
func (e *Editor) Changes() int { return e.changes }

// Toggle runs the state machine toggle on target and settles the result.
func (e *Editor) Toggle(target Node) bool {
	ok := e.machine.Toggle(target)
	e.settle()
	return ok
}

// DetectFencePattern runs fence detection on target and settles the result.
func (e *Editor) DetectFencePattern(target Node) bool {
	ok := e.machine.DetectFencePattern(target)
	e.settle()
	return ok
}

func (e *Editor) settle() {
	if m := e.doc.TakeMutations(); !m.Empty() {
		e.manager.Sync(m)
	}
	e.manager.Flush()
}

// HTML renders the document with every island's attributes brought up to
// date from the store.
func (e *Editor) HTML() (string, error) {
	for _, n := range e.doc.Root().Islands() {
		el := n.(*Element)
		st, ok := e.store.Get(el.IslandID())
		if !ok {
			continue
		}
		e.doc.SetAttr(el, AttrContent, st.Content)
		e.doc.SetAttr(el, AttrLanguage, st.Language)
	}
	return e.doc.HTML()
}

// Close unmounts every renderer.
func (e *Editor) Close() {
	e.manager.UnmountAll()
}

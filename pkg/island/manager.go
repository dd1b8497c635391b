package island

import (
	"context"
	"sort"
)

type instance struct {
	id       string
	renderer Renderer
	cancel   func()
}

// Manager mounts and unmounts island renderers as islands enter and leave
// the tree. It guarantees at most one live renderer per island id and
// delivers one deferred "mounted" notification per mount, which is where
// pending focus is handed over.
type Manager struct {
	store     *Store
	factory   RendererFactory
	sched     Scheduler
	nextID    IDGenerator
	mounted   map[string]*instance
	pending   map[string]struct{}
	observers []func(id string)
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithScheduler sets where deferred mount notifications are queued.
func WithScheduler(s Scheduler) ManagerOption {
	return func(m *Manager) {
		m.sched = s
	}
}

// WithIDGenerator sets the generator used for new island ids.
func WithIDGenerator(gen IDGenerator) ManagerOption {
	return func(m *Manager) {
		m.nextID = gen
	}
}

// NewManager creates a manager over store building renderers with factory.
// Without options it queues notifications on its own Queue, drained by
// Flush, and numbers ids code-block-1, code-block-2, ...
func NewManager(store *Store, factory RendererFactory, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:   store,
		factory: factory,
		sched:   &Queue{},
		nextID:  CounterIDs("code-block"),
		mounted: make(map[string]*instance),
		pending: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewID allocates a fresh island id.
func (m *Manager) NewID() string {
	return m.nextID()
}

// OnMounted registers fn to be called with the id of every island whose
// deferred mount notification fires.
func (m *Manager) OnMounted(fn func(id string)) {
	m.observers = append(m.observers, fn)
}

// MarkPendingFocus asks for id to receive focus once its renderer mounts.
func (m *Manager) MarkPendingFocus(id string) {
	m.pending[id] = struct{}{}
}

// IsPendingFocus reports whether id still awaits focus.
func (m *Manager) IsPendingFocus(id string) bool {
	_, ok := m.pending[id]
	return ok
}

func (m *Manager) clearPendingFocus(id string) {
	delete(m.pending, id)
}

// IsMounted reports whether a renderer is live for id.
func (m *Manager) IsMounted(id string) bool {
	_, ok := m.mounted[id]
	return ok
}

// MountedIDs returns the ids with a live renderer, sorted.
func (m *Manager) MountedIDs() []string {
	ids := make([]string, 0, len(m.mounted))
	for id := range m.mounted {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Mount attaches a renderer to an island element. It does nothing when the
// element has no id, is no longer in the tree, has no mount point, or
// already has a live renderer.
// State comes from the store, or on first sight from the element's
// attributes, which are then registered in the store.
func (m *Manager) Mount(n Node) {
	id := n.IslandID()
	if id == "" {
		tracer().Debugf("mount skipped: element has no island id")
		return
	}
	if _, ok := m.mounted[id]; ok {
		tracer().Debugf("mount skipped: %s already mounted", id)
		return
	}
	if !n.Connected() {
		tracer().Debugf("mount skipped: %s is detached", id)
		return
	}
	mount := n.MountPoint()
	if mount == nil {
		tracer().Debugf("mount skipped: %s has no mount point", id)
		return
	}

	st, ok := m.store.Get(id)
	if !ok {
		m.store.Register(State{
			ID:       id,
			Content:  n.Attr(AttrContent),
			Language: n.Attr(AttrLanguage),
		})
		st, _ = m.store.Get(id)
	}

	inst := &instance{id: id, renderer: m.factory(mount, st)}
	inst.cancel = m.store.Subscribe(id, inst.renderer.Update)
	m.mounted[id] = inst
	tracer().Debugf("mounted renderer for %s", id)

	m.sched.Defer(func() {
		m.notifyMounted(inst)
	})
}

// notifyMounted is the deferred half of Mount. It is dropped silently if
// the instance was unmounted or replaced in the meantime.
func (m *Manager) notifyMounted(inst *instance) {
	if m.mounted[inst.id] != inst {
		tracer().Debugf("mount notification for %s abandoned", inst.id)
		return
	}
	if _, ok := m.pending[inst.id]; ok {
		delete(m.pending, inst.id)
		tracer().Debugf("focusing %s", inst.id)
		inst.renderer.Focus(0)
	}
	for _, fn := range m.observers {
		fn(inst.id)
	}
}

// Unmount tears down the renderer for id, if any. The store is untouched so
// the island's content survives a later remount.
func (m *Manager) Unmount(id string) {
	inst, ok := m.mounted[id]
	if !ok {
		return
	}
	inst.cancel()
	inst.renderer.Destroy()
	delete(m.mounted, id)
	tracer().Debugf("unmounted renderer for %s", id)
}

// UnmountAll tears down every live renderer.
func (m *Manager) UnmountAll() {
	for _, id := range m.MountedIDs() {
		m.Unmount(id)
	}
}

// Sync applies one batch of tree mutations: islands inside removed subtrees
// are unmounted, then islands inside added subtrees are mounted. Both halves
// are idempotent. A batch may coalesce several edits, so added islands that
// have since left the tree are skipped.
func (m *Manager) Sync(batch Mutation) {
	for _, n := range batch.Removed {
		for _, island := range n.Islands() {
			m.Unmount(island.IslandID())
		}
	}
	for _, n := range batch.Added {
		for _, island := range n.Islands() {
			m.Mount(island)
		}
	}
}

// Flush runs deferred notifications when the scheduler is a Queue.
func (m *Manager) Flush() {
	if q, ok := m.sched.(*Queue); ok {
		q.Flush()
	}
}

// Watch applies mutation batches from ch until it is closed or ctx is
// done, flushing deferred notifications after each batch. It is the event
// loop for mutations; nothing else may call the manager meanwhile.
func (m *Manager) Watch(ctx context.Context, ch <-chan Mutation) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case batch, ok := <-ch:
			if !ok {
				return nil
			}
			m.Sync(batch)
			m.Flush()
		}
	}
}

package island

import (
	"sort"
	"sync"
)

// State is the content of one code island.
type State struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

// Store owns the State of every island, keyed by id. Other packages read it
// through Get, All and Len; the only exported writes are Register, which
// never overwrites, and Update, the path a renderer uses to push user edits.
// Every write notifies the subscribers of that id.
type Store struct {
	mu      sync.RWMutex
	states  map[string]State
	subs    map[string]map[int]func(State)
	nextSub int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		states: make(map[string]State),
		subs:   make(map[string]map[int]func(State)),
	}
}

// Get returns the state stored for id.
func (s *Store) Get(id string) (State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[id]
	return st, ok
}

// All returns every stored state ordered by id.
func (s *Store) All() []State {
	s.mu.RLock()
	all := make([]State, 0, len(s.states))
	for _, st := range s.states {
		all = append(all, st)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// Len returns the number of stored islands.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}

// Register stores st unless its id is already present; the first writer
// wins. It reports whether st was stored.
func (s *Store) Register(st State) bool {
	s.mu.Lock()
	if _, ok := s.states[st.ID]; ok || st.ID == "" {
		s.mu.Unlock()
		return false
	}
	s.states[st.ID] = st
	fns := s.subscribersLocked(st.ID)
	s.mu.Unlock()

	notify(fns, st)
	return true
}

// Update replaces the content of an existing island. It reports false when
// the id is unknown.
func (s *Store) Update(id, content string) bool {
	s.mu.Lock()
	st, ok := s.states[id]
	if !ok {
		s.mu.Unlock()
		return false
	}
	st.Content = content
	s.states[id] = st
	fns := s.subscribersLocked(id)
	s.mu.Unlock()

	notify(fns, st)
	return true
}

// SetLanguage changes the language of an existing island.
func (s *Store) SetLanguage(id, language string) bool {
	s.mu.Lock()
	st, ok := s.states[id]
	if !ok {
		s.mu.Unlock()
		return false
	}
	st.Language = language
	s.states[id] = st
	fns := s.subscribersLocked(id)
	s.mu.Unlock()

	notify(fns, st)
	return true
}

// Subscribe calls fn after every write to id until the returned cancel
// function is called.
func (s *Store) Subscribe(id string, fn func(State)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.nextSub
	s.nextSub++
	if s.subs[id] == nil {
		s.subs[id] = make(map[int]func(State))
	}
	s.subs[id][key] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[id], key)
		if len(s.subs[id]) == 0 {
			delete(s.subs, id)
		}
	}
}

// set creates or overwrites the state for st.ID.
func (s *Store) set(st State) {
	s.mu.Lock()
	s.states[st.ID] = st
	fns := s.subscribersLocked(st.ID)
	s.mu.Unlock()

	notify(fns, st)
}

// remove deletes the state for id. Subscribers are left in place; they are
// cancelled when their renderer unmounts.
func (s *Store) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.states[id]; !ok {
		return false
	}
	delete(s.states, id)
	return true
}

func (s *Store) subscribersLocked(id string) []func(State) {
	subs := s.subs[id]
	if len(subs) == 0 {
		return nil
	}
	keys := make([]int, 0, len(subs))
	for k := range subs {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	fns := make([]func(State), 0, len(keys))
	for _, k := range keys {
		fns = append(fns, subs[k])
	}
	return fns
}

// notify runs outside the lock so subscribers may read the store.
func notify(fns []func(State), st State) {
	for _, fn := range fns {
		fn(st)
	}
}

package singleton

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// State is one shared mutable record. Every handle issued for a key reads
// and writes the same record, so an update through any handle is
// immediately visible through all of them.
type State struct {
	mu     sync.RWMutex
	fields map[string]any
}

func newState() *State {
	return &State{fields: make(map[string]any)}
}

// Update merges fields into the record. Overlapping keys take the incoming
// value; last write wins per field.
func (s *State) Update(fields map[string]any) {
	s.mu.Lock()
	for k, v := range fields {
		s.fields[k] = v
	}
	s.mu.Unlock()
}

// Set stores a single field.
func (s *State) Set(key string, value any) {
	s.mu.Lock()
	s.fields[key] = value
	s.mu.Unlock()
}

// Value returns a single field and whether it is present.
func (s *State) Value(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.fields[key]
	return v, ok
}

// Snapshot returns a copy of the record. The copy is owned by the caller.
func (s *State) Snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]any, len(s.fields))
	for k, v := range s.fields {
		out[k] = v
	}
	return out
}

// Len returns the number of fields in the record.
func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.fields)
}

// StateRegistry shares mutable state by key. Unlike Registry, which hands
// out one identical instance, a StateRegistry hands out distinct Handle
// values that all observe the same underlying record.
type StateRegistry struct {
	mu     sync.Mutex
	states map[string]*State
}

// NewStateRegistry creates an empty state registry.
func NewStateRegistry() *StateRegistry {
	return &StateRegistry{states: make(map[string]*State)}
}

// StateFor returns the shared record for key, creating it on first use.
func (sr *StateRegistry) StateFor(key string) *State {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	state, ok := sr.states[key]
	if !ok {
		state = newState()
		sr.states[key] = state
	}
	return state
}

// Handle issues a new handle over the shared record for key. Handles are
// never identity-equal, even for the same key.
func (sr *StateRegistry) Handle(key string) *Handle {
	return &Handle{key: key, state: sr.StateFor(key)}
}

// HandleWith issues a new handle and merges fields into the shared record,
// immediately visible through every other handle for the key.
func (sr *StateRegistry) HandleWith(key string, fields map[string]any) *Handle {
	h := sr.Handle(key)
	h.Update(fields)
	return h
}

// Reset detaches the shared record for key. Handles already issued keep
// the detached record and continue sharing it with each other; handles
// issued after the reset start from a fresh record.
func (sr *StateRegistry) Reset(key string) {
	sr.mu.Lock()
	delete(sr.states, key)
	sr.mu.Unlock()
}

// ResetAll detaches every shared record. Intended for test isolation.
func (sr *StateRegistry) ResetAll() {
	sr.mu.Lock()
	sr.states = make(map[string]*State)
	sr.mu.Unlock()
}

// Len returns the number of live shared records.
func (sr *StateRegistry) Len() int {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	return len(sr.states)
}

// Handle is an independently constructed view over a key's shared record.
// Construct handles with StateRegistry.Handle or HandleWith.
type Handle struct {
	key   string
	state *State
}

// Key returns the key the handle was issued for.
func (h *Handle) Key() string {
	return h.key
}

// State returns the shared record backing this handle.
func (h *Handle) State() *State {
	return h.state
}

// Update merges fields into the shared record.
func (h *Handle) Update(fields map[string]any) {
	h.state.Update(fields)
}

// Set stores one field in the shared record.
func (h *Handle) Set(key string, value any) {
	h.state.Set(key, value)
}

// Value reads one field from the shared record.
func (h *Handle) Value(key string) (any, bool) {
	return h.state.Value(key)
}

// String renders the shared record with sorted field names, so any two
// handles over the same record render identically.
func (h *Handle) String() string {
	snap := h.state.Snapshot()

	names := make([]string, 0, len(snap))
	for name := range snap {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%v", name, snap[name]))
	}
	return fmt.Sprintf("%s{%s}", h.key, strings.Join(parts, ", "))
}

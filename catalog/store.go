package catalog

import (
	"fmt"
	"sync"

	"github.com/c360/forgekit/errors"
)

// Store provides thread-safe access to the current catalog document.
type Store struct {
	mu  sync.RWMutex
	doc *Document
}

// NewStore creates a store holding doc. A nil doc starts the store with an
// empty document.
func NewStore(doc *Document) *Store {
	if doc == nil {
		doc = &Document{}
	}
	return &Store{doc: doc}
}

// Get returns a deep copy of the current document, so readers can inspect
// and mutate it without affecting the stored catalog.
func (s *Store) Get() *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// Swap validates doc, installs it as the current document, and returns the
// previous one. An invalid document is rejected and the current document
// stays in place.
func (s *Store) Swap(doc *Document) (*Document, error) {
	if doc == nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("document must not be nil"),
			"Store", "Swap", "validate document")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.doc
	s.doc = doc
	return prev, nil
}

// Version returns the version of the current document.
func (s *Store) Version() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Version
}

package family

import (
	"fmt"
	"sort"
	"sync"

	"github.com/c360/forgekit/errors"
)

// Composer holds named families behind one lookup handle. Registration and
// selection are safe for concurrent use; the Family handles it returns are
// the ones registered, not copies.
type Composer[T any] struct {
	mu       sync.RWMutex
	families map[string]*Family[T]
}

// NewComposer creates an empty composer.
func NewComposer[T any]() *Composer[T] {
	return &Composer[T]{
		families: make(map[string]*Family[T]),
	}
}

// RegisterFamily adds f under its name. A nil family or an empty name is
// rejected; registering a name twice fails with errors.ErrDuplicateKey.
func (c *Composer[T]) RegisterFamily(f *Family[T]) error {
	if f == nil {
		return errors.WrapInvalid(
			fmt.Errorf("family must not be nil"),
			"Composer", "RegisterFamily", "validate family")
	}
	if f.name == "" {
		return errors.WrapInvalid(errors.ErrEmptyKey,
			"Composer", "RegisterFamily", "validate family name")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.families[f.name]; exists {
		return errors.WrapConflict(
			fmt.Errorf("family %q: %w", f.name, errors.ErrDuplicateKey),
			"Composer", "RegisterFamily", "register family")
	}

	c.families[f.name] = f
	return nil
}

// MustRegisterFamily is like RegisterFamily but panics on error. Use it for
// static wiring where a failed registration is a programming mistake.
func (c *Composer[T]) MustRegisterFamily(f *Family[T]) {
	if err := c.RegisterFamily(f); err != nil {
		panic(err)
	}
}

// Family returns the family registered under selector. An unknown selector
// fails with errors.ErrUnknownFamily.
func (c *Composer[T]) Family(selector string) (*Family[T], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, exists := c.families[selector]
	if !exists {
		return nil, errors.WrapNotFound(
			fmt.Errorf("family %q: %w", selector, errors.ErrUnknownFamily),
			"Composer", "Family", "select family")
	}
	return f, nil
}

// Selectors returns the registered family names in sorted order.
func (c *Composer[T]) Selectors() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.families))
	for name := range c.families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered families.
func (c *Composer[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.families)
}

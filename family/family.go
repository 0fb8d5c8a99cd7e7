// Package family binds registries together into named product families so
// one selector swaps every product kind consistently.
package family

import (
	"fmt"

	"github.com/c360/forgekit/errors"
	"github.com/c360/forgekit/registry"
)

// DefaultVariant is the registry key Create resolves when the caller does
// not name a variant explicitly.
const DefaultVariant = "default"

// Family is a named, ordered set of kind registries. Every product created
// through one Family handle is drawn from these registries and never from
// another family's, for any ordering of calls: the handle holds direct
// registry references fixed when the family is assembled.
type Family[T any] struct {
	name  string
	kinds []string
	regs  map[string]*registry.Registry[T]
}

// NewFamily creates an empty family. Bind kinds with AddKind, then hand the
// family to a Composer.
func NewFamily[T any](name string) *Family[T] {
	return &Family[T]{
		name: name,
		regs: make(map[string]*registry.Registry[T]),
	}
}

// Name returns the family name.
func (f *Family[T]) Name() string {
	return f.name
}

// AddKind binds kind to reg and returns the family for chaining. Binding an
// already-bound kind replaces its registry in place and keeps its position
// in Kinds. AddKind panics on an empty kind or a nil registry; families are
// assembled during wiring, where a bad binding is a programming error.
//
// Assembly is single-writer: finish AddKind calls before sharing the family
// across goroutines.
func (f *Family[T]) AddKind(kind string, reg *registry.Registry[T]) *Family[T] {
	if kind == "" {
		panic(fmt.Sprintf("family %q: empty kind", f.name))
	}
	if reg == nil {
		panic(fmt.Sprintf("family %q: nil registry for kind %q", f.name, kind))
	}

	if _, exists := f.regs[kind]; !exists {
		f.kinds = append(f.kinds, kind)
	}
	f.regs[kind] = reg
	return f
}

// Kinds returns the bound kinds in insertion order.
func (f *Family[T]) Kinds() []string {
	out := make([]string, len(f.kinds))
	copy(out, f.kinds)
	return out
}

// Registry returns the registry bound to kind, if any.
func (f *Family[T]) Registry(kind string) (*registry.Registry[T], bool) {
	reg, exists := f.regs[kind]
	return reg, exists
}

// Len returns the number of bound kinds.
func (f *Family[T]) Len() int {
	return len(f.regs)
}

// Create constructs the default variant of kind. It is shorthand for
// CreateVariant(kind, DefaultVariant, args...).
func (f *Family[T]) Create(kind string, args ...any) (T, error) {
	return f.CreateVariant(kind, DefaultVariant, args...)
}

// CreateVariant constructs the named variant of kind by delegating to the
// kind's registry. An unbound kind fails with errors.ErrUnknownKind; an
// unregistered variant fails with errors.ErrUnknownKey from the registry.
func (f *Family[T]) CreateVariant(kind, variant string, args ...any) (T, error) {
	reg, exists := f.regs[kind]
	if !exists {
		var zero T
		return zero, errors.WrapNotFound(
			fmt.Errorf("family %q kind %q: %w", f.name, kind, errors.ErrUnknownKind),
			"Family", "CreateVariant", "select kind")
	}
	return reg.Resolve(variant, args...)
}

// Package registry provides a generic keyed constructor registry, the
// foundational construction strategy every other ForgeKit component builds on
package registry

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/c360/forgekit/errors"
	"github.com/c360/forgekit/metric"
)

// Constructor builds a value of type T from caller-supplied arguments.
// Constructors must be side-effect free with respect to registry state:
// resolving never mutates the registry.
type Constructor[T any] func(args ...any) (T, error)

// Registration describes a registered constructor with its metadata.
// The metadata travels with the key so catalogs, diagnostics, and listings
// can describe what a key constructs without invoking it.
type Registration[T any] struct {
	// Key uniquely identifies the constructor within one registry.
	Key string `json:"key"`

	// Description is a human-readable summary of what gets constructed.
	Description string `json:"description,omitempty"`

	// Version identifies the registration revision, such as "1.0.0".
	Version string `json:"version,omitempty"`

	// Construct builds the product. Never serialized.
	Construct Constructor[T] `json:"-"`
}

// Registry is a thread-safe mapping from construction keys to constructors.
// The zero value is not usable; create instances with New.
//
// Duplicate registration fails with errors.ErrDuplicateKey unless the
// registry was created with WithOverwrite. Resolving an unregistered key
// fails with errors.ErrUnknownKey; no fallback value is ever synthesized
// by Resolve itself (see ResolveDefault for the explicit fallback form).
type Registry[T any] struct {
	mu      sync.RWMutex
	entries map[string]*Registration[T]

	// Configuration
	overwrite bool
	observer  func(Event)

	// Statistics (atomic)
	registered  int64
	overwritten int64
	resolved    int64
	failed      int64

	// Metrics configuration
	metricsRegistry *metric.MetricsRegistry
	metricsPrefix   string
	metrics         *Metrics
}

// New creates a new registry with optional configuration
func New[T any](opts ...Option[T]) *Registry[T] {
	r := &Registry[T]{
		entries: make(map[string]*Registration[T]),
	}

	// Apply options
	for _, opt := range opts {
		opt(r)
	}

	// Initialize metrics if registry provided
	if r.metricsRegistry != nil && r.metricsPrefix != "" {
		r.initializeMetrics()
	}

	return r
}

// Register adds a constructor under its key. The registration is copied;
// later mutation of the argument does not affect the registry.
func (r *Registry[T]) Register(reg Registration[T]) error {
	if reg.Key == "" {
		return errors.WrapInvalid(errors.ErrEmptyKey, "Registry", "Register", "validate key")
	}
	if reg.Construct == nil {
		return errors.WrapInvalid(
			fmt.Errorf("key %q: %w", reg.Key, errors.ErrNilConstructor),
			"Registry", "Register", "validate constructor")
	}

	r.mu.Lock()
	_, exists := r.entries[reg.Key]
	if exists && !r.overwrite {
		r.mu.Unlock()
		return errors.WrapConflict(
			fmt.Errorf("key %q: %w", reg.Key, errors.ErrDuplicateKey),
			"Registry", "Register", "insert key")
	}

	stored := reg
	r.entries[reg.Key] = &stored
	keyCount := len(r.entries)
	r.mu.Unlock()

	op := OpRegister
	if exists {
		op = OpOverwrite
		atomic.AddInt64(&r.overwritten, 1)
	} else {
		atomic.AddInt64(&r.registered, 1)
	}

	if r.metrics != nil {
		r.metrics.registrations.Inc()
		r.metrics.keys.Set(float64(keyCount))
	}
	r.notify(Event{Op: op, Key: reg.Key, At: time.Now()})

	return nil
}

// RegisterFunc adds a bare constructor under a key without extra metadata.
func (r *Registry[T]) RegisterFunc(key string, ctor Constructor[T]) error {
	return r.Register(Registration[T]{Key: key, Construct: ctor})
}

// MustRegister is like Register but panics on error. Intended for
// package-level initialization where a failure is a programming error.
func (r *Registry[T]) MustRegister(reg Registration[T]) {
	if err := r.Register(reg); err != nil {
		panic(err)
	}
}

// Resolve looks up the constructor for key and invokes it with args.
// The constructor runs outside the registry lock, so slow constructors do
// not block concurrent registration or resolution.
func (r *Registry[T]) Resolve(key string, args ...any) (T, error) {
	var zero T

	r.mu.RLock()
	reg, exists := r.entries[key]
	r.mu.RUnlock()

	if !exists {
		atomic.AddInt64(&r.failed, 1)
		if r.metrics != nil {
			r.metrics.misses.Inc()
		}
		err := errors.WrapNotFound(
			fmt.Errorf("key %q: %w", key, errors.ErrUnknownKey),
			"Registry", "Resolve", "lookup key")
		r.notify(Event{Op: OpResolve, Key: key, Err: err, At: time.Now()})
		return zero, err
	}

	start := time.Now()
	value, err := reg.Construct(args...)
	duration := time.Since(start)

	if err != nil {
		atomic.AddInt64(&r.failed, 1)
		if r.metrics != nil {
			r.metrics.failures.Inc()
			r.metrics.resolveTime.WithLabelValues("error").Observe(duration.Seconds())
		}
		wrapped := errors.Wrap(err, "Registry", "Resolve", "invoke constructor")
		r.notify(Event{Op: OpResolve, Key: key, Err: wrapped, At: time.Now()})
		return zero, wrapped
	}

	atomic.AddInt64(&r.resolved, 1)
	if r.metrics != nil {
		r.metrics.resolutions.Inc()
		r.metrics.resolveTime.WithLabelValues("success").Observe(duration.Seconds())
	}
	r.notify(Event{Op: OpResolve, Key: key, At: time.Now()})

	return value, nil
}

// ResolveDefault is the explicit fallback form of Resolve: an unknown key
// returns the supplied fallback value with a nil error instead of
// errors.ErrUnknownKey. Constructor failures still propagate, so a broken
// registration is never papered over by the fallback.
func (r *Registry[T]) ResolveDefault(key string, fallback T, args ...any) (T, error) {
	value, err := r.Resolve(key, args...)
	if err != nil {
		if errors.IsNotFound(err) {
			return fallback, nil
		}
		var zero T
		return zero, err
	}
	return value, nil
}

// Lookup returns a copy of the registration metadata for key. The
// constructor is omitted from the copy; use Resolve to construct.
func (r *Registry[T]) Lookup(key string) (Registration[T], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, exists := r.entries[key]
	if !exists {
		return Registration[T]{}, false
	}

	info := *reg
	info.Construct = nil
	return info, true
}

// Keys returns the registered keys in sorted order.
func (r *Registry[T]) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered keys.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Stats returns a snapshot of registry statistics
func (r *Registry[T]) Stats() Stats {
	return Stats{
		Registered:  atomic.LoadInt64(&r.registered),
		Overwritten: atomic.LoadInt64(&r.overwritten),
		Resolved:    atomic.LoadInt64(&r.resolved),
		Failed:      atomic.LoadInt64(&r.failed),
		Keys:        r.Len(),
	}
}

// Stats contains registry statistics
type Stats struct {
	Registered  int64 `json:"registered"`
	Overwritten int64 `json:"overwritten"`
	Resolved    int64 `json:"resolved"`
	Failed      int64 `json:"failed"`
	Keys        int   `json:"keys"`
}

func (r *Registry[T]) notify(e Event) {
	if r.observer != nil {
		r.observer(e)
	}
}

// Package singleton provides keyed process-wide instances with two sharing
// strategies: identity sharing through Registry and state sharing through
// StateRegistry
package singleton

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/c360/forgekit/errors"
	"github.com/c360/forgekit/metric"
)

// Constructor builds the single instance for a key. Singleton constructors
// take no arguments; everything an instance needs is captured when the
// constructor is registered.
type Constructor[T any] func() (T, error)

// slot holds one key's instance. The once guards construction so that
// concurrent first access runs the constructor exactly once per slot.
type slot[T any] struct {
	once  sync.Once
	ctor  Constructor[T]
	value T
	err   error
	ready atomic.Bool
}

// Registry shares instances by identity: the first access for a key
// constructs and stores the instance, and every later access returns that
// same instance. Populated reads are lock-free.
//
// Construction failures do not populate the slot; the next access retries
// the constructor.
type Registry[T any] struct {
	mu    sync.RWMutex
	ctors map[string]Constructor[T]

	// slots maps key to *slot[T]. Kept separate from the constructor
	// table so the hot path never touches the mutex.
	slots sync.Map

	// Statistics (atomic)
	hits          int64
	misses        int64
	constructions int64
	failures      int64

	// Configuration
	observer func(Event)
	metrics  *metric.Metrics
}

// New creates a new singleton registry with optional configuration
func New[T any](opts ...Option[T]) *Registry[T] {
	r := &Registry[T]{
		ctors: make(map[string]Constructor[T]),
	}

	// Apply options
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register records the constructor for key without constructing anything.
// The instance is built lazily on first Get.
func (r *Registry[T]) Register(key string, ctor Constructor[T]) error {
	if key == "" {
		return errors.WrapInvalid(errors.ErrEmptyKey, "Registry", "Register", "validate key")
	}
	if ctor == nil {
		return errors.WrapInvalid(
			fmt.Errorf("key %q: %w", key, errors.ErrNilConstructor),
			"Registry", "Register", "validate constructor")
	}

	r.mu.Lock()
	if _, exists := r.ctors[key]; exists {
		r.mu.Unlock()
		return errors.WrapConflict(
			fmt.Errorf("key %q: %w", key, errors.ErrDuplicateKey),
			"Registry", "Register", "insert key")
	}
	r.ctors[key] = ctor
	r.mu.Unlock()

	r.notify(Event{Op: OpRegister, Key: key, At: time.Now()})
	return nil
}

// MustRegister is like Register but panics on error. Intended for
// package-level initialization where a failure is a programming error.
func (r *Registry[T]) MustRegister(key string, ctor Constructor[T]) {
	if err := r.Register(key, ctor); err != nil {
		panic(err)
	}
}

// Get returns the instance for key, constructing it on first access with
// the registered constructor. Concurrent first access runs the constructor
// exactly once; every caller receives the same instance. A key with neither
// a populated slot nor a registered constructor fails with
// errors.ErrUnknownKey.
func (r *Registry[T]) Get(key string) (T, error) {
	// Fast path: populated or in-flight slot
	if actual, ok := r.slots.Load(key); ok {
		return r.await(key, actual)
	}

	r.mu.RLock()
	ctor, registered := r.ctors[key]
	r.mu.RUnlock()

	if !registered {
		var zero T
		r.recordRequest(false)
		err := errors.WrapNotFound(
			fmt.Errorf("key %q: %w", key, errors.ErrUnknownKey),
			"Registry", "Get", "lookup key")
		r.notify(Event{Op: OpGet, Key: key, At: time.Now()})
		return zero, err
	}

	actual, _ := r.slots.LoadOrStore(key, &slot[T]{ctor: ctor})
	return r.await(key, actual)
}

// GetOrCreate returns the instance for key, constructing it with ctor if
// the slot is empty. A populated slot ignores ctor entirely. The ad hoc
// constructor is not registered: after a Reset the key is vacant again and
// Get alone cannot rebuild it.
func (r *Registry[T]) GetOrCreate(key string, ctor Constructor[T]) (T, error) {
	var zero T
	if key == "" {
		return zero, errors.WrapInvalid(errors.ErrEmptyKey, "Registry", "GetOrCreate", "validate key")
	}
	if ctor == nil {
		return zero, errors.WrapInvalid(
			fmt.Errorf("key %q: %w", key, errors.ErrNilConstructor),
			"Registry", "GetOrCreate", "validate constructor")
	}

	actual, _ := r.slots.LoadOrStore(key, &slot[T]{ctor: ctor})
	return r.await(key, actual)
}

// await joins the slot's construction, running it if this caller is first.
// The stored any value is retained for CompareAndDelete so a failed
// construction vacates exactly the slot it populated.
func (r *Registry[T]) await(key string, actual any) (T, error) {
	s := actual.(*slot[T])

	var constructed bool
	s.once.Do(func() {
		constructed = true
		atomic.AddInt64(&r.constructions, 1)
		s.value, s.err = s.ctor()
		if s.err == nil {
			s.ready.Store(true)
		} else {
			atomic.AddInt64(&r.failures, 1)
		}
	})

	if s.err != nil {
		var zero T
		// Vacate the slot so the next access retries the construction.
		// CompareAndDelete leaves a newer slot stored by a later retry
		// untouched.
		r.slots.CompareAndDelete(key, actual)
		r.recordRequest(false)
		r.notify(Event{Op: OpGet, Key: key, At: time.Now()})
		return zero, errors.Wrap(s.err, "Registry", "Get", "construct instance")
	}

	hit := !constructed
	r.recordRequest(hit)
	if constructed {
		r.updateActive()
	}
	r.notify(Event{Op: OpGet, Key: key, Hit: hit, At: time.Now()})

	return s.value, nil
}

// WarmUp eagerly constructs every registered key, one goroutine per key.
// The first construction error cancels the remaining work and is returned.
// Cancellation stops keys that have not started; an in-flight constructor
// is never interrupted.
func (r *Registry[T]) WarmUp(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, key := range r.Keys() {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if _, err := r.Get(key); err != nil {
				return errors.Wrap(err, "Registry", "WarmUp", fmt.Sprintf("construct key %q", key))
			}
			return nil
		})
	}

	return g.Wait()
}

// Keys returns the registered keys in sorted order.
func (r *Registry[T]) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.ctors))
	for key := range r.ctors {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered constructors.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ctors)
}

// Active returns the number of populated slots.
func (r *Registry[T]) Active() int {
	count := 0
	r.slots.Range(func(_, v any) bool {
		if v.(*slot[T]).ready.Load() {
			count++
		}
		return true
	})
	return count
}

// Reset vacates the slot for key. The next Get constructs a fresh instance,
// which may have a distinct identity. Instances already handed out are
// unaffected; they simply stop being the shared one. Registered
// constructors survive a reset.
func (r *Registry[T]) Reset(key string) {
	if _, ok := r.slots.LoadAndDelete(key); ok {
		r.updateActive()
		r.notify(Event{Op: OpReset, Key: key, At: time.Now()})
	}
}

// ResetAll vacates every slot, preserving registered constructors.
// Intended for test isolation.
func (r *Registry[T]) ResetAll() {
	r.slots.Range(func(k, _ any) bool {
		r.slots.Delete(k)
		return true
	})
	r.updateActive()
	r.notify(Event{Op: OpReset, Key: "", At: time.Now()})
}

// Stats returns a snapshot of registry statistics
func (r *Registry[T]) Stats() Stats {
	return Stats{
		Hits:          atomic.LoadInt64(&r.hits),
		Misses:        atomic.LoadInt64(&r.misses),
		Constructions: atomic.LoadInt64(&r.constructions),
		Failures:      atomic.LoadInt64(&r.failures),
		Active:        r.Active(),
	}
}

// Stats contains singleton registry statistics
type Stats struct {
	Hits          int64 `json:"hits"`
	Misses        int64 `json:"misses"`
	Constructions int64 `json:"constructions"`
	Failures      int64 `json:"failures"`
	Active        int   `json:"active"`
}

func (r *Registry[T]) recordRequest(hit bool) {
	if hit {
		atomic.AddInt64(&r.hits, 1)
	} else {
		atomic.AddInt64(&r.misses, 1)
	}
	if r.metrics != nil {
		result := "miss"
		if hit {
			result = "hit"
		}
		r.metrics.RecordSingletonRequest(result)
	}
}

func (r *Registry[T]) updateActive() {
	if r.metrics != nil {
		r.metrics.SetActiveSingletons(r.Active())
	}
}

func (r *Registry[T]) notify(e Event) {
	if r.observer != nil {
		r.observer(e)
	}
}

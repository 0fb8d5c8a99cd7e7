package journal

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/c360/forgekit/errors"
)

// DropCallback is called when an entry is evicted to make room for a newer
// one. The callback receives the evicted entry.
type DropCallback[T any] func(item T)

// Journal is a fixed-capacity ring of recorded entries. Recording never
// fails and never blocks: when the journal is full the oldest entry is
// evicted. All methods are safe for concurrent use.
type Journal[T any] struct {
	mu       sync.RWMutex
	items    []T
	capacity int
	size     int
	head     int // next write position
	tail     int // oldest retained entry

	// Atomic counters, always collected
	recorded int64
	dropped  int64

	metrics *journalMetrics
	opts    *journalOptions[T]
}

// New creates a journal retaining the most recent capacity entries.
// Capacity must be positive. Returns an error if metrics registration
// fails when requested.
func New[T any](capacity int, options ...Option[T]) (*Journal[T], error) {
	if capacity <= 0 {
		return nil, errors.WrapInvalid(
			fmt.Errorf("capacity %d is not positive", capacity),
			"Journal", "New", "validate capacity")
	}

	opts := applyOptions(options...)

	var metrics *journalMetrics
	if opts.metricsReg != nil && opts.metricsPrefix != "" {
		var err error
		metrics, err = newJournalMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			return nil, errors.WrapConflict(err, "Journal", "New", "metrics registration")
		}
	}

	return &Journal[T]{
		items:    make([]T, capacity),
		capacity: capacity,
		metrics:  metrics,
		opts:     opts,
	}, nil
}

// Record appends an entry, evicting the oldest one if the journal is full.
func (j *Journal[T]) Record(item T) {
	var evicted T
	var didEvict bool

	j.mu.Lock()
	if j.size == j.capacity {
		evicted = j.items[j.tail]
		j.tail = (j.tail + 1) % j.capacity
		j.size--
		atomic.AddInt64(&j.dropped, 1)
		if j.metrics != nil {
			j.metrics.recordDrop()
		}
		didEvict = true
	}

	j.items[j.head] = item
	j.head = (j.head + 1) % j.capacity
	j.size++
	atomic.AddInt64(&j.recorded, 1)
	if j.metrics != nil {
		j.metrics.recordEntry(j.size, j.capacity)
	}
	j.mu.Unlock()

	// Run the callback after releasing the lock so a callback that
	// re-enters the journal cannot deadlock.
	if didEvict && j.opts.dropCallback != nil {
		j.opts.dropCallback(evicted)
	}
}

// Snapshot returns a copy of the retained entries ordered oldest to newest.
// The returned slice is owned by the caller.
func (j *Journal[T]) Snapshot() []T {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]T, j.size)
	for i := 0; i < j.size; i++ {
		out[i] = j.items[(j.tail+i)%j.capacity]
	}
	return out
}

// Len returns the number of entries currently retained.
func (j *Journal[T]) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.size
}

// Cap returns the maximum number of entries the journal retains.
func (j *Journal[T]) Cap() int {
	return j.capacity
}

// Clear discards all retained entries. Counters are not reset; they track
// lifetime activity.
func (j *Journal[T]) Clear() {
	j.mu.Lock()
	defer j.mu.Unlock()

	// Zero the slots so retained entries do not pin memory
	var zero T
	for i := range j.items {
		j.items[i] = zero
	}
	j.head = 0
	j.tail = 0
	j.size = 0

	if j.metrics != nil {
		j.metrics.updateSize(0, j.capacity)
	}
}

// Stats is a snapshot of lifetime journal counters.
type Stats struct {
	Recorded int64 `json:"recorded"`
	Dropped  int64 `json:"dropped"`
	Retained int   `json:"retained"`
}

// Stats returns lifetime counters and the current retained count.
func (j *Journal[T]) Stats() Stats {
	j.mu.RLock()
	size := j.size
	j.mu.RUnlock()

	return Stats{
		Recorded: atomic.LoadInt64(&j.recorded),
		Dropped:  atomic.LoadInt64(&j.dropped),
		Retained: size,
	}
}

package singleton

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistry_ConcurrentFirstGet verifies that racing first accesses run
// the constructor exactly once and all receive the same instance.
func TestRegistry_ConcurrentFirstGet(t *testing.T) {
	var constructions int64
	reg := New[*appConfig]()
	require.NoError(t, reg.Register("config", func() (*appConfig, error) {
		atomic.AddInt64(&constructions, 1)
		return &appConfig{Name: "forgekit"}, nil
	}))

	const numGoroutines = 50
	start := make(chan struct{})
	results := make(chan *appConfig, numGoroutines)

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			got, err := reg.Get("config")
			assert.NoError(t, err)
			results <- got
		}()
	}

	close(start)
	wg.Wait()
	close(results)

	assert.Equal(t, int64(1), atomic.LoadInt64(&constructions),
		"constructor must run exactly once")

	var first *appConfig
	for got := range results {
		if first == nil {
			first = got
		}
		assert.Same(t, first, got, "every goroutine must see the same instance")
	}

	stats := reg.Stats()
	assert.Equal(t, int64(numGoroutines), stats.Hits+stats.Misses)
	assert.Equal(t, int64(1), stats.Constructions)
}

// TestRegistry_ConcurrentGetOrCreate verifies per-key exactly-once
// construction across many keys under contention.
func TestRegistry_ConcurrentGetOrCreate(t *testing.T) {
	reg := New[string]()

	const numKeys = 10
	const numGoroutines = 50
	var constructions int64

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numKeys; j++ {
				key := fmt.Sprintf("key-%d", j)
				got, err := reg.GetOrCreate(key, func() (string, error) {
					atomic.AddInt64(&constructions, 1)
					return key, nil
				})
				assert.NoError(t, err)
				assert.Equal(t, key, got)
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, int64(numKeys), atomic.LoadInt64(&constructions),
		"each key must construct exactly once")
	assert.Equal(t, numKeys, reg.Active())
}

// TestRegistry_ConcurrentGetAndReset exercises resets racing accesses.
// Every Get must return a valid instance regardless of interleaving.
func TestRegistry_ConcurrentGetAndReset(t *testing.T) {
	reg := New[*appConfig]()
	require.NoError(t, reg.Register("config", newAppConfig))

	var wg sync.WaitGroup
	const numGoroutines = 20

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got, err := reg.Get("config")
				assert.NoError(t, err)
				assert.NotNil(t, got)
			}
		}()
	}

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				reg.Reset("config")
			}
		}()
	}

	wg.Wait()

	// The registry must still work after the churn
	got, err := reg.Get("config")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

// TestStateRegistry_ConcurrentUpdates verifies that concurrent handle
// updates all land in the one shared record.
func TestStateRegistry_ConcurrentUpdates(t *testing.T) {
	states := NewStateRegistry()

	const numGoroutines = 50
	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			h := states.HandleWith("shared", map[string]any{
				fmt.Sprintf("field-%d", id): id,
			})
			assert.NotNil(t, h)
		}(i)
	}

	wg.Wait()

	state := states.StateFor("shared")
	assert.Equal(t, numGoroutines, state.Len(),
		"every goroutine's field must land in the shared record")
}

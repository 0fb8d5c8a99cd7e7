package catalog

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/forgekit/errors"
)

func TestStore_GetReturnsCopy(t *testing.T) {
	store := NewStore(petDocument())

	got := store.Get()
	got.Families[0].Name = "mutated"
	got.Families[0].Kinds[0].Variants[0].Spec["species"] = "bird"

	fresh := store.Get()
	assert.Equal(t, "friendly", fresh.Families[0].Name)
	assert.Equal(t, "dog", fresh.Families[0].Kinds[0].Variants[0].Spec["species"])
}

func TestStore_Swap(t *testing.T) {
	store := NewStore(petDocument())

	next := petDocument()
	next.Version = "1.1.0"

	prev, err := store.Swap(next)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", prev.Version)
	assert.Equal(t, "1.1.0", store.Version())
}

func TestStore_SwapRejectsInvalid(t *testing.T) {
	store := NewStore(petDocument())

	_, err := store.Swap(nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))

	_, err = store.Swap(&Document{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidCatalog)

	// The current document stays in place after a rejected swap.
	assert.Equal(t, "1.0.0", store.Version())
}

func TestStore_NilDocument(t *testing.T) {
	store := NewStore(nil)

	got := store.Get()
	require.NotNil(t, got)
	assert.Empty(t, got.Version)
	assert.Empty(t, got.Families)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore(petDocument())

	const (
		writers = 10
		readers = 10
	)

	var wg sync.WaitGroup

	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				doc := petDocument()
				doc.Version = fmt.Sprintf("1.%d.%d", id, i)
				if _, err := store.Swap(doc); err != nil {
					t.Errorf("swap: %v", err)
					return
				}
			}
		}(w)
	}

	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				doc := store.Get()
				if doc.Version == "" {
					t.Error("read an empty version")
					return
				}
			}
		}()
	}

	wg.Wait()

	// Whatever swap landed last, the stored document is a complete one.
	final := store.Get()
	assert.NoError(t, final.Validate())
	assert.Len(t, final.Families, 2)
}

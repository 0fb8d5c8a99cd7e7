package singleton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRegistry_SharedState(t *testing.T) {
	states := NewStateRegistry()

	x := states.Handle("protocols")
	y := states.Handle("protocols")

	require.NotSame(t, x, y, "handles are distinct objects")
	assert.Same(t, x.State(), y.State(), "handles share one record")

	x.Set("HTTP", "Hyper Text Transfer Protocol")

	got, ok := y.Value("HTTP")
	require.True(t, ok, "update through one handle must be visible through the other")
	assert.Equal(t, "Hyper Text Transfer Protocol", got)
}

func TestStateRegistry_HandleWith(t *testing.T) {
	states := NewStateRegistry()

	x := states.HandleWith("protocols", map[string]any{
		"HTTP": "Hyper Text Transfer Protocol",
	})
	y := states.HandleWith("protocols", map[string]any{
		"SNMP": "Simple Network Management Protocol",
	})

	// Both handles observe the union of all merges
	want := "protocols{HTTP=Hyper Text Transfer Protocol, SNMP=Simple Network Management Protocol}"
	assert.Equal(t, want, x.String())
	assert.Equal(t, want, y.String())
}

func TestState_UpdateLastWriteWins(t *testing.T) {
	states := NewStateRegistry()
	state := states.StateFor("cfg")

	state.Update(map[string]any{"a": 1, "b": 2})
	state.Update(map[string]any{"b": 20, "c": 30})

	snap := state.Snapshot()
	assert.Equal(t, 1, snap["a"])
	assert.Equal(t, 20, snap["b"], "overlapping field takes the later value")
	assert.Equal(t, 30, snap["c"])
	assert.Equal(t, 3, state.Len())
}

func TestState_SetAndValue(t *testing.T) {
	states := NewStateRegistry()
	state := states.StateFor("cfg")

	_, ok := state.Value("missing")
	assert.False(t, ok)

	state.Set("mode", "strict")
	got, ok := state.Value("mode")
	require.True(t, ok)
	assert.Equal(t, "strict", got)
}

func TestState_SnapshotIsolation(t *testing.T) {
	states := NewStateRegistry()
	state := states.StateFor("cfg")
	state.Set("a", 1)

	snap := state.Snapshot()
	snap["a"] = 100
	snap["b"] = 2

	got, ok := state.Value("a")
	require.True(t, ok)
	assert.Equal(t, 1, got, "mutating a snapshot must not touch the record")
	assert.Equal(t, 1, state.Len())
}

func TestStateRegistry_Reset(t *testing.T) {
	states := NewStateRegistry()

	before := states.HandleWith("cfg", map[string]any{"a": 1})
	sibling := states.Handle("cfg")

	states.Reset("cfg")

	// Handles issued before the reset keep sharing the detached record
	got, ok := sibling.Value("a")
	require.True(t, ok)
	assert.Equal(t, 1, got)
	before.Set("b", 2)
	_, ok = sibling.Value("b")
	assert.True(t, ok)

	// Handles issued after the reset start fresh
	after := states.Handle("cfg")
	assert.Equal(t, 0, after.State().Len())
	assert.NotSame(t, before.State(), after.State())
}

func TestStateRegistry_ResetAll(t *testing.T) {
	states := NewStateRegistry()
	states.HandleWith("a", map[string]any{"x": 1})
	states.HandleWith("b", map[string]any{"y": 2})
	require.Equal(t, 2, states.Len())

	states.ResetAll()
	assert.Equal(t, 0, states.Len())
}

func TestHandle_StringEmpty(t *testing.T) {
	states := NewStateRegistry()
	h := states.Handle("empty")

	assert.Equal(t, "empty{}", h.String())
}

func TestHandle_Key(t *testing.T) {
	states := NewStateRegistry()
	h := states.Handle("protocols")
	assert.Equal(t, "protocols", h.Key())
}

func TestStateRegistry_IndependentKeys(t *testing.T) {
	states := NewStateRegistry()

	a := states.HandleWith("first", map[string]any{"x": 1})
	b := states.Handle("second")

	_, ok := b.Value("x")
	assert.False(t, ok, "records for different keys must not share state")
	assert.NotSame(t, a.State(), b.State())
}

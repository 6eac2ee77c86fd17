package sessionstore_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innobit-io/lushus-session/core/session"
	"github.com/innobit-io/lushus-session/core/sessionstore"
)

func TestMemoryStore_GenerateKey(t *testing.T) {
	t.Parallel()

	store := sessionstore.NewMemoryStore()
	ctx := context.Background()

	first, err := store.GenerateKey(ctx)
	require.NoError(t, err)
	second, err := store.GenerateKey(ctx)
	require.NoError(t, err)

	assert.False(t, first.IsZero())
	assert.NotEqual(t, first, second)
}

func TestMemoryStore_LoadAbsentKey(t *testing.T) {
	t.Parallel()

	store := sessionstore.NewMemoryStore()

	state, ok, err := store.Load(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, state)
}

func TestMemoryStore_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	store := sessionstore.NewMemoryStore()
	ctx := context.Background()

	state := session.NewState()
	require.NoError(t, session.InsertValue(state, "user", map[string]string{"username": "brandon"}))
	require.NoError(t, session.InsertValue(state, "count", 7))

	require.NoError(t, store.Save(ctx, "k", state))

	loaded, ok, err := store.Load(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, loaded.Equal(state))
}

func TestMemoryStore_SaveReplacesWholeState(t *testing.T) {
	t.Parallel()

	store := sessionstore.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "k", session.State{"a": `1`, "b": `2`}))
	require.NoError(t, store.Save(ctx, "k", session.State{"c": `3`}))

	loaded, ok, err := store.Load(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)

	// The whole blob is the unit of persistence: no merge with prior state.
	assert.True(t, loaded.Equal(session.State{"c": `3`}))
}

func TestMemoryStore_IsolatesStateCopies(t *testing.T) {
	t.Parallel()

	store := sessionstore.NewMemoryStore()
	ctx := context.Background()

	state := session.State{"k": `"v"`}
	require.NoError(t, store.Save(ctx, "key", state))

	// Mutating the caller's map after Save must not leak into the store.
	state.StorageStore("k", `"mutated"`)

	loaded, ok, err := store.Load(ctx, "key")
	require.NoError(t, err)
	require.True(t, ok)
	value, _ := loaded.StorageLoad("k")
	assert.Equal(t, `"v"`, value)

	// Mutating a loaded copy must not leak into the store either.
	loaded.StorageStore("k", `"mutated again"`)
	reloaded, _, err := store.Load(ctx, "key")
	require.NoError(t, err)
	value, _ = reloaded.StorageLoad("k")
	assert.Equal(t, `"v"`, value)
}

func TestMemoryStore_Remove(t *testing.T) {
	t.Parallel()

	store := sessionstore.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "k", session.State{"a": `1`}))
	require.NoError(t, store.Remove(ctx, "k"))

	_, ok, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key is not an error.
	require.NoError(t, store.Remove(ctx, "k"))
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := sessionstore.NewMemoryStore()
	ctx := context.Background()

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		i := i
		go func() {
			defer wg.Done()
			key := session.Key(fmt.Sprintf("key-%d", i))
			state := session.State{"n": fmt.Sprintf(`%d`, i)}

			if err := store.Save(ctx, key, state); err != nil {
				t.Error(err)
				return
			}
			loaded, ok, err := store.Load(ctx, key)
			if err != nil || !ok {
				t.Errorf("load %s: ok=%v err=%v", key, ok, err)
				return
			}
			if !loaded.Equal(state) {
				t.Errorf("state mismatch for %s", key)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, store.Len())
}

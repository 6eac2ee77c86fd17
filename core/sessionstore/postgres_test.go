package sessionstore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innobit-io/lushus-session/core/session"
	"github.com/innobit-io/lushus-session/core/sessionstore"
)

// newPostgresPool connects to the database named by TEST_POSTGRES_URL and
// applies the session schema, or skips the test when none is configured.
func newPostgresPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("TEST_POSTGRES_URL is not set; skipping Postgres integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, sessionstore.PostgresSchema)
	require.NoError(t, err)

	return pool
}

func TestNewPostgresStore_RequiresPool(t *testing.T) {
	t.Parallel()

	_, err := sessionstore.NewPostgresStore(nil)
	assert.ErrorIs(t, err, sessionstore.ErrMissingClient)
}

func TestPostgresStore_BackendScenario(t *testing.T) {
	t.Parallel()

	pool := newPostgresPool(t)
	store, err := sessionstore.NewPostgresStore(pool, sessionstore.WithPostgresTTL(time.Minute))
	require.NoError(t, err)
	ctx := context.Background()

	key, err := store.GenerateKey(ctx)
	require.NoError(t, err)

	state := session.NewState()
	require.NoError(t, session.InsertValue(state, "user", map[string]string{"username": "brandon", "password": "hunter2"}))

	require.NoError(t, store.Save(ctx, key, state))

	loaded, ok, err := store.Load(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, loaded.Equal(state))

	// Save replaces the whole row.
	require.NoError(t, store.Save(ctx, key, session.State{"only": `1`}))
	loaded, ok, err = store.Load(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, loaded.Equal(session.State{"only": `1`}))

	require.NoError(t, store.Remove(ctx, key))
	_, ok, err = store.Load(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key is not an error.
	require.NoError(t, store.Remove(ctx, key))
}

func TestPostgresStore_ExpiredRowIsAbsent(t *testing.T) {
	t.Parallel()

	pool := newPostgresPool(t)
	store, err := sessionstore.NewPostgresStore(pool, sessionstore.WithPostgresTTL(time.Millisecond))
	require.NoError(t, err)
	ctx := context.Background()

	key, err := store.GenerateKey(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, key, session.State{"a": `1`}))

	time.Sleep(50 * time.Millisecond)

	_, ok, err := store.Load(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	removed, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, removed, int64(1))
}

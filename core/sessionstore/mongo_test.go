package sessionstore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/innobit-io/lushus-session/core/session"
	"github.com/innobit-io/lushus-session/core/sessionstore"
)

// newMongoCollection connects to the deployment named by TEST_MONGO_URL and
// returns a per-test collection, or skips the test when none is configured.
func newMongoCollection(t *testing.T) *mongo.Collection {
	t.Helper()

	url := os.Getenv("TEST_MONGO_URL")
	if url == "" {
		t.Skip("TEST_MONGO_URL is not set; skipping MongoDB integration test")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(url))
	require.NoError(t, err)

	collection := client.Database("lushus_test").Collection("sessions_" + uuid.NewString())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = collection.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return collection
}

func TestNewMongoStore_RequiresCollection(t *testing.T) {
	t.Parallel()

	_, err := sessionstore.NewMongoStore(nil)
	assert.ErrorIs(t, err, sessionstore.ErrMissingClient)
}

func TestMongoStore_BackendScenario(t *testing.T) {
	t.Parallel()

	collection := newMongoCollection(t)
	store, err := sessionstore.NewMongoStore(collection, sessionstore.WithMongoTTL(time.Minute))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.EnsureIndexes(ctx))

	key, err := store.GenerateKey(ctx)
	require.NoError(t, err)

	state := session.NewState()
	require.NoError(t, session.InsertValue(state, "user", map[string]string{"username": "brandon", "password": "hunter2"}))

	require.NoError(t, store.Save(ctx, key, state))

	loaded, ok, err := store.Load(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, loaded.Equal(state))

	// Save replaces the whole document.
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

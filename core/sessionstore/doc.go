// Package sessionstore provides concrete session.Store implementations:
// in-memory, Redis, Postgres and MongoDB.
//
// All stores satisfy the same contract: whole-state blobs keyed by the opaque
// session key, absent keys reported without error, corrupt blobs reported as
// ErrCorruptState, and last-save-wins semantics under concurrent access. TTL
// and namespacing are store-level policy, configured per store with
// functional options.
//
// # Choosing a store
//
// MemoryStore suits tests and single-process development:
//
//	store := sessionstore.NewMemoryStore(sessionstore.WithMemoryTTL(time.Hour))
//
// RedisStore is the production default for request-scoped session state; the
// blob lives under a namespaced key with a TTL refreshed on every save:
//
//	client, err := redis.Connect(ctx, cfg) // integration/database/redis
//	if err != nil {
//		log.Fatal(err)
//	}
//	store, err := sessionstore.NewRedisStore(client,
//		sessionstore.WithRedisNamespace("myapp:session"),
//		sessionstore.WithRedisTTL(12*time.Hour),
//	)
//
// PostgresStore keeps sessions next to relational data (apply PostgresSchema
// first); MongoStore does the same for MongoDB deployments and can install
// its own TTL index via EnsureIndexes.
//
// Every store composes with the session manager the same way:
//
//	manager, err := session.NewManager(store)
package sessionstore

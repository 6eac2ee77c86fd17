package session

import "context"

// Store is the persistence contract a backend implements to bridge session
// state to a durable or remote system, keyed by Key. Implementations must be
// safe for concurrent use from multiple goroutines; they never retain a
// Session, only State values.
//
// The contract is deliberately last-save-wins: two concurrent request flows
// that load, mutate and save the same key will end with the later save's
// state. No compare-and-swap is provided.
type Store interface {
	// GenerateKey produces a fresh, currently-unused key.
	GenerateKey(ctx context.Context) (Key, error)
	// Load fetches the state stored under key. An absent key is not an
	// error: Load returns (nil, false, nil) and callers default-construct.
	// A stored blob that fails to decode is an error, not an empty state.
	Load(ctx context.Context, key Key) (State, bool, error)
	// Save writes the whole state under key, fully replacing any prior
	// value. Implementations may set or refresh an expiration as part of
	// the write.
	Save(ctx context.Context, key Key, state State) error
	// Remove deletes the entry for key. Removing an absent key is not an
	// error.
	Remove(ctx context.Context, key Key) error
}

package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/innobit-io/lushus-session/core/session"
)

const memoryKeyAttempts = 5

// MemoryStore is an in-process session.Store for development and tests. It is
// safe for concurrent use and deep-copies state on both sides of the
// persistence boundary, so a saved session cannot be mutated through a map
// the caller still holds.
//
// Keys are UUID strings rather than opaque random tokens: readable in dev
// logs, and still unique. Do not use MemoryStore where the key doubles as a
// bearer credential across trust boundaries.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[session.Key]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

type memoryEntry struct {
	state     session.State
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithMemoryTTL sets the entry lifetime refreshed on every Save. Zero (the
// default) disables expiration.
func WithMemoryTTL(ttl time.Duration) MemoryOption {
	return func(s *MemoryStore) {
		s.ttl = ttl
	}
}

// withMemoryClock overrides the time source; tests use it to expire entries
// without sleeping.
func withMemoryClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[session.Key]memoryEntry),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateKey mints a fresh key not currently present in the store.
func (s *MemoryStore) GenerateKey(ctx context.Context) (session.Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < memoryKeyAttempts; i++ {
		key := session.Key(uuid.NewString())
		if _, ok := s.sessions[key]; !ok {
			return key, nil
		}
	}
	return "", ErrKeySpaceExhausted
}

// Load returns a copy of the state stored under key. Expired entries are
// evicted lazily and reported as absent.
func (s *MemoryStore) Load(ctx context.Context, key session.Key) (session.State, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[key]
	if !ok {
		return nil, false, nil
	}
	if entry.expired(s.now()) {
		delete(s.sessions, key)
		return nil, false, nil
	}
	return entry.state.Clone(), true, nil
}

// Save stores a copy of state under key, replacing any prior entry and
// refreshing its expiration.
func (s *MemoryStore) Save(ctx context.Context, key session.Key, state session.State) error {
	entry := memoryEntry{state: state.Clone()}
	if s.ttl > 0 {
		entry.expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.sessions[key] = entry
	s.mu.Unlock()
	return nil
}

// Remove deletes the entry for key. Removing an absent key is a no-op.
func (s *MemoryStore) Remove(ctx context.Context, key session.Key) error {
	s.mu.Lock()
	delete(s.sessions, key)
	s.mu.Unlock()
	return nil
}

// DeleteExpired evicts every expired entry and returns the count removed.
// MemoryStore also evicts lazily on Load, so calling this is optional.
func (s *MemoryStore) DeleteExpired(ctx context.Context) int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, entry := range s.sessions {
		if entry.expired(now) {
			delete(s.sessions, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of stored entries, including not-yet-evicted
// expired ones.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

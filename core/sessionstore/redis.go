package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/innobit-io/lushus-session/core/session"
)

const (
	defaultRedisNamespace = "session"
	defaultRedisTTL       = 24 * time.Hour
	redisKeyAttempts      = 5
)

// RedisStore persists session state in Redis, one JSON blob per session under
// a namespaced key. Entries expire via Redis TTL, refreshed on every Save.
//
// The store is safe for concurrent callers but provides no cross-request
// atomicity beyond last-save-wins, matching the session.Store contract.
type RedisStore struct {
	client    redis.UniversalClient
	namespace string
	ttl       time.Duration
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithRedisNamespace sets the prefix applied to every backend key. The
// default is "session". The prefix is applied exactly once per key.
func WithRedisNamespace(namespace string) RedisOption {
	return func(s *RedisStore) {
		if namespace != "" {
			s.namespace = namespace
		}
	}
}

// WithRedisTTL sets the entry lifetime refreshed on every Save. Zero disables
// expiration; the default is 24 hours.
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		s.ttl = ttl
	}
}

// NewRedisStore creates a store on top of an existing Redis client. The
// caller owns the client's lifecycle; see integration/database/redis for
// connection bootstrap.
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) (*RedisStore, error) {
	if client == nil {
		return nil, ErrMissingClient
	}

	s := &RedisStore{
		client:    client,
		namespace: defaultRedisNamespace,
		ttl:       defaultRedisTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *RedisStore) backendKey(key session.Key) string {
	return s.namespace + ":" + key.String()
}

// GenerateKey mints a fresh key and verifies it is unused in the backend.
func (s *RedisStore) GenerateKey(ctx context.Context) (session.Key, error) {
	for i := 0; i < redisKeyAttempts; i++ {
		key, err := session.NewKey()
		if err != nil {
			return "", err
		}
		n, err := s.client.Exists(ctx, s.backendKey(key)).Result()
		if err != nil {
			return "", fmt.Errorf("check key existence: %w", err)
		}
		if n == 0 {
			return key, nil
		}
	}
	return "", ErrKeySpaceExhausted
}

// Load fetches and decodes the state blob for key. A missing key returns
// (nil, false, nil); a blob that fails to decode is reported as corrupt.
func (s *RedisStore) Load(ctx context.Context, key session.Key) (session.State, bool, error) {
	raw, err := s.client.Get(ctx, s.backendKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load session state: %w", err)
	}

	var state session.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, false, errors.Join(ErrCorruptState, err)
	}
	return state, true, nil
}

// Save encodes the whole state and writes it under key in a single SET,
// replacing any prior blob and refreshing the TTL.
func (s *RedisStore) Save(ctx context.Context, key session.Key, state session.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return errors.Join(ErrEncodeState, err)
	}
	if err := s.client.Set(ctx, s.backendKey(key), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session state: %w", err)
	}
	return nil
}

// Remove deletes the entry for key. Removing an absent key is a no-op.
func (s *RedisStore) Remove(ctx context.Context, key session.Key) error {
	if err := s.client.Del(ctx, s.backendKey(key)).Err(); err != nil {
		return fmt.Errorf("remove session state: %w", err)
	}
	return nil
}

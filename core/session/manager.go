package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/innobit-io/lushus-session/pkg/logger"
)

// Manager coordinates the session lifecycle against a Store: minting keys,
// loading state into sessions and committing them back. Commit implements
// the status-driven write policy — destroyed sessions are removed, changed
// sessions are saved, clean sessions skip the backend entirely.
type Manager struct {
	store Store
	log   *slog.Logger
}

// NewManager creates a manager backed by store.
func NewManager(store Store, opts ...Option) (*Manager, error) {
	if store == nil {
		return nil, ErrMissingStore
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Manager{
		store: store,
		log:   cfg.log,
	}, nil
}

// Start mints a fresh key and pairs it with a new empty session.
func (m *Manager) Start(ctx context.Context) (Key, *Session, error) {
	key, err := m.store.GenerateKey(ctx)
	if err != nil {
		return "", nil, errors.Join(ErrKeyGeneration, err)
	}
	return key, New(), nil
}

// Load fetches the state stored under key and wraps it in a session. An
// absent key yields a fresh empty session rather than an error, so callers
// can treat new and returning sessions uniformly.
func (m *Manager) Load(ctx context.Context, key Key) (*Session, error) {
	state, ok, err := m.store.Load(ctx, key)
	if err != nil {
		return nil, errors.Join(ErrLoadSession, err)
	}
	if !ok {
		return New(), nil
	}
	return FromState(state), nil
}

// Commit persists the session according to its status: a destroyed session's
// backend entry is removed, a changed session's state is saved in full, and
// a clean session causes no backend call at all.
func (m *Manager) Commit(ctx context.Context, key Key, sess *Session) error {
	switch {
	case !sess.Active():
		if err := m.store.Remove(ctx, key); err != nil {
			return errors.Join(ErrRemoveSession, err)
		}
		m.log.DebugContext(ctx, "session removed", logger.SessionKey(key.String()))
	case sess.Status() == StatusChanged:
		if err := m.store.Save(ctx, key, sess.State()); err != nil {
			return errors.Join(ErrSaveSession, err)
		}
		m.log.DebugContext(ctx, "session saved", logger.SessionKey(key.String()))
	default:
		m.log.DebugContext(ctx, "session clean, skipping save", logger.SessionKey(key.String()))
	}
	return nil
}

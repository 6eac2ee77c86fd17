package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/innobit-io/lushus-session/core/session"
)

const (
	defaultPostgresTable = "sessions"
	defaultPostgresTTL   = 24 * time.Hour
	postgresKeyAttempts  = 5
)

// PostgresSchema is the table PostgresStore expects, with the default table
// name. Apply it with your migration tooling before first use.
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS sessions (
    key        TEXT PRIMARY KEY,
    state      JSONB NOT NULL,
    expires_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS sessions_expires_at_idx ON sessions (expires_at);
`

// PostgresStore persists session state in a single Postgres table, one JSONB
// blob per session. Expired rows are treated as absent on Load and reaped by
// DeleteExpired.
type PostgresStore struct {
	pool  *pgxpool.Pool
	table string
	ttl   time.Duration

	loadQuery    string
	saveQuery    string
	removeQuery  string
	existsQuery  string
	expiredQuery string
}

// PostgresOption configures a PostgresStore.
type PostgresOption func(*PostgresStore)

// WithPostgresTable sets the table name. The default is "sessions"; a custom
// name requires the matching schema.
func WithPostgresTable(table string) PostgresOption {
	return func(s *PostgresStore) {
		if table != "" {
			s.table = table
		}
	}
}

// WithPostgresTTL sets the row lifetime refreshed on every Save.
// The default is 24 hours.
func WithPostgresTTL(ttl time.Duration) PostgresOption {
	return func(s *PostgresStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewPostgresStore creates a store on top of an existing connection pool. The
// caller owns the pool's lifecycle and is responsible for applying
// PostgresSchema.
func NewPostgresStore(pool *pgxpool.Pool, opts ...PostgresOption) (*PostgresStore, error) {
	if pool == nil {
		return nil, ErrMissingClient
	}

	s := &PostgresStore{
		pool:  pool,
		table: defaultPostgresTable,
		ttl:   defaultPostgresTTL,
	}
	for _, opt := range opts {
		opt(s)
	}

	// The table name is fixed at construction, so queries are built once.
	s.loadQuery = fmt.Sprintf(
		`SELECT state FROM %s WHERE key = $1 AND expires_at > now()`, s.table)
	s.saveQuery = fmt.Sprintf(
		`INSERT INTO %s (key, state, expires_at) VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET state = EXCLUDED.state, expires_at = EXCLUDED.expires_at`, s.table)
	s.removeQuery = fmt.Sprintf(
		`DELETE FROM %s WHERE key = $1`, s.table)
	s.existsQuery = fmt.Sprintf(
		`SELECT EXISTS (SELECT 1 FROM %s WHERE key = $1)`, s.table)
	s.expiredQuery = fmt.Sprintf(
		`DELETE FROM %s WHERE expires_at <= now()`, s.table)

	return s, nil
}

// GenerateKey mints a fresh key and verifies no live or expired row uses it.
func (s *PostgresStore) GenerateKey(ctx context.Context) (session.Key, error) {
	for i := 0; i < postgresKeyAttempts; i++ {
		key, err := session.NewKey()
		if err != nil {
			return "", err
		}
		var exists bool
		if err := s.pool.QueryRow(ctx, s.existsQuery, key.String()).Scan(&exists); err != nil {
			return "", fmt.Errorf("check key existence: %w", err)
		}
		if !exists {
			return key, nil
		}
	}
	return "", ErrKeySpaceExhausted
}

// Load fetches and decodes the state for key. Missing and expired rows both
// return (nil, false, nil); a row that fails to decode is reported as corrupt.
func (s *PostgresStore) Load(ctx context.Context, key session.Key) (session.State, bool, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, s.loadQuery, key.String()).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
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

// Save upserts the whole state under key, refreshing the row's expiration.
func (s *PostgresStore) Save(ctx context.Context, key session.Key, state session.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return errors.Join(ErrEncodeState, err)
	}
	expiresAt := time.Now().Add(s.ttl)
	if _, err := s.pool.Exec(ctx, s.saveQuery, key.String(), raw, expiresAt); err != nil {
		return fmt.Errorf("save session state: %w", err)
	}
	return nil
}

// Remove deletes the row for key. Removing an absent key is a no-op.
func (s *PostgresStore) Remove(ctx context.Context, key session.Key) error {
	if _, err := s.pool.Exec(ctx, s.removeQuery, key.String()); err != nil {
		return fmt.Errorf("remove session state: %w", err)
	}
	return nil
}

// DeleteExpired removes every expired row and returns the count removed.
// Call it periodically; expired rows are otherwise only filtered, not reaped.
func (s *PostgresStore) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, s.expiredQuery)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

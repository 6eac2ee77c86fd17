package session_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innobit-io/lushus-session/core/session"
)

func TestNewKey_ShapeAndCharset(t *testing.T) {
	t.Parallel()

	key, err := session.NewKey()
	require.NoError(t, err)

	// 32 bytes base64url without padding.
	assert.Len(t, key.String(), 43)
	assert.Regexp(t, regexp.MustCompile(`^[A-Za-z0-9_-]+$`), key.String())
	assert.False(t, key.IsZero())
}

func TestNewKey_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[session.Key]struct{})
	for i := 0; i < 100; i++ {
		key, err := session.NewKey()
		require.NoError(t, err)
		_, dup := seen[key]
		require.False(t, dup)
		seen[key] = struct{}{}
	}
}

func TestKey_IsZero(t *testing.T) {
	t.Parallel()

	var key session.Key
	assert.True(t, key.IsZero())
	assert.Equal(t, "", key.String())
}

package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

// keyBytes is the entropy of a minted key: 32 bytes (256 bits), enough for a
// key used directly as a bearer credential.
const keyBytes = 32

// Key is the opaque identifier a Store uses to look up session state. It is
// an immutable value with a stable string form; nothing in the core ever
// inspects its contents.
type Key string

// NewKey mints a cryptographically unpredictable key: 32 random bytes encoded
// as base64 URL-safe without padding.
func NewKey() (Key, error) {
	b := make([]byte, keyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrKeyGeneration, err)
	}
	return Key(base64.RawURLEncoding.EncodeToString(b)), nil
}

func (k Key) String() string {
	return string(k)
}

// IsZero reports whether the key is empty.
func (k Key) IsZero() bool {
	return k == ""
}

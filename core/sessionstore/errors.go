package sessionstore

import "errors"

var (
	// ErrCorruptState is returned when a stored session blob cannot be
	// decoded. A corrupt entry is never silently treated as an empty state.
	ErrCorruptState = errors.New("corrupt session state in store")
	// ErrEncodeState is returned when session state cannot be encoded for
	// persistence.
	ErrEncodeState = errors.New("failed to encode session state")
	// ErrKeySpaceExhausted is returned when key generation repeatedly
	// collides with existing entries.
	ErrKeySpaceExhausted = errors.New("could not mint an unused session key")
	// ErrMissingClient is returned when a store is constructed without a
	// backend client.
	ErrMissingClient = errors.New("backend client is required")
)

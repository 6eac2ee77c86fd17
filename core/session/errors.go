package session

import "errors"

var (
	// ErrSessionDestroyed is returned when any read or mutation is attempted
	// on a session that has been destroyed.
	ErrSessionDestroyed = errors.New("session is destroyed")
	// ErrSerialize is returned when a value cannot be encoded for storage.
	ErrSerialize = errors.New("failed to serialize session value")
	// ErrDeserialize is returned when a stored value cannot be decoded as the
	// requested type.
	ErrDeserialize = errors.New("failed to deserialize session value")
	// ErrKeyGeneration is returned when minting a session key fails.
	ErrKeyGeneration = errors.New("failed to generate session key")
	// ErrMissingStore is returned when a manager is constructed without a store.
	ErrMissingStore = errors.New("session store is required")
	// ErrLoadSession is returned when loading session state from the store fails.
	ErrLoadSession = errors.New("failed to load session state")
	// ErrSaveSession is returned when saving session state to the store fails.
	ErrSaveSession = errors.New("failed to save session state")
	// ErrRemoveSession is returned when removing session state from the store fails.
	ErrRemoveSession = errors.New("failed to remove session state")
)

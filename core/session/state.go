package session

import "maps"

// State is the raw, persistable payload of a session: a mapping from string
// key to the JSON encoding of an arbitrary typed value. It is the unit a
// Store saves and loads verbatim; the whole map always replaces the stored
// blob, never merges into it.
//
// State serializes as a plain JSON object, so each stored value carries one
// extra layer of string encoding: {"user":"{\"username\":\"brandon\"}"}.
// Decoding the encoded form yields an equal State for every reachable state.
type State map[string]string

// NewState returns an empty session state.
func NewState() State {
	return make(State)
}

// StorageLoad implements Storage[string].
func (s State) StorageLoad(key string) (string, bool) {
	value, ok := s[key]
	return value, ok
}

// StorageStore implements Storage[string]. An existing value under key is
// fully replaced.
func (s State) StorageStore(key, value string) {
	s[key] = value
}

// StorageDelete implements Storage[string]. It reports the removed value, if
// any; deleting an absent key is a no-op.
func (s State) StorageDelete(key string) (string, bool) {
	value, ok := s[key]
	if ok {
		delete(s, key)
	}
	return value, ok
}

// Clone returns an independent copy of the state. Store implementations use
// it to keep the session's exclusive ownership intact across the persistence
// boundary.
func (s State) Clone() State {
	if s == nil {
		return NewState()
	}
	return maps.Clone(s)
}

// Equal reports whether two states hold exactly the same keys and encoded
// values. Nil and empty states are equal.
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	return maps.Equal(s, other)
}

package session

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Storage is the raw string-encoded surface the typed value functions operate
// on. It is generic over the key type so the same codec layer works for any
// keyed container; State implements Storage[string].
type Storage[K comparable] interface {
	// StorageLoad returns the encoded value stored under key, if any.
	StorageLoad(key K) (string, bool)
	// StorageStore stores an encoded value under key, replacing any prior value.
	StorageStore(key K, value string)
	// StorageDelete removes the value stored under key and returns it, if any.
	StorageDelete(key K) (string, bool)
}

// InsertValue encodes value as JSON and stores it under key, unconditionally
// overwriting any prior value. A value that cannot be encoded yields
// ErrSerialize and leaves the storage untouched.
func InsertValue[K comparable, T any](s Storage[K], key K, value T) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return errors.Join(ErrSerialize, fmt.Errorf("key %v: %w", key, err))
	}
	s.StorageStore(key, string(encoded))
	return nil
}

// GetValue decodes the value stored under key as T. An absent key is not an
// error: it returns the zero T and false. A present value that does not
// decode as T yields ErrDeserialize; the stored value is left untouched.
func GetValue[K comparable, T any](s Storage[K], key K) (T, bool, error) {
	var value T
	encoded, ok := s.StorageLoad(key)
	if !ok {
		return value, false, nil
	}
	if err := json.Unmarshal([]byte(encoded), &value); err != nil {
		var zero T
		return zero, false, errors.Join(ErrDeserialize, fmt.Errorf("key %v: %w", key, err))
	}
	return value, true, nil
}

// RemoveValue removes the value stored under key and decodes it as T. An
// absent key returns the zero T and false with no error.
//
// The removal is unconditional: if the stored value does not decode as T the
// slot is still cleared and ErrDeserialize is returned. Callers that need the
// payload of a mistyped slot must Get it first with the right type.
func RemoveValue[K comparable, T any](s Storage[K], key K) (T, bool, error) {
	var value T
	encoded, ok := s.StorageDelete(key)
	if !ok {
		return value, false, nil
	}
	if err := json.Unmarshal([]byte(encoded), &value); err != nil {
		var zero T
		return zero, false, errors.Join(ErrDeserialize, fmt.Errorf("key %v: %w", key, err))
	}
	return value, true, nil
}

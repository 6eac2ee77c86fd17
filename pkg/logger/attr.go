// Package logger provides slog attribute helpers shared across the module.
//
// Helpers return an empty Attr when given a nil or empty input, so call sites
// never need their own nil checks:
//
//	log.Info("commit failed", logger.Error(err), logger.SessionKey(key))
package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups multiple non-nil errors under the key "errors", keyed by
// position to preserve order. Returns an empty Attr when all are nil.
func Errors(errs ...error) slog.Attr {
	count := 0
	for _, err := range errs {
		if err != nil {
			count++
		}
	}
	if count == 0 {
		return slog.Attr{}
	}

	as := make([]slog.Attr, 0, count)
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Duration creates an attribute for a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// SessionKey creates an attribute for a session key under the key
// "session_key". Returns an empty Attr for an empty key.
func SessionKey(key string) slog.Attr {
	if key == "" {
		return slog.Attr{}
	}
	return slog.String("session_key", key)
}

// ID creates an attribute for a generic identifier with a custom key.
// Returns an empty Attr for nil values.
func ID(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}

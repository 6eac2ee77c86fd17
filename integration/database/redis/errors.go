package redis

import "errors"

// Connection errors, checkable with errors.Is for retry logic and
// user-facing messages.
var (
	ErrEmptyConnectionURL      = errors.New("empty redis connection URL")
	ErrFailedToParseConnString = errors.New("failed to parse redis connection string")
	ErrNotReady                = errors.New("redis did not become ready within the given time period")
	ErrHealthcheckFailed       = errors.New("redis healthcheck failed")
)

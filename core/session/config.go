package session

import (
	"io"
	"log/slog"
)

type config struct {
	log *slog.Logger
}

func defaultConfig() *config {
	return &config{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option is a functional option for configuring the session manager.
type Option func(*config)

// WithLogger sets the logger the manager uses for lifecycle events. The
// default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

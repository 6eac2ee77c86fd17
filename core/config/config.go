package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParseConfig is returned when environment variables cannot be parsed
// into the target struct.
var ErrParseConfig = errors.New("failed to parse config from environment")

var (
	cache      sync.Map // reflect.Type -> parsed config value
	dotenvOnce sync.Once
)

// Load populates cfg from environment variables using its env struct tags.
// A .env file in the working directory is loaded once per process before the
// first parse; a missing file is not an error.
//
// Each config type is parsed only once per process and cached, so repeated
// loads of the same type are cheap and always observe identical values.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config pointer", ErrParseConfig)
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParseConfig, err)
	}

	// LoadOrStore keeps the first parsed value authoritative if two
	// goroutines race on the same type.
	cached, _ := cache.LoadOrStore(key, *cfg)
	*cfg = cached.(T)
	return nil
}

// MustLoad is Load that panics on failure. Intended for application startup
// where a missing required variable should abort the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

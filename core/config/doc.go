// Package config provides type-safe environment variable loading with
// per-type caching using Go generics.
//
// A .env file is auto-loaded on first use; parsing is delegated to the
// caarlos0/env library via `env:` struct tags:
//
//	import "github.com/innobit-io/lushus-session/core/config"
//
//	type RedisConfig struct {
//		ConnectionURL string        `env:"REDIS_URL,required"`
//		TTL           time.Duration `env:"SESSION_TTL" envDefault:"24h"`
//	}
//
//	var cfg RedisConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during startup:
//	config.MustLoad(&cfg)
//
// Each configuration type is parsed once per process and cached; later loads
// of the same type return the cached value, so every component observes the
// same configuration regardless of load order.
package config

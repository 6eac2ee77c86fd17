// Package redis provides Redis client bootstrap for the session stores:
// connection establishment with retry and verification, plus a health probe.
//
// Configuration maps directly from environment variables:
//
//	type Config struct {
//		ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
//		RetryAttempts  uint64        `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
//		ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
//	}
//
// Both redis:// and rediss:// (TLS) URL schemes are accepted. Connect parses
// the URL, dials, and verifies connectivity with a ping under exponential
// backoff before returning the client:
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	store, err := sessionstore.NewRedisStore(client)
//
// Healthcheck returns a probe closure for readiness endpoints:
//
//	check := redis.Healthcheck(client)
//	if err := check(ctx); err != nil {
//		// report unhealthy
//	}
//
// Failures surface as stable sentinel errors (ErrEmptyConnectionURL,
// ErrFailedToParseConnString, ErrNotReady, ErrHealthcheckFailed) wrapping the
// underlying go-redis error, so callers can branch with errors.Is.
package redis

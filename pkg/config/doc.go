// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 behind a
// small API:
//
//   - Load parses the environment into any struct using `env` field tags.
//   - Each configuration type is parsed once per process and then served
//     from an in-memory cache, safe for concurrent use.
//   - LoadEnv loads one or more explicit .env files; the default .env in the
//     working directory is picked up automatically on first Load.
//   - MustLoad panics on failure for configuration the process cannot start
//     without.
//   - ResetCache clears the cache, which tests use after mutating the
//     environment.
//
// # Usage
//
//	type ServerConfig struct {
//	    Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
//	    ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
//	    Env             string        `env:"APP_ENV" envDefault:"development"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// # Error Handling
//
// Sentinel errors support errors.Is:
//
//   - ErrParsingConfig - env vars could not be parsed into the struct
//   - ErrLoadingEnvFiles - an explicit .env file could not be read
//   - ErrConfigNotLoaded - cache lookup failed after a load attempt
//   - ErrNilPointer - nil pointer passed to Load or MustLoad
package config

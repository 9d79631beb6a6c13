// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Loads values from one or multiple `.env` files (the `.env` file in the
//     working directory is picked up automatically on first use).
//   - Parses the environment into any Go struct using field tags.
//   - Caches each successfully loaded configuration type so it is only parsed
//     once for the lifetime of the process. A failed parse is not cached, so a
//     later call can succeed once the environment is fixed.
//   - Exposes helpers that panic on failure (`MustLoadEnv`, `MustLoad`) for
//     scenarios where configuration is critical.
//
// # Usage
//
//	type Config struct {
//	    Env         string   `env:"BABOU_ENV" envDefault:"development"`
//	    LogLevel    string   `env:"BABOU_LOG_LEVEL" envDefault:"info"`
//	    KeepParams  []string `env:"BABOU_KEEP_PARAMS" envDefault:"id" envSeparator:","`
//	}
//
//	import "github.com/ajtatum/BabouExtensions/pkg/config"
//
//	func main() {
//	    if err := config.LoadEnv("./config/.env"); err != nil {
//	        log.Fatalf("loading env: %v", err)
//	    }
//
//	    var cfg Config
//	    if err := config.Load(&cfg); err != nil {
//	        log.Fatalf("parsing env: %v", err)
//	    }
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig` – failed to parse env vars into struct.
//   - `ErrConfigNotLoaded` – `Cached` was asked for a type never loaded.
//   - `ErrNilPointer` – nil pointer passed to `Load`/`MustLoad`.
//   - `ErrLoadingEnvFile` – a `.env` file passed to `LoadEnv` could not be read.
//
// # Testing Helpers
//
// Use `Reset()` to clear the cache after the process environment changes.
// `LoadEnv` resets the cache on its own.
package config

package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores one parsed value per configuration type.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
}

var (
	globalCache = &configCache{
		values: make(map[string]any),
	}

	defaultEnvMu     sync.Mutex
	defaultEnvLoaded bool
)

// Load parses environment variables into v based on its `env` field tags.
// Each configuration type is parsed once; later calls for the same type are
// served from the cache until Reset is called.
//
// The first call also loads a .env file from the working directory when one
// exists. Variables already present in the environment win over the file.
//
// Example:
//
//	type Config struct {
//		LogLevel string `env:"BABOU_LOG_LEVEL" envDefault:"info"`
//		Secret   string `env:"BABOU_SECRET"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	loadDefaultEnv()

	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	if cached, ok := lookup[T](typeName); ok {
		*v = cached
		return nil
	}

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	// Another goroutine may have parsed it while we waited for the lock.
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	globalCache.values[typeName] = parsed
	*v = parsed

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// Cached copies the already loaded configuration of type T into v. It
// returns ErrConfigNotLoaded when Load has not succeeded for T yet.
func Cached[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	cached, ok := lookup[T](getTypeName[T]())
	if !ok {
		return ErrConfigNotLoaded
	}
	*v = cached
	return nil
}

// LoadEnv loads the given .env files into the process environment, or the
// .env file in the working directory when no path is given. Later files do
// not override values set by earlier files or by the environment itself.
// It clears the cache so subsequent Load calls see the new values.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}

	defaultEnvMu.Lock()
	defaultEnvLoaded = true
	defaultEnvMu.Unlock()

	Reset()
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// Reset drops every cached configuration. Mostly useful in tests.
func Reset() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.mu.Unlock()
}

func loadDefaultEnv() {
	defaultEnvMu.Lock()
	defer defaultEnvMu.Unlock()

	if defaultEnvLoaded {
		return
	}
	defaultEnvLoaded = true

	// The .env file is optional.
	_ = godotenv.Load()
}

func lookup[T any](typeName string) (T, bool) {
	globalCache.mu.RLock()
	defer globalCache.mu.RUnlock()

	cached, ok := globalCache.values[typeName]
	if !ok {
		var zero T
		return zero, false
	}
	return cached.(T), true
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	t := reflect.TypeFor[T]()
	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}

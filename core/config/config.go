package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrNilConfig is returned when Load is called with a nil pointer.
	ErrNilConfig = errors.New("config: nil config pointer")
	// ErrParseFailed wraps environment parsing failures.
	ErrParseFailed = errors.New("config: failed to parse environment")
)

var (
	cache   sync.Map // reflect.Type -> loaded value
	envOnce sync.Once
)

// Load populates cfg from environment variables. The first call for a given
// type parses the environment; later calls return the cached value so every
// consumer observes identical configuration. A .env file in the working
// directory is applied once, silently skipped when missing.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	envOnce.Do(func() {
		// Missing .env files are expected outside local development.
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParseFailed, err)
	}

	// LoadOrStore keeps the first successfully parsed value when two
	// goroutines race on the same type.
	actual, _ := cache.LoadOrStore(typ, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is Load that panics on failure, for use during startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

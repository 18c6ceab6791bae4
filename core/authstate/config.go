package authstate

import (
	"log/slog"
	"time"
)

// Config holds the durable-store record keys. Both records live under fixed
// logical names; override them when several applications share one store.
type Config struct {
	AccountsKey string `env:"AUTH_ACCOUNTS_KEY" envDefault:"auth:accounts"`
	SessionKey  string `env:"AUTH_SESSION_KEY" envDefault:"auth:session"`
}

// defaultConfig returns default configuration.
func defaultConfig() Config {
	return Config{
		AccountsKey: "auth:accounts",
		SessionKey:  "auth:session",
	}
}

// options collects construction-time dependencies of a Manager.
type options struct {
	cfg    Config
	frame  Frame
	logger *slog.Logger
	now    func() time.Time
}

// Option is a functional option for configuring the manager.
type Option func(*options)

// WithConfig sets the record keys. Empty fields keep their defaults.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if cfg.AccountsKey != "" {
			o.cfg.AccountsKey = cfg.AccountsKey
		}
		if cfg.SessionKey != "" {
			o.cfg.SessionKey = cfg.SessionKey
		}
	}
}

// WithFrame sets the hosting frame. The embedded-context policy is evaluated
// exactly once, at construction, from this value.
func WithFrame(frame Frame) Option {
	return func(o *options) {
		o.frame = frame
	}
}

// WithLogger sets the logger for storage diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock sets the time source used for login stamps. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

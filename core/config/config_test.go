package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authstate/core/config"
)

type storeKeys struct {
	AccountsKey string `env:"TEST_AUTH_ACCOUNTS_KEY" envDefault:"auth:accounts"`
	SessionKey  string `env:"TEST_AUTH_SESSION_KEY" envDefault:"auth:session"`
}

type overrideKeys struct {
	AccountsKey string `env:"TEST_OVERRIDE_ACCOUNTS_KEY" envDefault:"auth:accounts"`
}

type requiredValue struct {
	Value string `env:"TEST_CONFIG_REQUIRED_MISSING,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg storeKeys
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "auth:accounts", cfg.AccountsKey)
		assert.Equal(t, "auth:session", cfg.SessionKey)
	})

	t.Run("caches per type", func(t *testing.T) {
		var first storeKeys
		require.NoError(t, config.Load(&first))

		// Changing the environment after the first load must not affect
		// the cached value.
		t.Setenv("TEST_AUTH_ACCOUNTS_KEY", "changed")

		var second storeKeys
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first, second)
	})

	t.Run("reads environment overrides", func(t *testing.T) {
		t.Setenv("TEST_OVERRIDE_ACCOUNTS_KEY", "tenant42:accounts")

		var cfg overrideKeys
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "tenant42:accounts", cfg.AccountsKey)
	})

	t.Run("reports missing required variables", func(t *testing.T) {
		var cfg requiredValue
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParseFailed)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		err := config.Load[storeKeys](nil)
		assert.ErrorIs(t, err, config.ErrNilConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			config.MustLoad[requiredValue](nil)
		})
	})

	t.Run("returns loaded value", func(t *testing.T) {
		var cfg storeKeys
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, "auth:accounts", cfg.AccountsKey)
	})
}

package pg_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authstate/integration/database/pg"
)

func TestConnect_Validation(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty connection string", func(t *testing.T) {
		t.Parallel()

		pool, err := pg.Connect(context.Background(), pg.Config{})
		require.Error(t, err)
		assert.ErrorIs(t, err, pg.ErrEmptyConnectionString)
		assert.Nil(t, pool)
	})

	t.Run("rejects malformed connection string", func(t *testing.T) {
		t.Parallel()

		pool, err := pg.Connect(context.Background(), pg.Config{
			ConnectionString: "://not-a-dsn",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, pg.ErrFailedToParseConfig)
		assert.Nil(t, pool)
	})
}

func TestMigrate_Validation(t *testing.T) {
	t.Parallel()

	err := pg.Migrate(context.Background(), "")
	assert.ErrorIs(t, err, pg.ErrEmptyConnectionString)
}

package authstate_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authstate/core/authstate"
	"github.com/dmitrymomot/authstate/core/kv"
)

func TestFacade_Scenario(t *testing.T) {
	t.Parallel()

	// register -> logout -> login -> failed login, observed through the
	// consumer-facing surface.
	m := newReadyManager(t, kv.NewMemoryStore())
	auth := m.Facade()
	ctx := context.Background()

	require.False(t, auth.IsAuthenticated())
	_, ok := auth.User()
	require.False(t, ok)

	auth.Register(ctx, marioAccount())
	assert.True(t, auth.IsAuthenticated())
	user, ok := auth.User()
	require.True(t, ok)
	assert.Equal(t, "mario", user.Username)

	auth.Logout(ctx)
	assert.False(t, auth.IsAuthenticated())
	_, ok = auth.User()
	assert.False(t, ok)

	assert.True(t, auth.Login(ctx, "mario", "pw"))
	assert.True(t, auth.IsAuthenticated())

	// Wrong password leaves the prior session untouched.
	assert.False(t, auth.Login(ctx, "mario", "wrong"))
	assert.True(t, auth.IsAuthenticated())

	assert.False(t, auth.Loading())
	assert.NoError(t, auth.Err())
}

func TestFacade_Embedded(t *testing.T) {
	t.Parallel()

	embeddedFrame := authstate.Frame{ID: "app", ParentID: "host"}

	t.Run("ready immediately with demo identity", func(t *testing.T) {
		t.Parallel()

		evalAt := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
		ctx := context.Background()

		m, err := authstate.New(ctx, kv.NewMemoryStore(),
			authstate.WithFrame(embeddedFrame),
			authstate.WithClock(func() time.Time { return evalAt }),
		)
		require.NoError(t, err)
		require.True(t, m.Embedded())

		auth := m.Facade()
		assert.False(t, auth.Loading())
		assert.True(t, auth.IsAuthenticated())

		user, ok := auth.User()
		require.True(t, ok)
		assert.Equal(t, "demo", user.ID)
		assert.Equal(t, "demo", user.Username)
		assert.Equal(t, "Demo User", user.Name)
		assert.Equal(t, evalAt, user.LastLogin)
	})

	t.Run("operations never change the visible identity", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		m, err := authstate.New(ctx, kv.NewMemoryStore(), authstate.WithFrame(embeddedFrame))
		require.NoError(t, err)
		auth := m.Facade()

		auth.Register(ctx, marioAccount())
		user, ok := auth.User()
		require.True(t, ok)
		assert.Equal(t, "demo", user.Username)

		auth.Logout(ctx)
		assert.True(t, auth.IsAuthenticated())
		user, ok = auth.User()
		require.True(t, ok)
		assert.Equal(t, "demo", user.Username)

		auth.Login(ctx, "mario", "pw")
		assert.True(t, auth.IsAuthenticated())
	})

	t.Run("never touches the durable store", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := kv.NewMemoryStore()

		m, err := authstate.New(ctx, store, authstate.WithFrame(embeddedFrame))
		require.NoError(t, err)
		auth := m.Facade()

		auth.Register(ctx, marioAccount())
		auth.Login(ctx, "mario", "pw")
		auth.Logout(ctx)

		assert.Zero(t, store.Len())
	})

	t.Run("skips the load entirely", func(t *testing.T) {
		t.Parallel()

		// A store with prior data must not be read in embedded mode.
		store := &mockStore{}

		m, err := authstate.New(context.Background(), store, authstate.WithFrame(embeddedFrame))
		require.NoError(t, err)
		require.NoError(t, m.WaitReady(context.Background()))

		assert.Empty(t, m.Accounts())
		store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

package session

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStoreRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client)
	ctx := context.Background()

	_, active, err := store.Active(ctx)
	require.NoError(t, err)
	assert.False(t, active, "fresh store should be inactive")

	require.NoError(t, store.Activate(ctx, "DOC-1"))

	doctorID, active, err := store.Active(ctx)
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, "DOC-1", doctorID)

	require.NoError(t, store.Clear(ctx))

	_, active, err = store.Active(ctx)
	require.NoError(t, err)
	assert.False(t, active, "session should be inactive after Clear")
}

func TestRedisStoreSurvivesReconnect(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	first := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	require.NoError(t, first.Activate(ctx, "DOC-7"))

	// A new client against the same server sees the flag, as a restarted
	// process would.
	second := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	doctorID, active, err := second.Active(ctx)
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, "DOC-7", doctorID)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, active, _ := store.Active(ctx)
	assert.False(t, active, "fresh memory store should be inactive")

	require.NoError(t, store.Activate(ctx, "DOC-1"))
	doctorID, active, _ := store.Active(ctx)
	assert.True(t, active)
	assert.Equal(t, "DOC-1", doctorID)

	require.NoError(t, store.Clear(ctx))
	_, active, _ = store.Active(ctx)
	assert.False(t, active, "memory store should be inactive after Clear")
}

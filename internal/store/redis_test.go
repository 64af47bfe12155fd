package store

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs only when REDIS_TEST_ADDR points at a disposable redis.
func TestRedisSlotIntegration(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	slot := NewRedis(client)
	t.Cleanup(func() {
		client.FlushDB(ctx)
		_ = slot.Close()
	})
	require.NoError(t, slot.Ping(ctx))

	_, err := slot.Get(ctx, "kodevidecamp_test")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, slot.Set(ctx, "kodevidecamp_test", `[]`))
	got, err := slot.Get(ctx, "kodevidecamp_test")
	require.NoError(t, err)
	assert.Equal(t, `[]`, got)
}

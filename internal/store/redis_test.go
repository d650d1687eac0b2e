package store

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a live server only when TEST_REDIS_URL is set.
func setupRedisStore(t *testing.T) Store {
	t.Helper()
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	rs, err := DialRedis(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rs.Close() })
	return Scoped(rs, "test:"+uuid.NewString())
}

func TestRedisStoreAtomic(t *testing.T) {
	ctx := context.Background()
	s := setupRedisStore(t)

	require.NoError(t, Set(ctx, s, "a", 1))
	err := s.Atomic(ctx, func(tx Store) error {
		require.NoError(t, Set(ctx, tx, "a", 2))
		require.NoError(t, Set(ctx, tx, "b", "x"))
		assert.Equal(t, 2, Get(ctx, tx, "a", 0))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, Get(ctx, s, "a", 0))
	assert.Equal(t, "x", Get(ctx, s, "b", ""))

	boom := errors.New("boom")
	err = s.Atomic(ctx, func(tx Store) error {
		require.NoError(t, Set(ctx, tx, "a", 3))
		require.NoError(t, tx.Delete(ctx, "b"))
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, Get(ctx, s, "a", 0))
	assert.Equal(t, "x", Get(ctx, s, "b", ""))

	require.NoError(t, s.Delete(ctx, "a"))
	require.NoError(t, s.Delete(ctx, "b"))
	_, ok, err := s.Load(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDialRedisRejectsBadURL(t *testing.T) {
	_, err := DialRedis(context.Background(), "not-a-url")
	assert.Error(t, err)
}

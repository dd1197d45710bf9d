package storage

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	store := NewRedisStore(mr.Addr(), logger)
	return store, mr
}

func TestRedisStore_Ping(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	require.NoError(t, store.Ping(context.Background()))

	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}

func TestRedisStore_RebootedDefaultsFalse(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	rebooted, err := store.Rebooted(context.Background())
	require.NoError(t, err)
	assert.False(t, rebooted, "missing save must read as not rebooted")
}

func TestRedisStore_SaveRebooted(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.SaveRebooted(ctx))

	rebooted, err := store.Rebooted(ctx)
	require.NoError(t, err)
	assert.True(t, rebooted)

	// Idempotent.
	require.NoError(t, store.SaveRebooted(ctx))
	rebooted, err = store.Rebooted(ctx)
	require.NoError(t, err)
	assert.True(t, rebooted)
}

func TestRedisStore_Reset(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.SaveRebooted(ctx))
	require.NoError(t, store.Reset(ctx))

	rebooted, err := store.Rebooted(ctx)
	require.NoError(t, err)
	assert.False(t, rebooted)
}

func TestRedisStore_CorruptSave(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	require.NoError(t, mr.Set(saveKey, "not json"))
	_, err := store.Rebooted(context.Background())
	assert.Error(t, err)
}

func TestMockStore(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))

	rebooted, err := store.Rebooted(ctx)
	require.NoError(t, err)
	assert.False(t, rebooted)

	require.NoError(t, store.SaveRebooted(ctx))
	rebooted, err = store.Rebooted(ctx)
	require.NoError(t, err)
	assert.True(t, rebooted)

	assert.NoError(t, store.Close())
}

package history

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStore_MissingKeyIsEmpty(t *testing.T) {
	store, _ := newRedisStore(t)

	entries, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRedisStore_SaveAndLoad(t *testing.T) {
	store, mr := newRedisStore(t)
	want := []Entry{{Content: "https://example.com", Timestamp: 42}}

	require.NoError(t, store.Save(context.Background(), want))
	assert.True(t, mr.Exists(StorageKey))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRedisStore_CorruptValue(t *testing.T) {
	store, mr := newRedisStore(t)
	require.NoError(t, mr.Set(StorageKey, "garbage"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestRedisStore_ServerDown(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Close()

	_, err := store.Load(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCorrupt)
}

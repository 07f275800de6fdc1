package recharge_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	t.Parallel()

	cache := recharge.NewMemoryCache(10)
	ctx := context.Background()

	entry := &recharge.CacheEntry{
		Data:      []byte("test data"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}

	err := cache.Set(ctx, "key1", entry)
	require.NoError(t, err)

	retrieved, err := cache.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, retrieved.Data)
}

func TestMemoryCache_GetNonExistent(t *testing.T) {
	t.Parallel()

	cache := recharge.NewMemoryCache(10)

	_, err := cache.Get(context.Background(), "nonexistent")
	require.ErrorIs(t, err, recharge.ErrCacheKeyNotFound)
}

func TestMemoryCache_GetExpired(t *testing.T) {
	t.Parallel()

	cache := recharge.NewMemoryCache(10)
	ctx := context.Background()

	err := cache.Set(ctx, "key1", &recharge.CacheEntry{
		Data:      []byte("test data"),
		ExpiresAt: time.Now().Add(-1 * time.Hour),
	})
	require.NoError(t, err)

	_, err = cache.Get(ctx, "key1")
	require.ErrorIs(t, err, recharge.ErrCacheEntryExpired)
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCache_EvictsOldest(t *testing.T) {
	t.Parallel()

	cache := recharge.NewMemoryCache(2)
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		require.NoError(t, cache.Set(ctx, key, &recharge.CacheEntry{Data: []byte(key)}))
	}

	assert.Equal(t, 2, cache.Len())

	_, err := cache.Get(ctx, "a")
	require.ErrorIs(t, err, recharge.ErrCacheKeyNotFound)

	entry, err := cache.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, []byte("c"), entry.Data)

	require.NoError(t, cache.Delete(ctx, "c"))
	require.NoError(t, cache.Clear(ctx))
	assert.Equal(t, 0, cache.Len())
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	cache := recharge.NewNoOpCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", &recharge.CacheEntry{}))

	_, err := cache.Get(ctx, "key")
	require.ErrorIs(t, err, recharge.ErrCacheDisabled)
}

func TestTokenInformationCache(t *testing.T) {
	t.Parallel()

	cache := recharge.NewMemoryCache(10)
	ctx := context.Background()

	info := &recharge.TokenInformation{
		Name:   "ops",
		Scopes: []recharge.Scope{recharge.ScopeReadOrders, recharge.ScopeStoreInfo},
	}

	require.NoError(t, recharge.StoreTokenInformation(ctx, cache, "secret-token", info, time.Minute))

	loaded, err := recharge.LoadTokenInformation(ctx, cache, "secret-token")
	require.NoError(t, err)
	assert.Equal(t, info, loaded)
	assert.True(t, loaded.HasScope(recharge.ScopeStoreInfo))

	_, err = recharge.LoadTokenInformation(ctx, cache, "other-token")
	require.ErrorIs(t, err, recharge.ErrCacheKeyNotFound)
}

func TestTokenInfoCacheKey(t *testing.T) {
	t.Parallel()

	key := recharge.TokenInfoCacheKey("secret-token")

	assert.True(t, strings.HasPrefix(key, "token_information."))
	assert.NotContains(t, key, "secret-token")
	assert.Len(t, strings.TrimPrefix(key, "token_information."), 64)
	assert.Equal(t, key, recharge.TokenInfoCacheKey("secret-token"))
	assert.NotEqual(t, key, recharge.TokenInfoCacheKey("secret-token2"))
}

func TestNewCacheFromConfig(t *testing.T) {
	t.Parallel()

	cache, err := recharge.NewCacheFromConfig(nil)
	require.NoError(t, err)
	assert.IsType(t, &recharge.MemoryCache{}, cache)

	cache, err = recharge.NewCacheFromConfig(&recharge.CacheConfig{Type: recharge.CacheTypeNone})
	require.NoError(t, err)
	assert.IsType(t, &recharge.NoOpCache{}, cache)

	_, err = recharge.NewCacheFromConfig(&recharge.CacheConfig{Type: recharge.CacheTypeNATS})
	require.ErrorIs(t, err, recharge.ErrNATSConfigRequired)

	_, err = recharge.NewCacheFromConfig(&recharge.CacheConfig{Type: "redis"})
	require.ErrorIs(t, err, recharge.ErrUnsupportedCacheType)
}

func TestParseCacheType(t *testing.T) {
	t.Parallel()

	cacheType, err := recharge.ParseCacheType("nats")
	require.NoError(t, err)
	assert.Equal(t, recharge.CacheTypeNATS, cacheType)

	cacheType, err = recharge.ParseCacheType("")
	require.NoError(t, err)
	assert.Equal(t, recharge.CacheTypeNone, cacheType)

	_, err = recharge.ParseCacheType("disk")
	require.ErrorIs(t, err, recharge.ErrUnsupportedCacheType)
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/tattoo-studio/internal/config"
	"github.com/magabrotheeeer/tattoo-studio/internal/models"
)

func setupTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cache, err := InitServer(context.Background(), config.Redis{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache, mr
}

func TestSetAndGet(t *testing.T) {
	ctx := context.Background()
	cache, _ := setupTestCache(t)

	expected := models.TattooSalon{ID: 2, Name: "Black Lotus Tattoo", City: "Львів", Styles: []string{"Японський"}}
	require.NoError(t, cache.Set(ctx, "salon:2", expected, time.Minute))

	var actual models.TattooSalon
	found, err := cache.Get(ctx, "salon:2", &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)
}

func TestSetExpires(t *testing.T) {
	ctx := context.Background()
	cache, mr := setupTestCache(t)

	require.NoError(t, cache.Set(ctx, "plans:all", []int{1, 2, 3}, time.Minute))
	mr.FastForward(2 * time.Minute)

	var out []int
	found, err := cache.Get(ctx, "plans:all", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetNotFound(t *testing.T) {
	cache, _ := setupTestCache(t)

	var out models.TattooSalon
	found, err := cache.Get(context.Background(), "no_such_key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	ctx := context.Background()
	cache, _ := setupTestCache(t)

	require.NoError(t, cache.Set(ctx, "key", "value", time.Minute))
	require.NoError(t, cache.Invalidate(ctx, "key"))

	var out string
	found, err := cache.Get(ctx, "key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetInvalidJSON(t *testing.T) {
	ctx := context.Background()
	cache, _ := setupTestCache(t)

	require.NoError(t, cache.Db.Set(ctx, "bad", []byte("not-json"), time.Minute).Err())

	var out models.TattooSalon
	found, err := cache.Get(ctx, "bad", &out)
	assert.False(t, found)
	assert.Error(t, err)
}

func TestInitServerInvalidAddr(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cache, err := InitServer(ctx, config.Redis{Address: "127.0.0.1:1", DialTimeout: 200 * time.Millisecond})
	assert.Nil(t, cache)
	assert.Error(t, err)
}

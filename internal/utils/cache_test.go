package utils_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"delivery_orders/internal/utils"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCacheKey(t *testing.T) {
	token := strings.Repeat("ab", 32)
	key := utils.TokenCacheKey(token)

	assert.True(t, strings.HasPrefix(key, "auth:token:"))
	assert.NotContains(t, key, token)
	assert.Len(t, key, len("auth:token:")+64)
	assert.Equal(t, key, utils.TokenCacheKey(token))
	assert.NotEqual(t, key, utils.TokenCacheKey(token+"0"))
}

func TestOrderCacheKey(t *testing.T) {
	assert.Equal(t, "order:1001", utils.OrderCacheKey(1001))
	assert.Equal(t, "order:-3", utils.OrderCacheKey(-3))
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	var c utils.Cache = utils.NoopCache{}

	require.NoError(t, c.Set(ctx, "k", map[string]int{"a": 1}, time.Minute))

	var dest map[string]int
	found, err := c.Get(ctx, "k", &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Delete(ctx, "k"))
}

func TestRedisCache_Unreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()
	c := utils.NewRedisCache(rdb)

	var dest string
	found, err := c.Get(context.Background(), "k", &dest)
	assert.Error(t, err)
	assert.False(t, found)
}

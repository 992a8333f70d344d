package di

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pds/internal/config"
	"pds/internal/content"
)

func TestProvideListCache(t *testing.T) {
	cfg := &config.Config{Redis: config.RedisConfig{ListCacheTTL: time.Minute}}

	t.Run("without redis", func(t *testing.T) {
		cache := ProvideListCache(cfg, nil)
		require.NoError(t, cache.Set(context.Background(), uuid.New(), 0, nil))
	})

	t.Run("with redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer client.Close()

		cache := ProvideListCache(cfg, client)
		_, isRedis := cache.(*content.RedisListCache)
		assert.True(t, isRedis)

		brandID := uuid.New()
		require.NoError(t, cache.Set(context.Background(), brandID, 0, []content.ListItem{{ID: uuid.New()}}))
		assert.Equal(t, time.Minute, mr.TTL("pds:contents:brand:"+brandID.String()+":v0"))
	})
}

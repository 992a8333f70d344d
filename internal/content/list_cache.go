package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const listCacheKeyPrefix = "pds:contents:brand:"

// ListCache keeps the per-brand base list (without the empty entry).
// Entries are stored per generation; Invalidate moves the brand to a new
// generation, so a list read before the bump can only land in a stale slot.
type ListCache interface {
	Generation(ctx context.Context, brandID uuid.UUID) (int64, error)
	Get(ctx context.Context, brandID uuid.UUID, gen int64) ([]ListItem, bool, error)
	Set(ctx context.Context, brandID uuid.UUID, gen int64, items []ListItem) error
	Invalidate(ctx context.Context, brandID uuid.UUID) error
}

// RedisListCache stores lists as JSON with a TTL.
type RedisListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListCache returns a redis-backed cache, or a no-op one when client is nil.
func NewListCache(client *redis.Client, ttl time.Duration) ListCache {
	if client == nil {
		return noopListCache{}
	}
	return &RedisListCache{client: client, ttl: ttl}
}

func listGenerationKey(brandID uuid.UUID) string {
	return listCacheKeyPrefix + brandID.String() + ":gen"
}

func listCacheKey(brandID uuid.UUID, gen int64) string {
	return listCacheKeyPrefix + brandID.String() + ":v" + strconv.FormatInt(gen, 10)
}

func (c *RedisListCache) Generation(ctx context.Context, brandID uuid.UUID) (int64, error) {
	gen, err := c.client.Get(ctx, listGenerationKey(brandID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read list cache generation: %w", err)
	}
	return gen, nil
}

func (c *RedisListCache) Get(ctx context.Context, brandID uuid.UUID, gen int64) ([]ListItem, bool, error) {
	raw, err := c.client.Get(ctx, listCacheKey(brandID, gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read list cache: %w", err)
	}

	var items []ListItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("decode list cache: %w", err)
	}
	return items, true, nil
}

func (c *RedisListCache) Set(ctx context.Context, brandID uuid.UUID, gen int64, items []ListItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode list cache: %w", err)
	}
	if err := c.client.Set(ctx, listCacheKey(brandID, gen), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("write list cache: %w", err)
	}
	return nil
}

func (c *RedisListCache) Invalidate(ctx context.Context, brandID uuid.UUID) error {
	if err := c.client.Incr(ctx, listGenerationKey(brandID)).Err(); err != nil {
		return fmt.Errorf("invalidate list cache: %w", err)
	}
	return nil
}

type noopListCache struct{}

func (noopListCache) Generation(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

func (noopListCache) Get(context.Context, uuid.UUID, int64) ([]ListItem, bool, error) {
	return nil, false, nil
}

func (noopListCache) Set(context.Context, uuid.UUID, int64, []ListItem) error {
	return nil
}

func (noopListCache) Invalidate(context.Context, uuid.UUID) error {
	return nil
}

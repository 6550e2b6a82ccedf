package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const roleCacheKey = "role_cache"

type RedisRoleCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisRoleCache(rdb *redis.Client, ttl time.Duration) *RedisRoleCache {
	return &RedisRoleCache{rdb: rdb, ttl: ttl}
}

func (c *RedisRoleCache) GetRoleMap(ctx context.Context) (map[string]uuid.UUID, error) {
	raw, err := c.rdb.Get(ctx, roleCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var roles map[string]uuid.UUID
	if err := json.Unmarshal(raw, &roles); err != nil {
		// Stale or corrupt entry, treat as a miss.
		return nil, nil
	}
	return roles, nil
}

func (c *RedisRoleCache) SetRoleMap(ctx context.Context, roles map[string]uuid.UUID) error {
	b, err := json.Marshal(roles)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, roleCacheKey, b, c.ttl).Err()
}

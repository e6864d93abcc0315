package cache

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const availabilityKeyPrefix = "parkpass:lot:available:"

// RedisAvailability caches each lot's available spaces so gate displays do not hit the store.
// Cache failures are logged and treated as misses.
type RedisAvailability struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisAvailability(client redis.Cmdable, ttl time.Duration) *RedisAvailability {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisAvailability{client: client, ttl: ttl}
}

func availabilityKey(lotID uuid.UUID) string {
	return availabilityKeyPrefix + lotID.String()
}

func (c *RedisAvailability) Get(ctx context.Context, lotID uuid.UUID) (int, bool) {
	raw, err := c.client.Get(ctx, availabilityKey(lotID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("availability cache read failed", "lot_id", lotID, "error", err.Error())
		}
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *RedisAvailability) Set(ctx context.Context, lotID uuid.UUID, available int) {
	if err := c.client.Set(ctx, availabilityKey(lotID), available, c.ttl).Err(); err != nil {
		slog.Warn("availability cache write failed", "lot_id", lotID, "error", err.Error())
	}
}

func (c *RedisAvailability) Invalidate(ctx context.Context, lotID uuid.UUID) {
	if err := c.client.Del(ctx, availabilityKey(lotID)).Err(); err != nil {
		slog.Warn("availability cache invalidate failed", "lot_id", lotID, "error", err.Error())
	}
}

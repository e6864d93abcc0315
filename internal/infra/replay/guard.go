package replay

import (
	"context"
	"time"

	"parkpass/internal/infra"
	"parkpass/internal/infra/cache"
	"parkpass/internal/pkg/clock"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "parkpass:token:"

// RedisGuard claims token digests with SET NX PX so every gate shares one view.
type RedisGuard struct {
	client redis.Cmdable
}

func NewRedisGuard(client redis.Cmdable) *RedisGuard {
	return &RedisGuard{client: client}
}

func (g *RedisGuard) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := g.client.SetNX(ctx, keyPrefix+key, 1, ttl).Result()
	if err != nil {
		kind := infra.KindDBFailure
		if ctx.Err() != nil {
			kind = infra.KindTimeout
		}
		return false, infra.WrapRepoErr(kind, "replay guard claim", err)
	}
	return ok, nil
}

func (g *RedisGuard) Release(ctx context.Context, key string) error {
	if err := g.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "replay guard release", err)
	}
	return nil
}

// MemoryGuard is the single-process fallback when Redis is not configured.
type MemoryGuard struct {
	seen *cache.TTLCache[string, struct{}]
}

func NewMemoryGuard(clk clock.Clock) *MemoryGuard {
	return &MemoryGuard{seen: cache.NewTTLCache[string, struct{}](clk)}
}

func (g *MemoryGuard) Claim(_ context.Context, key string, ttl time.Duration) (bool, error) {
	return g.seen.SetIfAbsent(key, struct{}{}, ttl), nil
}

func (g *MemoryGuard) Release(_ context.Context, key string) error {
	g.seen.Delete(key)
	return nil
}

// Sweep drops expired digests; the jobs runner calls it periodically.
func (g *MemoryGuard) Sweep() int {
	return g.seen.Sweep()
}

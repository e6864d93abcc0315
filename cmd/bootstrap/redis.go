package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"parkpass/internal/infra/cache"
	"parkpass/internal/infra/replay"
	"parkpass/internal/jobs"
	"parkpass/internal/pkg/clock"
	"parkpass/internal/pkg/config"
	"parkpass/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewReplayGuard,
		NewAvailabilityCache,
	),
)

// NewRedisClient returns nil when no address is configured.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			if err := client.Ping(pingCtx).Err(); err != nil {
				return fmt.Errorf("failed to ping redis at %s: %w", cfg.Redis.Addr, err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			slog.Info("closing redis client")
			return client.Close()
		},
	})

	return client, nil
}

type replayGuardOut struct {
	fx.Out

	Guard    shared.ReplayGuard
	Sweepers []jobs.Sweeper `group:"sweepers,flatten"`
}

func NewReplayGuard(client *redis.Client, clk clock.Clock) replayGuardOut {
	if client == nil {
		slog.Warn("redis not configured, replay guard is process-local")
		g := replay.NewMemoryGuard(clk)
		return replayGuardOut{Guard: g, Sweepers: []jobs.Sweeper{g}}
	}
	return replayGuardOut{Guard: replay.NewRedisGuard(client)}
}

func NewAvailabilityCache(client *redis.Client, cfg config.Config) shared.AvailabilityCache {
	if client == nil {
		return shared.NoopAvailabilityCache{}
	}
	return cache.NewRedisAvailability(client, cfg.Redis.CacheTTL)
}

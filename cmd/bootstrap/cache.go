package bootstrap

import (
	"context"
	"log/slog"

	"car-rental-pricing/internal/infra/cache"
	"car-rental-pricing/internal/pkg/config"
	"car-rental-pricing/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRateCache,
	),
)

// NewRateCache returns a Redis cache when REDIS_ADDR is set and a no-op cache otherwise.
// An unreachable Redis at startup is logged, not fatal: the optimizer runs uncached.
func NewRateCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.RateCache {
	if !cfg.Redis.Enabled() {
		logger.Info("Redis未設定のため料金キャッシュを無効化します")
		return cache.NoopRateCache{}
	}

	client := cache.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Redisに接続できません。キャッシュなしで続行します", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisRateCache(client, cfg.Redis.RateCacheTTL)
}

package bootstrap

import (
	"context"
	"log/slog"

	"parkspot/internal/infra/cache"
	"parkspot/internal/pkg/config"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
		func(client *redis.Client, cfg config.Config) *cache.RecentSearchStore {
			return cache.NewRecentSearchStore(client, cfg.RecentSearch)
		},
		func(s *cache.RecentSearchStore) commands.RecentSearchWriter { return s },
		func(s *cache.RecentSearchStore) queries.RecentSearchReader { return s },
	),
)

// NewRedis does not fail startup when Redis is down; recent searches are best-effort.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	client, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := cache.Ping(ctx, client); err != nil {
				logger.Warn("Redisに接続できません。最近の検索履歴は無効になります", "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("Redis接続を閉じます")
			return client.Close()
		},
	})

	return client, nil
}

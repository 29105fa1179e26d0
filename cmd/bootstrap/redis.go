package bootstrap

import (
	"context"

	"shuttlebook/internal/infra/cache"
	"shuttlebook/internal/pkg/config"
	"shuttlebook/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewAvailabilityCache,
			fx.As(new(queries.AvailabilityCache)),
		),
	),
)

// NewRedisClient returns a nil client when no address is configured; the
// cache layer treats nil as disabled.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := cache.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}

func NewAvailabilityCache(client *redis.Client, cfg config.Config) *cache.AvailabilityCache {
	return cache.NewAvailabilityCache(client, cfg.Redis)
}

package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"shuttlebook/internal/pkg/config"
	"shuttlebook/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const availabilityKeyPrefix = "availability:"

// AvailabilityCache keeps the all-courts availability grid in Redis for a
// short TTL. Cache trouble is logged and treated as a miss; reads always
// have the database to fall back on.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, cfg config.RedisConfig) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: cfg.CacheTTL}
}

func (c *AvailabilityCache) Get(ctx context.Context, date string) (*queries.AvailabilityView, bool) {
	if c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, availabilityKeyPrefix+date).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("availability cache read failed", "date", date, "error", err.Error())
		}
		return nil, false
	}

	var view queries.AvailabilityView
	if err := json.Unmarshal(payload, &view); err != nil {
		slog.Warn("availability cache entry corrupt", "date", date, "error", err.Error())
		return nil, false
	}
	return &view, true
}

func (c *AvailabilityCache) Set(ctx context.Context, date string, view *queries.AvailabilityView) {
	if c.client == nil {
		return
	}

	payload, err := json.Marshal(view)
	if err != nil {
		slog.Warn("availability cache encode failed", "date", date, "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, availabilityKeyPrefix+date, payload, c.ttl).Err(); err != nil {
		slog.Warn("availability cache write failed", "date", date, "error", err.Error())
	}
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, date string) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, availabilityKeyPrefix+date).Err(); err != nil {
		slog.Warn("availability cache invalidation failed", "date", date, "error", err.Error())
	}
}

// Connect opens the Redis client, or returns nil when no address is
// configured.
func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	if cfg.Addr == "" {
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, err
	}

	cleanup := func() {
		client.Close()
	}
	return client, cleanup, nil
}

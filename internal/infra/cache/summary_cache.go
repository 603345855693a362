// Package cache provides a Redis-backed read-through cache for rating summaries.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"gusto/config"
	"gusto/internal/domain/entity"
	"gusto/internal/domain/lifecycle"
	"gusto/internal/domain/service"
	"gusto/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	keyPrefix         = "gusto:rating-summary:"
	defaultSummaryTTL = time.Minute
	operationTimeout  = 200 * time.Millisecond
)

// Params defines the dependencies of the summary cache.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// summaryCache wraps redis.Client but fails safe: connectivity and decode
// errors behave like a cache miss.
type summaryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New returns the Redis cache, or a no-op cache when no redis section is configured.
func New(params Params) service.SummaryCache {
	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		return noopCache{}
	}

	c := newRedisCache(params.Config.Redis, params.Logger)
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// Unreachable Redis only degrades to uncached reads.
			if err := c.client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis unavailable, rating summaries are not cached", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return c.client.Close()
		},
	})

	return c
}

// newRedisCache builds the cache over a new client for cfg.
func newRedisCache(cfg *config.RedisConfig, logger *slog.Logger) *summaryCache {
	ttl := cfg.SummaryTTL
	if ttl <= 0 {
		ttl = defaultSummaryTTL
	}

	return &summaryCache{
		client: redis.NewClient(&redis.Options{
			Addr:       cfg.Addr,
			Password:   cfg.Password,
			DB:         cfg.DB,
			MaxRetries: -1,
		}),
		ttl:    ttl,
		logger: logger,
	}
}

func key(restaurantID uuid.UUID) string {
	return keyPrefix + restaurantID.String()
}

// Get returns the cached summary, or false on a miss or an unavailable backend.
func (c *summaryCache) Get(ctx context.Context, restaurantID uuid.UUID) (*entity.RatingSummary, bool) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	raw, err := c.client.Get(ctx, key(restaurantID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("Summary cache read failed", slog.Any("error", err))
		}
		metrics.RecordSummaryCacheMiss()

		return nil, false
	}

	var summary entity.RatingSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		metrics.RecordSummaryCacheMiss()

		return nil, false
	}
	metrics.RecordSummaryCacheHit()

	return &summary, true
}

// Fill stores summary unless an entry already exists, ignoring backend errors.
func (c *summaryCache) Fill(ctx context.Context, summary *entity.RatingSummary) {
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	if err := c.client.SetNX(ctx, key(summary.RestaurantID), raw, c.ttl).Err(); err != nil {
		c.logger.Debug("Summary cache fill failed", slog.Any("error", err))
	}
}

// Set overwrites the entry for summary. If the write fails the entry is
// deleted so readers fall back to the datastore.
func (c *summaryCache) Set(ctx context.Context, summary *entity.RatingSummary) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	k := key(summary.RestaurantID)

	raw, err := json.Marshal(summary)
	if err == nil {
		err = c.client.Set(ctx, k, raw, c.ttl).Err()
	}
	if err == nil {
		return
	}

	c.logger.Warn("Summary cache write failed, dropping entry", slog.Any("error", err))
	if err := c.client.Del(ctx, k).Err(); err != nil {
		c.logger.Warn("Summary cache entry may be stale until it expires",
			slog.String("key", k),
			slog.Duration("ttl", c.ttl),
			slog.Any("error", err),
		)
	}
}

type noopCache struct{}

func (noopCache) Get(context.Context, uuid.UUID) (*entity.RatingSummary, bool) { return nil, false }
func (noopCache) Fill(context.Context, *entity.RatingSummary)                  {}
func (noopCache) Set(context.Context, *entity.RatingSummary)                   {}

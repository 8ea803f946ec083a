// Package cache holds a Redis read-through cache for the campaign set.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"movo-ads/internal/config/configs"
	"movo-ads/internal/core/domain"
	"movo-ads/internal/core/port"
)

// redisClient is the subset of *redis.Client the cache uses.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// CampaignCache decorates a port.CampaignRepository. The whole campaign set
// is stored as one JSON value for TTL; Redis failures fall through to the
// repository.
type CampaignCache struct {
	next   port.CampaignRepository
	rdb    redisClient
	key    string
	ttl    time.Duration
	logger *slog.Logger
}

func NewCampaignCache(next port.CampaignRepository, rdb redisClient, cfg configs.Redis, logger *slog.Logger) *CampaignCache {
	return &CampaignCache{next: next, rdb: rdb, key: cfg.Key, ttl: cfg.TTL, logger: logger}
}

// ListCampaigns implements port.CampaignRepository.
func (c *CampaignCache) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	val, err := c.rdb.Get(ctx, c.key).Bytes()
	switch {
	case err == nil:
		var campaigns []domain.Campaign
		if err = json.Unmarshal(val, &campaigns); err == nil {
			return campaigns, nil
		}
		c.logger.Warn("discarding malformed cached campaigns", slog.Any("error", err))
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("campaign cache read failed", slog.Any("error", err))
	}

	campaigns, err := c.next.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(campaigns)
	if err != nil {
		return campaigns, nil
	}
	if err = c.rdb.Set(ctx, c.key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("campaign cache write failed", slog.Any("error", err))
	}
	return campaigns, nil
}

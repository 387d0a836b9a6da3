package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/leadflow/crm-api/internal/core/domain"
)

const statsKey = "dashboard:stats"
const statsTTL = 30 * time.Second

// StatsCache holds the employer dashboard aggregates as a short-lived
// JSON blob. The key expires rather than being invalidated on writes, so
// the dashboard may lag lead mutations by up to statsTTL.
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached stats, or (nil, nil) on a miss.
func (c *StatsCache) Get(ctx context.Context) (*domain.DashboardStats, error) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats domain.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	return &stats, nil
}

// Set stores the stats for statsTTL.
func (c *StatsCache) Set(ctx context.Context, stats *domain.DashboardStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, statsKey, raw, statsTTL).Err()
}

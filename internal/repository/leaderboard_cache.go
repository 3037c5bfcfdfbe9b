package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"launchstories/internal/model"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "launchstories:leaderboard:v1"

// MemoryLeaderboardCache holds the leaderboard for a single API process.
type MemoryLeaderboardCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

func NewMemoryLeaderboardCache(ttl time.Duration) *MemoryLeaderboardCache {
	return &MemoryLeaderboardCache{
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (c *MemoryLeaderboardCache) Get(ctx context.Context) ([]model.Contributor, bool) {
	val, found := c.cache.Get(leaderboardKey)
	if !found {
		return nil, false
	}
	contributors, ok := val.([]model.Contributor)
	return contributors, ok
}

func (c *MemoryLeaderboardCache) Set(ctx context.Context, contributors []model.Contributor) {
	c.cache.Set(leaderboardKey, contributors, c.ttl)
}

func (c *MemoryLeaderboardCache) Invalidate(ctx context.Context) {
	c.cache.Delete(leaderboardKey)
}

// RedisLeaderboardCache shares the leaderboard across API replicas.
type RedisLeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLeaderboardCache(client *redis.Client, ttl time.Duration) *RedisLeaderboardCache {
	return &RedisLeaderboardCache{client: client, ttl: ttl}
}

func (c *RedisLeaderboardCache) Get(ctx context.Context) ([]model.Contributor, bool) {
	data, err := c.client.Get(ctx, leaderboardKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("error reading leaderboard cache", "error", err)
		}
		return nil, false
	}

	var contributors []model.Contributor
	if err := json.Unmarshal(data, &contributors); err != nil {
		slog.Warn("discarding malformed leaderboard cache entry", "error", err)
		return nil, false
	}
	return contributors, true
}

func (c *RedisLeaderboardCache) Set(ctx context.Context, contributors []model.Contributor) {
	data, err := json.Marshal(contributors)
	if err != nil {
		slog.Warn("error encoding leaderboard cache entry", "error", err)
		return
	}

	err = c.client.Set(ctx, leaderboardKey, data, c.ttl).Err()
	if err != nil {
		slog.Warn("error writing leaderboard cache", "error", err)
	}
}

func (c *RedisLeaderboardCache) Invalidate(ctx context.Context) {
	err := c.client.Del(ctx, leaderboardKey).Err()
	if err != nil {
		slog.Warn("error invalidating leaderboard cache", "error", err)
	}
}

// Package ratelimit provides the Redis-backed limiter guarding the
// AI-backed endpoints.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Menatic/IT-Support/internal/shared/config"
)

// RateLimiter answers whether a caller may make another request.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisRateLimiter implements a sliding-window limit per key.
type RedisRateLimiter struct {
	client            *redis.Client
	requestsPerMinute int
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewRedisRateLimiter(client *redis.Client, requestsPerMinute int) *RedisRateLimiter {
	return &RedisRateLimiter{
		client:            client,
		requestsPerMinute: requestsPerMinute,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.requestsPerMinute <= 0 {
		return true, nil
	}

	now := time.Now()
	window := time.Minute
	redisKey := fmt.Sprintf("ratelimit:%s", key)
	windowStart := now.Add(-window).UnixNano()
	nowNano := now.UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart))
	zcard := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(nowNano), Member: nowNano})
	pipe.Expire(ctx, redisKey, window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	return zcard.Val() < int64(l.requestsPerMinute), nil
}

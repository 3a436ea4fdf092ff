// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tomtom215/dhandiary-stats/internal/config"
)

// Default limits.
const (
	DefaultMax    = 100
	DefaultWindow = time.Minute
)

// Store names used in configuration and metrics.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Decision is the outcome of one Check.
type Decision struct {
	Allowed bool
	// Remaining is the number of requests left in the current window.
	Remaining int
	// ResetAt is when the current window ends.
	ResetAt time.Time
}

// Limiter decides whether a request from key may proceed.
type Limiter interface {
	Check(ctx context.Context, key string) (Decision, error)
}

// New builds the limiter selected by security.rate_limit_store. The second
// return value is the in-memory limiter when one was built, so the caller
// can supervise its sweeper; it is nil for the Redis store.
func New(cfg *config.Config) (Limiter, *MemoryLimiter, error) {
	switch cfg.Security.RateLimitStore {
	case StoreRedis:
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		return NewRedisLimiter(client, cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow,
			WithKeyPrefix(cfg.Redis.KeyPrefix)), nil, nil
	case StoreMemory, "":
		mem := NewMemoryLimiter(cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow)
		return mem, mem, nil
	default:
		return nil, nil, fmt.Errorf("unknown rate limit store %q", cfg.Security.RateLimitStore)
	}
}

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces rate-limit counters in a shared Redis.
const DefaultKeyPrefix = "dhandiary:ratelimit:"

// windowScript increments the counter, starts the window on the first hit
// and returns {count, ttl_ms}. A key that somehow lost its expiry gets a
// fresh one so it cannot block a client forever.
var windowScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
if ttl < 0 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return {count, ttl}
`)

// RedisLimiter shares windows across replicas through Redis.
type RedisLimiter struct {
	client redis.Scripter
	prefix string
	max    int
	window time.Duration
	now    func() time.Time
}

// RedisOption configures a RedisLimiter.
type RedisOption func(*RedisLimiter)

// WithKeyPrefix sets the key namespace.
func WithKeyPrefix(prefix string) RedisOption {
	return func(r *RedisLimiter) {
		if prefix = strings.TrimSpace(prefix); prefix != "" {
			r.prefix = prefix
		}
	}
}

// NewRedisLimiter creates a limiter allowing max requests per window.
func NewRedisLimiter(client redis.Scripter, maxRequests int, win time.Duration, opts ...RedisOption) *RedisLimiter {
	if maxRequests <= 0 {
		maxRequests = DefaultMax
	}
	if win <= 0 {
		win = DefaultWindow
	}
	r := &RedisLimiter{
		client: client,
		prefix: DefaultKeyPrefix,
		max:    maxRequests,
		window: win,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Check records a request for key. Errors reaching Redis are returned; the
// caller decides whether to fail open.
func (r *RedisLimiter) Check(ctx context.Context, key string) (Decision, error) {
	res, err := windowScript.Run(ctx, r.client, []string{r.prefix + key}, r.window.Milliseconds()).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("redis rate limit: %w", err)
	}
	if len(res) != 2 {
		return Decision{}, fmt.Errorf("redis rate limit: unexpected reply length %d", len(res))
	}

	count, ttl := int(res[0]), time.Duration(res[1])*time.Millisecond
	return Decision{
		Allowed:   count <= r.max,
		Remaining: max(0, r.max-count),
		ResetAt:   r.now().Add(ttl),
	}, nil
}

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package ratelimit

import (
	"context"
	"time"

	"github.com/tomtom215/dhandiary-stats/internal/logging"
)

// DefaultSweepInterval is used when no interval is configured.
const DefaultSweepInterval = 5 * time.Minute

// Sweeper periodically drops expired windows from a MemoryLimiter. It
// implements suture.Service.
type Sweeper struct {
	limiter  *MemoryLimiter
	interval time.Duration
}

// NewSweeper creates a sweeper for limiter.
func NewSweeper(limiter *MemoryLimiter, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Sweeper{limiter: limiter, interval: interval}
}

// Serve sweeps on every tick until ctx is canceled.
func (s *Sweeper) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := s.limiter.Sweep(); removed > 0 {
				logging.Debug().
					Int("removed", removed).
					Int("remaining", s.limiter.Len()).
					Msg("Swept expired rate limit windows")
			}
		}
	}
}

// String implements fmt.Stringer for supervisor logging.
func (s *Sweeper) String() string {
	return "ratelimit-sweeper"
}

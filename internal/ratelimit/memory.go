// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/dhandiary-stats/internal/metrics"
)

type window struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter keeps one window per key in process memory. Entries are
// dropped by Sweep once expired; without sweeping the map grows with the
// number of distinct clients.
type MemoryLimiter struct {
	max    int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*window
}

// MemoryOption configures a MemoryLimiter.
type MemoryOption func(*MemoryLimiter)

// WithClock overrides the time source.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *MemoryLimiter) {
		m.now = now
	}
}

// NewMemoryLimiter creates a limiter allowing max requests per window.
// Non-positive values fall back to DefaultMax and DefaultWindow.
func NewMemoryLimiter(maxRequests int, win time.Duration, opts ...MemoryOption) *MemoryLimiter {
	if maxRequests <= 0 {
		maxRequests = DefaultMax
	}
	if win <= 0 {
		win = DefaultWindow
	}
	m := &MemoryLimiter{
		max:     maxRequests,
		window:  win,
		now:     time.Now,
		entries: make(map[string]*window),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Check records a request for key. It never returns an error.
func (m *MemoryLimiter) Check(_ context.Context, key string) (Decision, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.entries[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{count: 1, resetAt: now.Add(m.window)}
		m.entries[key] = w
		metrics.RateLimitEntries.Set(float64(len(m.entries)))
		return Decision{Allowed: true, Remaining: m.max - 1, ResetAt: w.resetAt}, nil
	}

	if w.count < m.max {
		w.count++
		return Decision{Allowed: true, Remaining: m.max - w.count, ResetAt: w.resetAt}, nil
	}
	return Decision{Allowed: false, Remaining: 0, ResetAt: w.resetAt}, nil
}

// Sweep removes windows that have ended and returns how many were removed.
// A live window is never touched.
func (m *MemoryLimiter) Sweep() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for key, w := range m.entries {
		if !now.Before(w.resetAt) {
			delete(m.entries, key)
			removed++
		}
	}
	metrics.RateLimitEntries.Set(float64(len(m.entries)))
	return removed
}

// Len returns the number of tracked keys.
func (m *MemoryLimiter) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

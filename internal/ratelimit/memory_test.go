// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"
)

// fakeClock is a settable time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestMemoryLimiter_WindowLifecycle(t *testing.T) {
	clock := newFakeClock()
	lim := NewMemoryLimiter(3, time.Minute, WithClock(clock.Now))
	ctx := context.Background()
	resetAt := clock.Now().Add(time.Minute)

	wantRemaining := []int{2, 1, 0}
	for i, want := range wantRemaining {
		d, err := lim.Check(ctx, "1.2.3.4")
		if err != nil {
			t.Fatalf("Check %d: %v", i, err)
		}
		if !d.Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
		if d.Remaining != want {
			t.Errorf("request %d: remaining = %d, want %d", i+1, d.Remaining, want)
		}
		if !d.ResetAt.Equal(resetAt) {
			t.Errorf("request %d: resetAt = %v, want %v", i+1, d.ResetAt, resetAt)
		}
	}

	d, _ := lim.Check(ctx, "1.2.3.4")
	if d.Allowed {
		t.Fatal("request over the limit should be denied")
	}
	if d.Remaining != 0 {
		t.Errorf("remaining = %d, want 0", d.Remaining)
	}
	if !d.ResetAt.Equal(resetAt) {
		t.Errorf("denied resetAt = %v, want stored %v", d.ResetAt, resetAt)
	}
}

func TestMemoryLimiter_ResetsAtBoundary(t *testing.T) {
	clock := newFakeClock()
	lim := NewMemoryLimiter(1, time.Minute, WithClock(clock.Now))
	ctx := context.Background()

	if d, _ := lim.Check(ctx, "k"); !d.Allowed {
		t.Fatal("first request should be allowed")
	}

	clock.Advance(time.Minute - time.Millisecond)
	if d, _ := lim.Check(ctx, "k"); d.Allowed {
		t.Fatal("request before resetAt should be denied")
	}

	// now == resetAt starts a new window
	clock.Advance(time.Millisecond)
	d, _ := lim.Check(ctx, "k")
	if !d.Allowed {
		t.Fatal("request at resetAt should start a new window")
	}
	if d.Remaining != 0 {
		t.Errorf("remaining = %d, want 0", d.Remaining)
	}
	if want := clock.Now().Add(time.Minute); !d.ResetAt.Equal(want) {
		t.Errorf("resetAt = %v, want %v", d.ResetAt, want)
	}
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	lim := NewMemoryLimiter(1, time.Minute)
	ctx := context.Background()

	if d, _ := lim.Check(ctx, "a"); !d.Allowed {
		t.Fatal("a should be allowed")
	}
	if d, _ := lim.Check(ctx, "b"); !d.Allowed {
		t.Fatal("b should be allowed")
	}
	if d, _ := lim.Check(ctx, "a"); d.Allowed {
		t.Fatal("second a should be denied")
	}
}

func TestMemoryLimiter_Defaults(t *testing.T) {
	lim := NewMemoryLimiter(0, 0)
	if lim.max != DefaultMax {
		t.Errorf("max = %d, want %d", lim.max, DefaultMax)
	}
	if lim.window != DefaultWindow {
		t.Errorf("window = %v, want %v", lim.window, DefaultWindow)
	}
}

func TestMemoryLimiter_Concurrent(t *testing.T) {
	lim := NewMemoryLimiter(50, time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, _ := lim.Check(ctx, "shared")
			if d.Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != 50 {
		t.Errorf("allowed = %d, want exactly 50", allowed)
	}
}

func TestMemoryLimiter_Sweep(t *testing.T) {
	clock := newFakeClock()
	lim := NewMemoryLimiter(5, time.Minute, WithClock(clock.Now))
	ctx := context.Background()

	_, _ = lim.Check(ctx, "old")
	clock.Advance(30 * time.Second)
	_, _ = lim.Check(ctx, "live")
	clock.Advance(30 * time.Second)

	if removed := lim.Sweep(); removed != 1 {
		t.Errorf("Sweep removed %d, want 1", removed)
	}
	if lim.Len() != 1 {
		t.Errorf("Len = %d, want 1", lim.Len())
	}

	// The live window keeps its count.
	for i := 0; i < 4; i++ {
		_, _ = lim.Check(ctx, "live")
	}
	if d, _ := lim.Check(ctx, "live"); d.Allowed {
		t.Error("sweep must not reset a live window")
	}
}

func TestSweeper_StopsOnCancel(t *testing.T) {
	lim := NewMemoryLimiter(1, time.Millisecond)
	_, _ = lim.Check(context.Background(), "k")

	sweeper := NewSweeper(lim, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sweeper.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for lim.Len() != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if lim.Len() != 0 {
		t.Error("sweeper did not remove the expired window")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	if sweeper.String() != "ratelimit-sweeper" {
		t.Errorf("String() = %q", sweeper.String())
	}
}

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/dhandiary-stats/internal/auth"
	"github.com/tomtom215/dhandiary-stats/internal/metrics"
	"github.com/tomtom215/dhandiary-stats/internal/ratelimit"
)

func TestPipeline_StopsAtFirstRejection(t *testing.T) {
	var called []string
	step := func(name string, out Outcome) Step {
		return StepFunc(func(*Context) Outcome {
			called = append(called, name)
			return out
		})
	}

	p := Pipeline{
		step("a", Next()),
		step("b", Reject(http.StatusTeapot, "nope", map[string]string{"X-Test": "1"})),
		step("c", Next()),
	}
	rej := p.Run(&Context{Request: httptest.NewRequest("GET", "/", nil)})

	if rej == nil {
		t.Fatal("expected rejection")
	}
	if rej.Status != http.StatusTeapot || rej.Message != "nope" || rej.Headers["X-Test"] != "1" {
		t.Errorf("unexpected rejection %+v", rej)
	}
	if len(called) != 2 || called[1] != "b" {
		t.Errorf("steps called = %v, want [a b]", called)
	}
}

func TestPipeline_AllContinue(t *testing.T) {
	p := Pipeline{StepFunc(func(*Context) Outcome { return Next() })}
	if rej := p.Run(&Context{}); rej != nil {
		t.Errorf("expected nil rejection, got %+v", rej)
	}
	if rej := (Pipeline{}).Run(&Context{}); rej != nil {
		t.Errorf("empty pipeline rejected: %+v", rej)
	}
}

func TestPipeline_StopWithoutResponse(t *testing.T) {
	p := Pipeline{StepFunc(func(*Context) Outcome { return Outcome{} })}
	rej := p.Run(&Context{})
	if rej == nil || rej.Status != http.StatusInternalServerError {
		t.Errorf("expected 500 rejection, got %+v", rej)
	}
}

// stubLimiter returns a fixed decision.
type stubLimiter struct {
	decision ratelimit.Decision
	err      error
	keys     []string
}

func (s *stubLimiter) Check(_ context.Context, key string) (ratelimit.Decision, error) {
	s.keys = append(s.keys, key)
	return s.decision, s.err
}

func TestRateLimitStep(t *testing.T) {
	resetAt := time.UnixMilli(1767225600123)

	t.Run("allowed", func(t *testing.T) {
		lim := &stubLimiter{decision: ratelimit.Decision{Allowed: true, Remaining: 5}}
		req := httptest.NewRequest("GET", "/stats-users", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		c := &Context{Request: req, Endpoint: "stats-users"}

		out := RateLimit(lim, nil, ratelimit.StoreMemory).Process(c)
		if !out.Continue {
			t.Fatal("allowed request should continue")
		}
		if c.ClientID != "203.0.113.9" {
			t.Errorf("ClientID = %q", c.ClientID)
		}
	})

	t.Run("denied", func(t *testing.T) {
		hits := metrics.APIRateLimitHits.WithLabelValues("stats-finance")
		before := testutil.ToFloat64(hits)

		lim := &stubLimiter{decision: ratelimit.Decision{Allowed: false, ResetAt: resetAt}}
		c := &Context{Request: httptest.NewRequest("GET", "/stats-finance", nil), Endpoint: "stats-finance"}

		out := RateLimit(lim, nil, ratelimit.StoreMemory).Process(c)
		if out.Continue || out.Response == nil {
			t.Fatal("denied request should be rejected")
		}
		if out.Response.Status != http.StatusTooManyRequests || out.Response.Message != "Rate limit exceeded" {
			t.Errorf("unexpected rejection %+v", out.Response)
		}
		if got := out.Response.Headers["X-RateLimit-Remaining"]; got != "0" {
			t.Errorf("X-RateLimit-Remaining = %q", got)
		}
		if got := out.Response.Headers["X-RateLimit-Reset"]; got != strconv.FormatInt(resetAt.UnixMilli(), 10) {
			t.Errorf("X-RateLimit-Reset = %q", got)
		}
		if lim.keys[0] != ratelimit.UnknownClient {
			t.Errorf("key = %q, want unknown", lim.keys[0])
		}
		if got := testutil.ToFloat64(hits) - before; got != 1 {
			t.Errorf("rate limit hits delta = %v", got)
		}
	})

	t.Run("store error fails open", func(t *testing.T) {
		errs := metrics.RateLimitStoreErrors.WithLabelValues(ratelimit.StoreRedis)
		before := testutil.ToFloat64(errs)

		lim := &stubLimiter{err: errors.New("dial tcp: connection refused")}
		c := &Context{Request: httptest.NewRequest("GET", "/stats-users", nil)}

		if out := RateLimit(lim, nil, ratelimit.StoreRedis).Process(c); !out.Continue {
			t.Error("store error should let the request through")
		}
		if got := testutil.ToFloat64(errs) - before; got != 1 {
			t.Errorf("store errors delta = %v", got)
		}
	})

	t.Run("custom key func", func(t *testing.T) {
		lim := &stubLimiter{decision: ratelimit.Decision{Allowed: true}}
		c := &Context{Request: httptest.NewRequest("GET", "/", nil)}
		RateLimit(lim, func(*http.Request) string { return "fixed" }, ratelimit.StoreMemory).Process(c)
		if lim.keys[0] != "fixed" {
			t.Errorf("key = %q, want fixed", lim.keys[0])
		}
	})
}

// stubAuthenticator returns a fixed result.
type stubAuthenticator auth.Result

func (s stubAuthenticator) Validate(*http.Request) auth.Result {
	return auth.Result(s)
}

func TestAuthenticateStep(t *testing.T) {
	tests := []struct {
		name    string
		result  auth.Result
		wantMsg string
	}{
		{"authorized", auth.Result{Authorized: true, Role: auth.RoleAdmin}, ""},
		{"rejected with message", auth.Result{Error: "Invalid credentials"}, "Invalid credentials"},
		{"rejected without message", auth.Result{}, "Unauthorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Context{Request: httptest.NewRequest("GET", "/stats-users", nil)}
			out := Authenticate(stubAuthenticator(tt.result)).Process(c)

			if tt.wantMsg == "" {
				if !out.Continue {
					t.Fatal("expected continue")
				}
				if c.Auth == nil || c.Auth.Role != auth.RoleAdmin {
					t.Errorf("Auth not recorded: %+v", c.Auth)
				}
				return
			}
			if out.Continue {
				t.Fatal("expected rejection")
			}
			if out.Response.Status != http.StatusUnauthorized || out.Response.Message != tt.wantMsg {
				t.Errorf("unexpected rejection %+v", out.Response)
			}
		})
	}
}

func TestValidateQueryStep(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c := &Context{Request: httptest.NewRequest("GET", "/stats-timeseries?range=30d&from=2026-01-01", nil)}
		if out := ValidateQuery().Process(c); !out.Continue {
			t.Fatalf("expected continue, got %+v", out.Response)
		}
		if c.Params == nil || c.Params.Range != "30d" || c.Params.From != "2026-01-01" {
			t.Errorf("Params = %+v", c.Params)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		failures := metrics.APIValidationFailures.WithLabelValues("stats-timeseries")
		before := testutil.ToFloat64(failures)

		c := &Context{
			Request:  httptest.NewRequest("GET", "/stats-timeseries?range=1y", nil),
			Endpoint: "stats-timeseries",
		}
		out := ValidateQuery().Process(c)
		if out.Continue {
			t.Fatal("expected rejection")
		}
		if out.Response.Status != http.StatusBadRequest {
			t.Errorf("status = %d", out.Response.Status)
		}
		if out.Response.Message != "Invalid range. Must be one of: 7d, 30d, 90d, 12m, all" {
			t.Errorf("message = %q", out.Response.Message)
		}
		if got := testutil.ToFloat64(failures) - before; got != 1 {
			t.Errorf("validation failures delta = %v", got)
		}
	})
}

func TestFullPipelineOrder(t *testing.T) {
	// A rate-limited request with bad credentials reports the rate limit.
	lim := &stubLimiter{decision: ratelimit.Decision{Allowed: false}}
	p := Pipeline{
		RateLimit(lim, nil, ratelimit.StoreMemory),
		Authenticate(auth.NewAuthenticator("secret")),
		ValidateQuery(),
	}
	req := httptest.NewRequest("GET", "/stats-timeseries?range=bad", nil)
	rej := p.Run(&Context{Request: req})
	if rej == nil || rej.Status != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %+v", rej)
	}

	// Authenticated but invalid params yields 400.
	lim.decision = ratelimit.Decision{Allowed: true}
	req = httptest.NewRequest("GET", "/stats-timeseries?range=bad", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rej = p.Run(&Context{Request: req})
	if rej == nil || rej.Status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %+v", rej)
	}
}

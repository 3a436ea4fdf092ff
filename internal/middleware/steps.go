// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package middleware

import (
	"net/http"
	"strconv"

	"github.com/tomtom215/dhandiary-stats/internal/auth"
	"github.com/tomtom215/dhandiary-stats/internal/logging"
	"github.com/tomtom215/dhandiary-stats/internal/metrics"
	"github.com/tomtom215/dhandiary-stats/internal/ratelimit"
	"github.com/tomtom215/dhandiary-stats/internal/validation"
)

// Rejection messages.
const (
	MsgRateLimited  = "Rate limit exceeded"
	MsgUnauthorized = "Unauthorized"
)

// KeyFunc derives the rate-limit key of a request.
type KeyFunc func(r *http.Request) string

// RequestAuthenticator validates the credentials of a request.
type RequestAuthenticator interface {
	Validate(r *http.Request) auth.Result
}

// RateLimit admits requests through limiter. keyFunc defaults to
// ratelimit.ClientIdentifier. A failing store is logged and counted, and the
// request is let through.
func RateLimit(limiter ratelimit.Limiter, keyFunc KeyFunc, store string) Step {
	if keyFunc == nil {
		keyFunc = ratelimit.ClientIdentifier
	}
	return StepFunc(func(c *Context) Outcome {
		key := keyFunc(c.Request)
		c.ClientID = key

		ctx := c.Request.Context()
		decision, err := limiter.Check(ctx, key)
		if err != nil {
			metrics.RateLimitStoreErrors.WithLabelValues(store).Inc()
			logging.CtxErr(ctx, err).
				Str("store", store).
				Str("client_id", key).
				Msg("Rate limit store unavailable; allowing request")
			return Next()
		}

		if !decision.Allowed {
			metrics.APIRateLimitHits.WithLabelValues(c.Endpoint).Inc()
			logging.LogSecurityEvent(ctx, &logging.SecurityEvent{
				Event:    "rate_limited",
				Reason:   MsgRateLimited,
				ClientID: key,
				Path:     c.Request.URL.Path,
			})
			return Reject(http.StatusTooManyRequests, MsgRateLimited, map[string]string{
				"X-RateLimit-Remaining": "0",
				"X-RateLimit-Reset":     strconv.FormatInt(decision.ResetAt.UnixMilli(), 10),
			})
		}
		return Next()
	})
}

// Authenticate rejects requests a does not authorize with 401.
func Authenticate(a RequestAuthenticator) Step {
	return StepFunc(func(c *Context) Outcome {
		result := a.Validate(c.Request)
		if !result.Authorized {
			msg := result.Error
			if msg == "" {
				msg = MsgUnauthorized
			}
			return Reject(http.StatusUnauthorized, msg, nil)
		}
		c.Auth = &result
		return Next()
	})
}

// ValidateQuery rejects malformed range/from/to parameters with 400.
func ValidateQuery() Step {
	return StepFunc(func(c *Context) Outcome {
		params := validation.ParseStatsQuery(c.Request.URL.Query())
		if err := validation.ValidateStatsQuery(params); err != nil {
			metrics.APIValidationFailures.WithLabelValues(c.Endpoint).Inc()
			return Reject(http.StatusBadRequest, err.First(), nil)
		}
		c.Params = &params
		return Next()
	})
}

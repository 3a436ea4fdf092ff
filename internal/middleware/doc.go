// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

/*
Package middleware provides request admission and HTTP middleware for the
stats API.

# Admission Pipeline

Every stats endpoint runs a Pipeline before touching the database:

	pipeline := middleware.Pipeline{
	    middleware.RateLimit(limiter, ratelimit.ClientIdentifier, "memory"),
	    middleware.Authenticate(auth.NewAuthenticator(secret)),
	    middleware.ValidateQuery(), // stats-timeseries only
	}
	if rej := pipeline.Run(&middleware.Context{Request: r, Endpoint: "stats-users"}); rej != nil {
	    // write rej.Status, rej.Message and rej.Headers
	}

Steps run in order and the first rejection wins, so a rate-limited request
is never authenticated and an unauthenticated one is never validated.

Rejections:

  - 429 "Rate limit exceeded" with X-RateLimit-Remaining: 0 and
    X-RateLimit-Reset in Unix milliseconds
  - 401 with the authenticator message
  - 400 with the first failing validation message

A rate-limit store error does not reject; the request is allowed and the
error is counted in ratelimit_store_errors_total.

# CORS

CORS computes the four Access-Control headers added to every stats
response, preflight and rejections included.

# HTTP Middleware

  - RequestID: echoes X-Request-ID or generates a UUID v4, and puts
    request_id and correlation_id on the logging context
  - PrometheusMetrics: api_requests_total, api_request_duration_seconds
    and api_active_requests, labelled by chi route pattern

Both use the func(http.Handler) http.Handler shape expected by chi.
*/
package middleware

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

// Package ratelimit implements fixed-window request limiting per client.
//
// A window starts on a client's first request and lasts Window. Within it
// the first Max requests are allowed and every later one is denied until
// the window resets. Two stores are provided:
//
//   - MemoryLimiter: a mutex-guarded map local to the process (default)
//   - RedisLimiter: a shared counter for deployments with several replicas
//
// Clients are keyed by ClientIdentifier, which trusts the proxy headers
// X-Forwarded-For and X-Real-IP. Requests without either header share the
// "unknown" key.
package ratelimit

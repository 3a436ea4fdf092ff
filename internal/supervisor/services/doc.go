// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

// Package services adapts the service's long-running components to
// suture.Service: the HTTP server and the connection pool gauge refresher.
// The rate-limit sweeper implements suture.Service directly in the ratelimit
// package.
package services

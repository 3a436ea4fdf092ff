// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package database

import (
	"context"
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"
)

var (
	// ErrMissingDatabaseURL is returned by Execute and Ping when no connection
	// string is configured.
	ErrMissingDatabaseURL = errors.New("DATABASE_URL environment variable is not set")

	// ErrAcquireTimeout is returned when no pool connection became available
	// within the acquire timeout.
	ErrAcquireTimeout = errors.New("timed out acquiring database connection")
)

// Error types used as the error_type label of db_query_errors_total.
const (
	errorTypeConfig      = "config"
	errorTypeTimeout     = "timeout"
	errorTypeCanceled    = "canceled"
	errorTypeCircuitOpen = "circuit_open"
	errorTypeQuery       = "query"
)

// classifyError maps an Execute error to a metric label. nil maps to "".
func classifyError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingDatabaseURL):
		return errorTypeConfig
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return errorTypeCircuitOpen
	case errors.Is(err, context.Canceled):
		return errorTypeCanceled
	case errors.Is(err, ErrAcquireTimeout), errors.Is(err, context.DeadlineExceeded):
		return errorTypeTimeout
	default:
		return errorTypeQuery
	}
}

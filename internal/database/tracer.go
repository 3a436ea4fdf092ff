// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package database

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/time/rate"

	"github.com/tomtom215/dhandiary-stats/internal/logging"
)

// poolErrorLogInterval bounds how often the tracer logs repeated failures.
const poolErrorLogInterval = 10 * time.Second

// poolTracer logs connection and query failures seen by pgx. It never
// changes the outcome for the caller; the error still flows back through
// Execute.
type poolTracer struct {
	connectLog *rate.Sometimes
	queryLog   *rate.Sometimes
}

var (
	_ pgx.QueryTracer   = (*poolTracer)(nil)
	_ pgx.ConnectTracer = (*poolTracer)(nil)
)

func newPoolTracer() *poolTracer {
	return &poolTracer{
		connectLog: &rate.Sometimes{First: 1, Interval: poolErrorLogInterval},
		queryLog:   &rate.Sometimes{First: 1, Interval: poolErrorLogInterval},
	}
}

// TraceConnectStart implements pgx.ConnectTracer.
func (t *poolTracer) TraceConnectStart(ctx context.Context, _ pgx.TraceConnectStartData) context.Context {
	return ctx
}

// TraceConnectEnd logs failed background and foreground connects.
func (t *poolTracer) TraceConnectEnd(ctx context.Context, data pgx.TraceConnectEndData) {
	if data.Err == nil || errors.Is(data.Err, context.Canceled) {
		return
	}
	t.connectLog.Do(func() {
		logging.Ctx(ctx).Error().Err(data.Err).
			Str("component", "database").
			Msg("Unexpected database pool error")
	})
}

// TraceQueryStart implements pgx.QueryTracer.
func (t *poolTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	return ctx
}

// TraceQueryEnd logs failed queries.
func (t *poolTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	if data.Err == nil || errors.Is(data.Err, context.Canceled) {
		return
	}
	t.queryLog.Do(func() {
		logging.Ctx(ctx).Warn().Err(data.Err).
			Str("component", "database").
			Msg("Query failed")
	})
}

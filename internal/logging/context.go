// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	correlationIDKey
	loggerKey
)

// NewCorrelationID returns the first eight characters of a random UUID.
func NewCorrelationID() string {
	return uuid.NewString()[:8]
}

// WithRequestID stores the X-Request-ID value for Ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the stored request ID or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithCorrelationID stores a correlation ID for Ctx.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationID returns the stored correlation ID or "".
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

// ContextWithLogger makes Ctx log through logger instead of the global one.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Ctx returns the request-scoped logger: the one stored by ContextWithLogger
// (or the global logger) with request_id and correlation_id attached.
//
//	logging.Ctx(ctx).Warn().Str("endpoint", ep).Msg("Rate limit exceeded")
func Ctx(ctx context.Context) *zerolog.Logger {
	base, ok := ctx.Value(loggerKey).(zerolog.Logger)
	if !ok {
		base = Logger()
	}

	fields := base.With()
	if id := RequestID(ctx); id != "" {
		fields = fields.Str("request_id", id)
	}
	if id := CorrelationID(ctx); id != "" {
		fields = fields.Str("correlation_id", id)
	}
	l := fields.Logger()
	return &l
}

// CtxErr starts an error event on Ctx(ctx) carrying err.
func CtxErr(ctx context.Context, err error) *zerolog.Event {
	return Ctx(ctx).Err(err)
}

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package logging

import (
	"context"
	"log/slog"

	"github.com/rs/zerolog"
)

// NewSlogLogger bridges log/slog onto the global zerolog logger. The
// supervisor tree hands it to sutureslog.
func NewSlogLogger() *slog.Logger {
	return slog.New(newSlogHandler(Logger()))
}

// slogHandler writes slog records as zerolog events. Attributes bound with
// WithAttrs keep the group prefix that was open when they were bound.
type slogHandler struct {
	logger zerolog.Logger
	bound  []slog.Attr // keys already qualified
	prefix string
}

//nolint:gocritic // zerolog.Logger is designed to be passed by value
func newSlogHandler(l zerolog.Logger) *slogHandler {
	return &slogHandler{logger: l}
}

func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return toZerolog(level) >= h.logger.GetLevel()
}

//nolint:gocritic // slog.Record is passed by value per slog.Handler interface
func (h *slogHandler) Handle(_ context.Context, r slog.Record) error {
	e := h.logger.WithLevel(toZerolog(r.Level))
	for _, a := range h.bound {
		e = appendAttr(e, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		e = appendAttr(e, h.prefix, a)
		return true
	})
	e.Msg(r.Message)
	return nil
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.bound = make([]slog.Attr, len(h.bound), len(h.bound)+len(attrs))
	copy(next.bound, h.bound)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		next.bound = append(next.bound, a)
	}
	return &next
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func appendAttr(e *zerolog.Event, prefix string, a slog.Attr) *zerolog.Event {
	v := a.Value.Resolve()
	key := prefix + a.Key

	switch v.Kind() {
	case slog.KindGroup:
		// An inline group (empty key) flattens into the current prefix.
		inner := prefix
		if a.Key != "" {
			inner = key + "."
		}
		for _, ga := range v.Group() {
			e = appendAttr(e, inner, ga)
		}
		return e
	case slog.KindString:
		return e.Str(key, v.String())
	case slog.KindInt64:
		return e.Int64(key, v.Int64())
	case slog.KindUint64:
		return e.Uint64(key, v.Uint64())
	case slog.KindFloat64:
		return e.Float64(key, v.Float64())
	case slog.KindBool:
		return e.Bool(key, v.Bool())
	case slog.KindDuration:
		return e.Dur(key, v.Duration())
	case slog.KindTime:
		return e.Time(key, v.Time())
	default:
		if err, ok := v.Any().(error); ok {
			return e.AnErr(key, err)
		}
		return e.Interface(key, v.Any())
	}
}

func toZerolog(level slog.Level) zerolog.Level {
	switch {
	case level >= slog.LevelError:
		return zerolog.ErrorLevel
	case level >= slog.LevelWarn:
		return zerolog.WarnLevel
	case level >= slog.LevelInfo:
		return zerolog.InfoLevel
	case level >= slog.LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

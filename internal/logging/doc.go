// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

// Package logging provides the zerolog-based logger shared by every package
// of the stats service.
//
// The package keeps a single global logger configured once from main:
//
//	logging.Init(logging.FromConfig(cfg.Logging))
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//
// Handlers and services log through the request context so that request and
// correlation ids are attached automatically:
//
//	logging.Ctx(ctx).Error().Err(err).Msg("Error fetching global stats")
//
// Libraries that only speak log/slog (sutureslog) are bridged with
// NewSlogLogger.
//
// Always terminate event chains with Msg or Send; an unterminated chain is
// never written.
package logging

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

/*
Package database owns the Postgres connection pool used by the stats services.

# Connection Manager

Manager wraps a pgxpool.Pool that is built lazily on the first Execute call
from DATABASE_URL. Construction never touches the network, so the service
starts (and answers preflight and auth failures) without a database.

	mgr := database.NewManager(&cfg.Database)
	defer mgr.Shutdown()

	rows, err := mgr.Execute(ctx, query.UserMetrics)

Pool bounds come from configuration (defaults: 10 connections, 30s idle
timeout, 5s connect timeout). Acquiring a connection is bounded by the
connect timeout; a request that cannot get a connection in time fails with
ErrAcquireTimeout instead of queueing forever. Every acquired connection is
released when the query finishes, whether it succeeded or not. Queries run
under the caller's context, so a dropped request cancels its queries.

TLS is configured through the connection string (sslmode=require for hosted
Postgres such as Neon).

# Circuit Breaker

Execute runs through a sony/gobreaker circuit breaker. After a configurable
number of consecutive failures the circuit opens and queries fail fast with
gobreaker.ErrOpenState until the cool-down elapses. Context cancellation is
not counted as a failure. There are no retries.

# Asynchronous Errors

Connection and query failures observed by the pgx tracer are logged through
zerolog with throttling (golang.org/x/time/rate.Sometimes) and never returned
to unrelated callers.

# Row Decoding

Row is the single place where loosely typed driver values are coerced into
DTO fields. Int, Float and Text return zero values for NULL, missing or
unparseable columns, and never return NaN or Inf. See row.go.

# Shutdown

Shutdown closes the pool and clears it; the next Execute builds a new one.
It is safe to call more than once.
*/
package database

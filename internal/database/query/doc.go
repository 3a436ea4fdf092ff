// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

// Package query holds the aggregate SQL statements behind the stats endpoints.
//
// Every statement is a named, parameterless, read-only SELECT over the
// DhanDiary sync schema (users, transactions, daily_summaries,
// monthly_summaries). The schema itself is owned by the sync service; this
// package only reads it.
//
// # Conventions
//
// These rules hold for every statement in the catalog:
//
//   - Monetary aggregates skip soft-deleted rows (deleted_at IS NOT NULL).
//     The only place deleted rows are counted is deleted_transaction_count.
//   - Ratios and percentages guard the zero-denominator case with
//     CASE WHEN d > 0 ... ELSE 0 END, so the result is 0 rather than an error
//     or a non-finite value.
//   - Daily buckets cover the trailing 30 days; monthly buckets cover
//     the trailing 12 months. Both are ordered newest-first.
//   - Column aliases are snake_case and are read back through database.Row.
//
// # Usage
//
//	rows, err := manager.Execute(ctx, query.UserMetrics)
//	if err != nil {
//	    return err
//	}
//	total := rows[0].Int("total_users")
//
// # Catalog
//
// All returns every statement. Names are stable and are used as the "query"
// label of the db_query_duration_seconds histogram.
package query

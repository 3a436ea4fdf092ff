// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

/*
Package stats computes the admin dashboard metrics from the DhanDiary
Postgres database.

Each metric family is one Service method backed by one or more statements
from the query catalog:

  - UserMetrics: user_metrics
  - TransactionMetrics: transaction_metrics
  - FinancialMetrics: financial_metrics, monthly_trend, currency_breakdown
  - TimeSeries: daily_activity, monthly_growth, peak_usage_day
  - SystemHealth: system_health
  - Global: the user, transaction, financial and health families

Statements of one family run concurrently on an errgroup. The first failure
cancels the siblings and is returned; there are no retries.

# Decoding

Rows are decoded through database.Row, so a NULL or malformed column becomes
the zero value of the field instead of an error. An aggregate statement that
returns no row at all is an error wrapping ErrMetricsUnavailable:

	users, err := svc.UserMetrics(ctx)
	if errors.Is(err, stats.ErrMetricsUnavailable) {
	    // Failed to fetch user metrics
	}

List statements that return no rows yield empty (non-nil) slices.
*/
package stats

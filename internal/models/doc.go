// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

/*
Package models defines the response shapes of the stats API.

JSON field names are camelCase and fixed by the admin dashboard that
consumes them. The models carry no behavior beyond construction helpers.

Key Components:

  - Envelope: the {success, data, error, timestamp} wrapper for every response
  - UserMetrics, TransactionMetrics: single-row aggregates
  - FinancialMetrics: totals plus MonthlyFinancialTrend and CurrencyBreakdown lists
  - TimeSeriesStats: DailyActivity, MonthlyGrowth and the optional PeakUsageDay
  - SystemHealthMetrics: sync and summary-table health
  - GlobalStats: the condensed overview assembled from the four families above

Invariants:

  - Numeric fields are always finite; absent aggregates are 0.
  - Lists are never nil, so they serialize as [] rather than null.
  - Optional objects (HighestTransaction, PeakUsageDay) and the last
    transaction time are pointers and serialize as null when absent.
  - Timestamps use FormatTimestamp: ISO-8601, UTC, millisecond precision.
*/
package models

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package query

// Query is a named SQL statement.
type Query struct {
	// Name identifies the statement in logs and metrics.
	Name string
	// SQL is the statement text. Placeholders use the $1 form.
	SQL string
}

// String returns the query name.
func (q Query) String() string {
	return q.Name
}

// All returns the full catalog in a stable order.
func All() []Query {
	return []Query{
		UserMetrics,
		TransactionMetrics,
		FinancialMetrics,
		MonthlyTrend,
		CurrencyBreakdown,
		DailyActivity,
		MonthlyGrowth,
		PeakUsageDay,
		SystemHealth,
	}
}

// ByName looks up a catalog statement.
func ByName(name string) (Query, bool) {
	for _, q := range All() {
		if q.Name == name {
			return q, true
		}
	}
	return Query{}, false
}

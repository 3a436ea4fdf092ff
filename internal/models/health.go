// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package models

// SystemHealthMetrics reports sync backlog and summary-table consistency.
type SystemHealthMetrics struct {
	// LastTransactionTime is nil when there are no live transactions.
	LastTransactionTime *string        `json:"lastTransactionTime"`
	UsersWithSyncIssues int64          `json:"usersWithSyncIssues"`
	TableRowCounts      TableRowCounts `json:"tableRowCounts"`
	TriggersHealth      TriggersHealth `json:"triggersHealth"`
	DatabaseSize        DatabaseSize   `json:"databaseSize"`
}

// TableRowCounts holds raw row counts, soft-deleted rows included.
type TableRowCounts struct {
	Users            int64 `json:"users"`
	Transactions     int64 `json:"transactions"`
	DailySummaries   int64 `json:"dailySummaries"`
	MonthlySummaries int64 `json:"monthlySummaries"`
}

// TriggersHealth describes the summary materialization.
type TriggersHealth struct {
	// MissingSummaries is the number of days in the trailing 30-day window
	// with no daily summary row.
	MissingSummaries int64 `json:"missingSummaries"`
	InconsistentData bool  `json:"inconsistentData"`
}

// DatabaseSize is a row-count based estimate, not a storage measurement.
type DatabaseSize struct {
	Estimated string `json:"estimated"`
}

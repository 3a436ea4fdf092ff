// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package models

// DataFreshnessRealTime marks a snapshot computed at request time.
const DataFreshnessRealTime = "Real-time"

// GlobalStats is the dashboard overview. Every field is copied from the
// corresponding family result; nothing is recomputed.
type GlobalStats struct {
	User        UserMetrics        `json:"user"`
	Transaction TransactionMetrics `json:"transaction"`
	Financial   FinancialSummary   `json:"financial"`
	Health      HealthSummary      `json:"health"`
	Snapshot    Snapshot           `json:"snapshot"`
}

// FinancialSummary is the subset of FinancialMetrics shown on the overview.
type FinancialSummary struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	NetBalance   float64 `json:"netBalance"`
}

// HealthSummary is the subset of SystemHealthMetrics shown on the overview.
type HealthSummary struct {
	LastTransactionTime *string `json:"lastTransactionTime"`
	UsersWithSyncIssues int64   `json:"usersWithSyncIssues"`
}

// Snapshot records when the overview was generated.
type Snapshot struct {
	GeneratedAt   string `json:"generatedAt"`
	DataFreshness string `json:"dataFreshness"`
}

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package models

// TimeSeriesStats holds the daily and monthly activity series. Both lists
// are newest-first.
type TimeSeriesStats struct {
	DailyActivity []DailyActivity `json:"dailyActivity"`
	MonthlyGrowth []MonthlyGrowth `json:"monthlyGrowth"`
	PeakUsageDay  *PeakUsageDay   `json:"peakUsageDay"`
}

// DailyActivity is one day of the trailing 30-day window.
type DailyActivity struct {
	Date             string  `json:"date"`
	TransactionCount int64   `json:"transactionCount"`
	Income           float64 `json:"income"`
	Expense          float64 `json:"expense"`
	UniqueUsers      int64   `json:"uniqueUsers"`
}

// MonthlyGrowth is one month of user and transaction growth.
type MonthlyGrowth struct {
	Year         int64   `json:"year"`
	Month        int64   `json:"month"`
	MonthLabel   string  `json:"monthLabel"`
	NewUsers     int64   `json:"newUsers"`
	TotalUsers   int64   `json:"totalUsers"`
	Transactions int64   `json:"transactions"`
	Income       float64 `json:"income"`
	Expense      float64 `json:"expense"`
}

// PeakUsageDay is the busiest day of the trailing 30 days.
type PeakUsageDay struct {
	Date             string `json:"date"`
	TransactionCount int64  `json:"transactionCount"`
}

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package models

// UserMetrics summarizes the user base. Rates are percentages rounded to
// two decimals.
type UserMetrics struct {
	TotalUsers                   int64   `json:"totalUsers"`
	ActiveUsers7d                int64   `json:"activeUsers7d"`
	ActiveUsers30d               int64   `json:"activeUsers30d"`
	NewUsersToday                int64   `json:"newUsersToday"`
	NewUsersThisMonth            int64   `json:"newUsersThisMonth"`
	UserGrowthRate               float64 `json:"userGrowthRate"`
	UsersWithTransactions        int64   `json:"usersWithTransactions"`
	UsersWithTransactionsPercent float64 `json:"usersWithTransactionsPercent"`
	ChurnedUsers                 int64   `json:"churnedUsers"`
	AvgTransactionsPerUser       float64 `json:"avgTransactionsPerUser"`
}

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package models

// TransactionMetrics summarizes transaction volume. Counts exclude
// soft-deleted rows except DeletedTransactionCount.
type TransactionMetrics struct {
	TotalTransactions       int64   `json:"totalTransactions"`
	TransactionsToday       int64   `json:"transactionsToday"`
	TransactionsThisMonth   int64   `json:"transactionsThisMonth"`
	AvgTransactionsPerUser  float64 `json:"avgTransactionsPerUser"`
	IncomeTransactionCount  int64   `json:"incomeTransactionCount"`
	ExpenseTransactionCount int64   `json:"expenseTransactionCount"`
	DeletedTransactionCount int64   `json:"deletedTransactionCount"`
	SyncBacklogCount        int64   `json:"syncBacklogCount"`
	TransactionGrowthRate   float64 `json:"transactionGrowthRate"`
}

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package stats

import (
	"context"

	"github.com/tomtom215/dhandiary-stats/internal/database"
	"github.com/tomtom215/dhandiary-stats/internal/database/query"
	"github.com/tomtom215/dhandiary-stats/internal/models"
)

// TransactionMetrics returns transaction volume counts and rates.
func (s *Service) TransactionMetrics(ctx context.Context) (*models.TransactionMetrics, error) {
	row, err := s.first(ctx, query.TransactionMetrics, "transaction")
	if err != nil {
		return nil, err
	}
	m := decodeTransactionMetrics(row)
	return &m, nil
}

func decodeTransactionMetrics(row database.Row) models.TransactionMetrics {
	return models.TransactionMetrics{
		TotalTransactions:       row.Int("total_transactions"),
		TransactionsToday:       row.Int("transactions_today"),
		TransactionsThisMonth:   row.Int("transactions_this_month"),
		AvgTransactionsPerUser:  row.Float("avg_transactions_per_user"),
		IncomeTransactionCount:  row.Int("income_transaction_count"),
		ExpenseTransactionCount: row.Int("expense_transaction_count"),
		DeletedTransactionCount: row.Int("deleted_transaction_count"),
		SyncBacklogCount:        row.Int("sync_backlog_count"),
		TransactionGrowthRate:   row.Float("transaction_growth_rate"),
	}
}

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package stats

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/dhandiary-stats/internal/database"
	"github.com/tomtom215/dhandiary-stats/internal/database/query"
	"github.com/tomtom215/dhandiary-stats/internal/models"
)

// FinancialMetrics returns money totals, the 12-month trend and the
// per-currency breakdown. The three statements run concurrently.
func (s *Service) FinancialMetrics(ctx context.Context) (*models.FinancialMetrics, error) {
	var (
		totals    database.Row
		trendRows []database.Row
		currRows  []database.Row
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		row, err := s.first(gctx, query.FinancialMetrics, "financial")
		totals = row
		return err
	})
	g.Go(func() error {
		rows, err := s.db.Execute(gctx, query.MonthlyTrend)
		trendRows = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.db.Execute(gctx, query.CurrencyBreakdown)
		currRows = rows
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m := decodeFinancialMetrics(totals)
	m.MonthlyTrend = decodeAll(trendRows, decodeMonthlyTrend)
	m.CurrencyBreakdown = decodeAll(currRows, decodeCurrencyBreakdown)
	return &m, nil
}

func decodeFinancialMetrics(row database.Row) models.FinancialMetrics {
	return models.FinancialMetrics{
		TotalIncome:             row.Float("total_income"),
		TotalExpense:            row.Float("total_expense"),
		NetBalance:              row.Float("net_balance"),
		IncomeThisMonth:         row.Float("income_this_month"),
		ExpenseThisMonth:        row.Float("expense_this_month"),
		HighestTransaction:      decodeHighestTransaction(row),
		AverageTransactionValue: row.Float("average_transaction_value"),
		AverageIncomeValue:      row.Float("average_income_value"),
		AverageExpenseValue:     row.Float("average_expense_value"),
	}
}

// decodeHighestTransaction returns nil when there is no live transaction or
// its amount is zero.
func decodeHighestTransaction(row database.Row) *models.HighestTransaction {
	amount := row.Float("highest_transaction_amount")
	if amount == 0 {
		return nil
	}
	ht := &models.HighestTransaction{
		Amount: amount,
		Type:   row.Text("highest_transaction_type"),
	}
	if date := row.TimestampString("highest_transaction_date"); date != nil {
		ht.Date = *date
	}
	return ht
}

func decodeMonthlyTrend(row database.Row) models.MonthlyFinancialTrend {
	return models.MonthlyFinancialTrend{
		Year:             row.Int("year"),
		Month:            row.Int("month"),
		MonthLabel:       row.Text("month_label"),
		Income:           row.Float("income"),
		Expense:          row.Float("expense"),
		Net:              row.Float("net"),
		TransactionCount: row.Int("transaction_count"),
	}
}

func decodeCurrencyBreakdown(row database.Row) models.CurrencyBreakdown {
	return models.CurrencyBreakdown{
		Currency:         row.Text("currency"),
		TotalIncome:      row.Float("total_income"),
		TotalExpense:     row.Float("total_expense"),
		NetBalance:       row.Float("net_balance"),
		TransactionCount: row.Int("transaction_count"),
	}
}

// decodeAll maps rows in order. The result is never nil so an empty list
// encodes as [].
func decodeAll[T any](rows []database.Row, decode func(database.Row) T) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		out = append(out, decode(row))
	}
	return out
}

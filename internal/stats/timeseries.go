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

// TimeSeries returns the 30-day daily activity, the 12-month growth series
// and the busiest recent day. None of the statements is an aggregate, so an
// empty database yields empty lists and a nil peak day rather than an error.
func (s *Service) TimeSeries(ctx context.Context) (*models.TimeSeriesStats, error) {
	var daily, monthly, peak []database.Row

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.db.Execute(gctx, query.DailyActivity)
		daily = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.db.Execute(gctx, query.MonthlyGrowth)
		monthly = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.db.Execute(gctx, query.PeakUsageDay)
		peak = rows
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ts := &models.TimeSeriesStats{
		DailyActivity: decodeAll(daily, decodeDailyActivity),
		MonthlyGrowth: decodeAll(monthly, decodeMonthlyGrowth),
	}
	if len(peak) > 0 {
		ts.PeakUsageDay = &models.PeakUsageDay{
			Date:             peak[0].Text("date"),
			TransactionCount: peak[0].Int("transaction_count"),
		}
	}
	return ts, nil
}

func decodeDailyActivity(row database.Row) models.DailyActivity {
	return models.DailyActivity{
		Date:             row.Text("date"),
		TransactionCount: row.Int("transaction_count"),
		Income:           row.Float("income"),
		Expense:          row.Float("expense"),
		UniqueUsers:      row.Int("unique_users"),
	}
}

func decodeMonthlyGrowth(row database.Row) models.MonthlyGrowth {
	return models.MonthlyGrowth{
		Year:         row.Int("year"),
		Month:        row.Int("month"),
		MonthLabel:   row.Text("month_label"),
		NewUsers:     row.Int("new_users"),
		TotalUsers:   row.Int("total_users"),
		Transactions: row.Int("transactions"),
		Income:       row.Float("income"),
		Expense:      row.Float("expense"),
	}
}

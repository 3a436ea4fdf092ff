// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package stats

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/dhandiary-stats/internal/models"
)

// Global returns the dashboard overview. The four families are fetched
// concurrently; any failure fails the whole overview.
func (s *Service) Global(ctx context.Context) (*models.GlobalStats, error) {
	var (
		users  *models.UserMetrics
		txns   *models.TransactionMetrics
		fin    *models.FinancialMetrics
		health *models.SystemHealthMetrics
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = s.UserMetrics(gctx)
		return err
	})
	g.Go(func() (err error) {
		txns, err = s.TransactionMetrics(gctx)
		return err
	})
	g.Go(func() (err error) {
		fin, err = s.FinancialMetrics(gctx)
		return err
	})
	g.Go(func() (err error) {
		health, err = s.SystemHealth(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.GlobalStats{
		User:        *users,
		Transaction: *txns,
		Financial: models.FinancialSummary{
			TotalIncome:  fin.TotalIncome,
			TotalExpense: fin.TotalExpense,
			NetBalance:   fin.NetBalance,
		},
		Health: models.HealthSummary{
			LastTransactionTime: health.LastTransactionTime,
			UsersWithSyncIssues: health.UsersWithSyncIssues,
		},
		Snapshot: models.Snapshot{
			GeneratedAt:   models.FormatTimestamp(s.now()),
			DataFreshness: models.DataFreshnessRealTime,
		},
	}, nil
}

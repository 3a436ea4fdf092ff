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

// UserMetrics returns user base counts and rates.
func (s *Service) UserMetrics(ctx context.Context) (*models.UserMetrics, error) {
	row, err := s.first(ctx, query.UserMetrics, "user")
	if err != nil {
		return nil, err
	}
	m := decodeUserMetrics(row)
	return &m, nil
}

func decodeUserMetrics(row database.Row) models.UserMetrics {
	return models.UserMetrics{
		TotalUsers:                   row.Int("total_users"),
		ActiveUsers7d:                row.Int("active_users_7d"),
		ActiveUsers30d:               row.Int("active_users_30d"),
		NewUsersToday:                row.Int("new_users_today"),
		NewUsersThisMonth:            row.Int("new_users_this_month"),
		UserGrowthRate:               row.Float("user_growth_rate"),
		UsersWithTransactions:        row.Int("users_with_transactions"),
		UsersWithTransactionsPercent: row.Float("users_with_transactions_percent"),
		ChurnedUsers:                 row.Int("churned_users"),
		AvgTransactionsPerUser:       row.Float("avg_transactions_per_user"),
	}
}

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package stats

import (
	"context"
	"fmt"

	"github.com/tomtom215/dhandiary-stats/internal/database"
	"github.com/tomtom215/dhandiary-stats/internal/database/query"
	"github.com/tomtom215/dhandiary-stats/internal/models"
)

// bytesPerRow is the flat per-row estimate behind DatabaseSize.
const bytesPerRow = 1024

// SystemHealth returns sync backlog, row counts and summary consistency.
func (s *Service) SystemHealth(ctx context.Context) (*models.SystemHealthMetrics, error) {
	row, err := s.first(ctx, query.SystemHealth, "system health")
	if err != nil {
		return nil, err
	}
	h := decodeSystemHealth(row)
	return &h, nil
}

func decodeSystemHealth(row database.Row) models.SystemHealthMetrics {
	counts := models.TableRowCounts{
		Users:            row.Int("users_count"),
		Transactions:     row.Int("transactions_count"),
		DailySummaries:   row.Int("daily_summaries_count"),
		MonthlySummaries: row.Int("monthly_summaries_count"),
	}
	missing := row.Int("missing_summaries")

	return models.SystemHealthMetrics{
		LastTransactionTime: row.TimestampString("last_time"),
		UsersWithSyncIssues: row.Int("users_with_sync_issues"),
		TableRowCounts:      counts,
		TriggersHealth: models.TriggersHealth{
			MissingSummaries: missing,
			InconsistentData: missing > 0,
		},
		DatabaseSize: models.DatabaseSize{
			Estimated: estimateSize(counts),
		},
	}
}

// estimateSize renders the row-count estimate in megabytes, e.g. "1.25 MB".
func estimateSize(c models.TableRowCounts) string {
	total := c.Users + c.Transactions + c.DailySummaries + c.MonthlySummaries
	mb := float64(total*bytesPerRow) / (1024 * 1024)
	return fmt.Sprintf("%.2f MB", mb)
}

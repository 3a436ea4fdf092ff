// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package query

// SystemHealth returns one row describing sync and summary health.
//
// missing_summaries walks every calendar day of the trailing 30-day window
// (today included) and counts the days that have no daily_summaries row. It
// observes the summary triggers; it does not repair them.
var SystemHealth = Query{
	Name: "system_health",
	SQL: `
WITH
  last_transaction AS (
    SELECT MAX(created_at) AS last_time
    FROM transactions
    WHERE deleted_at IS NULL
  ),
  sync_issues AS (
    SELECT COUNT(DISTINCT user_id) AS users_with_issues
    FROM transactions
    WHERE need_sync = true AND deleted_at IS NULL
  ),
  row_counts AS (
    SELECT
      (SELECT COUNT(*) FROM users) AS users_count,
      (SELECT COUNT(*) FROM transactions) AS transactions_count,
      (SELECT COUNT(*) FROM daily_summaries) AS daily_summaries_count,
      (SELECT COUNT(*) FROM monthly_summaries) AS monthly_summaries_count
  ),
  missing_summaries AS (
    SELECT COUNT(*) AS missing_days
    FROM generate_series(
      CURRENT_DATE - INTERVAL '30 days',
      CURRENT_DATE,
      INTERVAL '1 day'
    ) AS d
    WHERE NOT EXISTS (
      SELECT 1 FROM daily_summaries ds
      WHERE ds.date = d::DATE
    )
  )
SELECT
  lt.last_time,
  COALESCE(si.users_with_issues, 0) AS users_with_sync_issues,
  rc.users_count,
  rc.transactions_count,
  rc.daily_summaries_count,
  rc.monthly_summaries_count,
  ms.missing_days AS missing_summaries
FROM last_transaction lt
CROSS JOIN sync_issues si
CROSS JOIN row_counts rc
CROSS JOIN missing_summaries ms`,
}

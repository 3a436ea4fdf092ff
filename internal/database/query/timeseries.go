// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package query

// DailyActivity returns one row per summarized day in the trailing 30 days,
// newest first. daily_summaries holds one row per user and day, so the
// per-day figures are summed across users.
var DailyActivity = Query{
	Name: "daily_activity",
	SQL: `
SELECT
  ds.date::TEXT AS date,
  SUM(ds.count) AS transaction_count,
  ROUND(SUM(ds.total_in)::numeric, 2) AS income,
  ROUND(SUM(ds.total_out)::numeric, 2) AS expense,
  COUNT(DISTINCT ds.user_id) FILTER (WHERE ds.count > 0) AS unique_users
FROM daily_summaries ds
WHERE ds.date >= CURRENT_DATE - INTERVAL '30 days'
GROUP BY ds.date
ORDER BY ds.date DESC`,
}

// MonthlyGrowth joins monthly summaries with new-user and cumulative-user
// counts for the trailing 12 months, newest first.
var MonthlyGrowth = Query{
	Name: "monthly_growth",
	SQL: `
WITH
  user_growth AS (
    SELECT
      EXTRACT(YEAR FROM created_at)::INT AS year,
      EXTRACT(MONTH FROM created_at)::INT AS month,
      COUNT(*) AS new_users
    FROM users
    WHERE created_at >= DATE_TRUNC('month', CURRENT_DATE) - INTERVAL '11 months'
    GROUP BY 1, 2
  ),
  total_users_per_month AS (
    SELECT
      EXTRACT(YEAR FROM m)::INT AS year,
      EXTRACT(MONTH FROM m)::INT AS month,
      (SELECT COUNT(*) FROM users WHERE created_at < m + INTERVAL '1 month') AS total_users
    FROM generate_series(
      DATE_TRUNC('month', CURRENT_DATE) - INTERVAL '11 months',
      DATE_TRUNC('month', CURRENT_DATE),
      INTERVAL '1 month'
    ) AS m
  )
SELECT
  ms.year,
  ms.month,
  TO_CHAR(MAKE_DATE(ms.year, ms.month, 1), 'Mon YYYY') AS month_label,
  COALESCE(ug.new_users, 0) AS new_users,
  COALESCE(tu.total_users, 0) AS total_users,
  ms.count AS transactions,
  ROUND(ms.total_in::numeric, 2) AS income,
  ROUND(ms.total_out::numeric, 2) AS expense
FROM monthly_summaries ms
LEFT JOIN user_growth ug ON ug.year = ms.year AND ug.month = ms.month
LEFT JOIN total_users_per_month tu ON tu.year = ms.year AND tu.month = ms.month
WHERE MAKE_DATE(ms.year, ms.month, 1) >= DATE_TRUNC('month', CURRENT_DATE) - INTERVAL '11 months'
ORDER BY ms.year DESC, ms.month DESC
LIMIT 12`,
}

// PeakUsageDay returns the busiest day of the trailing 30 days, or no row.
var PeakUsageDay = Query{
	Name: "peak_usage_day",
	SQL: `
SELECT
  date::TEXT AS date,
  SUM(count) AS transaction_count
FROM daily_summaries
WHERE date >= CURRENT_DATE - INTERVAL '30 days'
GROUP BY date
ORDER BY transaction_count DESC, date DESC
LIMIT 1`,
}

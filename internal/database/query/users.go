// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package query

// UserMetrics returns one row of user counts and ratios. Only active accounts
// are counted. A churned user is an active account older than 60 days with
// no live transaction in the last 60 days.
var UserMetrics = Query{
	Name: "user_metrics",
	SQL: `
WITH
  user_counts AS (
    SELECT
      COUNT(*) AS total_users,
      COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '7 days') AS new_users_7d,
      COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '30 days') AS new_users_30d,
      COUNT(*) FILTER (WHERE created_at >= CURRENT_DATE) AS new_users_today,
      COUNT(*) FILTER (WHERE updated_at >= NOW() - INTERVAL '7 days') AS active_users_7d,
      COUNT(*) FILTER (WHERE updated_at >= NOW() - INTERVAL '30 days') AS active_users_30d
    FROM users
    WHERE status = 'active'
  ),
  user_transactions AS (
    SELECT COUNT(DISTINCT user_id) AS users_with_transactions
    FROM transactions
    WHERE deleted_at IS NULL
  ),
  churned_users AS (
    SELECT COUNT(*) AS churned_count
    FROM users u
    WHERE u.status = 'active'
      AND u.created_at < NOW() - INTERVAL '60 days'
      AND NOT EXISTS (
        SELECT 1 FROM transactions t
        WHERE t.user_id = u.id
          AND t.deleted_at IS NULL
          AND t.created_at >= NOW() - INTERVAL '60 days'
      )
  ),
  avg_transactions AS (
    SELECT
      CASE
        WHEN COUNT(DISTINCT user_id) > 0
        THEN COUNT(*)::FLOAT / COUNT(DISTINCT user_id)
        ELSE 0
      END AS avg_per_user
    FROM transactions
    WHERE deleted_at IS NULL
  )
SELECT
  uc.total_users,
  uc.active_users_7d,
  uc.active_users_30d,
  uc.new_users_today,
  uc.new_users_30d AS new_users_this_month,
  CASE
    WHEN uc.total_users - uc.new_users_30d > 0
    THEN ROUND(((uc.new_users_30d::FLOAT / (uc.total_users - uc.new_users_30d)) * 100)::numeric, 2)
    ELSE 0
  END AS user_growth_rate,
  COALESCE(ut.users_with_transactions, 0) AS users_with_transactions,
  CASE
    WHEN uc.total_users > 0
    THEN ROUND(((COALESCE(ut.users_with_transactions, 0)::FLOAT / uc.total_users) * 100)::numeric, 2)
    ELSE 0
  END AS users_with_transactions_percent,
  cu.churned_count AS churned_users,
  ROUND(at.avg_per_user::numeric, 2) AS avg_transactions_per_user
FROM user_counts uc
CROSS JOIN user_transactions ut
CROSS JOIN churned_users cu
CROSS JOIN avg_transactions at`,
}

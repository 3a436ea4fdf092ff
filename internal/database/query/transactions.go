// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package query

// TransactionMetrics returns one row of transaction counts. The growth rate
// compares the current calendar month against the previous one.
var TransactionMetrics = Query{
	Name: "transaction_metrics",
	SQL: `
WITH
  transaction_counts AS (
    SELECT
      COUNT(*) FILTER (WHERE deleted_at IS NULL) AS total_transactions,
      COUNT(*) FILTER (WHERE deleted_at IS NULL AND date >= CURRENT_DATE) AS transactions_today,
      COUNT(*) FILTER (WHERE deleted_at IS NULL AND date >= DATE_TRUNC('month', CURRENT_DATE)) AS transactions_this_month,
      COUNT(*) FILTER (WHERE deleted_at IS NULL AND type = 'income') AS income_count,
      COUNT(*) FILTER (WHERE deleted_at IS NULL AND type = 'expense') AS expense_count,
      COUNT(*) FILTER (WHERE deleted_at IS NOT NULL) AS deleted_count,
      COUNT(*) FILTER (WHERE deleted_at IS NULL AND need_sync = true) AS sync_backlog,
      COUNT(DISTINCT user_id) FILTER (WHERE deleted_at IS NULL) AS users_with_transactions
    FROM transactions
  ),
  month_counts AS (
    SELECT
      COUNT(*) FILTER (
        WHERE date >= DATE_TRUNC('month', CURRENT_DATE)
      ) AS current_month,
      COUNT(*) FILTER (
        WHERE date >= DATE_TRUNC('month', CURRENT_DATE) - INTERVAL '1 month'
          AND date < DATE_TRUNC('month', CURRENT_DATE)
      ) AS previous_month
    FROM transactions
    WHERE deleted_at IS NULL
  )
SELECT
  tc.total_transactions,
  tc.transactions_today,
  tc.transactions_this_month,
  CASE
    WHEN tc.users_with_transactions > 0
    THEN ROUND((tc.total_transactions::FLOAT / tc.users_with_transactions)::numeric, 2)
    ELSE 0
  END AS avg_transactions_per_user,
  tc.income_count AS income_transaction_count,
  tc.expense_count AS expense_transaction_count,
  tc.deleted_count AS deleted_transaction_count,
  tc.sync_backlog AS sync_backlog_count,
  CASE
    WHEN mc.previous_month > 0
    THEN ROUND((((mc.current_month - mc.previous_month)::FLOAT / mc.previous_month) * 100)::numeric, 2)
    ELSE 0
  END AS transaction_growth_rate
FROM transaction_counts tc
CROSS JOIN month_counts mc`,
}

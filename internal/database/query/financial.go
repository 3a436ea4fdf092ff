// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package query

// FinancialMetrics returns one row of income/expense totals, averages and the
// single largest live transaction. The highest_transaction_* columns are NULL
// when there are no live transactions.
var FinancialMetrics = Query{
	Name: "financial_metrics",
	SQL: `
WITH
  totals AS (
    SELECT
      COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS total_income,
      COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS total_expense,
      COALESCE(AVG(amount), 0) AS avg_transaction_value,
      COALESCE(AVG(CASE WHEN type = 'income' THEN amount END), 0) AS avg_income_value,
      COALESCE(AVG(CASE WHEN type = 'expense' THEN amount END), 0) AS avg_expense_value
    FROM transactions
    WHERE deleted_at IS NULL
  ),
  this_month AS (
    SELECT
      COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS income_this_month,
      COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS expense_this_month
    FROM transactions
    WHERE deleted_at IS NULL
      AND date >= DATE_TRUNC('month', CURRENT_DATE)
  ),
  highest_transaction AS (
    SELECT amount, type, date
    FROM transactions
    WHERE deleted_at IS NULL
    ORDER BY amount DESC
    LIMIT 1
  )
SELECT
  ROUND(t.total_income::numeric, 2) AS total_income,
  ROUND(t.total_expense::numeric, 2) AS total_expense,
  ROUND((t.total_income - t.total_expense)::numeric, 2) AS net_balance,
  ROUND(tm.income_this_month::numeric, 2) AS income_this_month,
  ROUND(tm.expense_this_month::numeric, 2) AS expense_this_month,
  ROUND(t.avg_transaction_value::numeric, 2) AS average_transaction_value,
  ROUND(t.avg_income_value::numeric, 2) AS average_income_value,
  ROUND(t.avg_expense_value::numeric, 2) AS average_expense_value,
  ht.amount AS highest_transaction_amount,
  ht.type AS highest_transaction_type,
  ht.date AS highest_transaction_date
FROM totals t
CROSS JOIN this_month tm
LEFT JOIN highest_transaction ht ON true`,
}

// MonthlyTrend returns up to 12 monthly summary rows, newest first.
var MonthlyTrend = Query{
	Name: "monthly_trend",
	SQL: `
SELECT
  ms.year,
  ms.month,
  TO_CHAR(MAKE_DATE(ms.year, ms.month, 1), 'Mon YYYY') AS month_label,
  ROUND(ms.total_in::numeric, 2) AS income,
  ROUND(ms.total_out::numeric, 2) AS expense,
  ROUND((ms.total_in - ms.total_out)::numeric, 2) AS net,
  ms.count AS transaction_count
FROM monthly_summaries ms
WHERE MAKE_DATE(ms.year, ms.month, 1) >= DATE_TRUNC('month', CURRENT_DATE) - INTERVAL '11 months'
ORDER BY ms.year DESC, ms.month DESC
LIMIT 12`,
}

// CurrencyBreakdown returns one row per currency, busiest first.
var CurrencyBreakdown = Query{
	Name: "currency_breakdown",
	SQL: `
SELECT
  currency,
  ROUND(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END)::numeric, 2) AS total_income,
  ROUND(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END)::numeric, 2) AS total_expense,
  ROUND((SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END)
       - SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END))::numeric, 2) AS net_balance,
  COUNT(*) AS transaction_count
FROM transactions
WHERE deleted_at IS NULL
GROUP BY currency
ORDER BY transaction_count DESC, currency ASC`,
}

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package models

// FinancialMetrics holds money totals across all users and currencies.
type FinancialMetrics struct {
	TotalIncome             float64                 `json:"totalIncome"`
	TotalExpense            float64                 `json:"totalExpense"`
	NetBalance              float64                 `json:"netBalance"`
	IncomeThisMonth         float64                 `json:"incomeThisMonth"`
	ExpenseThisMonth        float64                 `json:"expenseThisMonth"`
	HighestTransaction      *HighestTransaction     `json:"highestTransaction"`
	AverageTransactionValue float64                 `json:"averageTransactionValue"`
	AverageIncomeValue      float64                 `json:"averageIncomeValue"`
	AverageExpenseValue     float64                 `json:"averageExpenseValue"`
	MonthlyTrend            []MonthlyFinancialTrend `json:"monthlyTrend"`
	CurrencyBreakdown       []CurrencyBreakdown     `json:"currencyBreakdown"`
}

// HighestTransaction is the single largest live transaction.
type HighestTransaction struct {
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
	Date   string  `json:"date"`
}

// MonthlyFinancialTrend is one month of the trailing 12-month trend.
type MonthlyFinancialTrend struct {
	Year             int64   `json:"year"`
	Month            int64   `json:"month"`
	MonthLabel       string  `json:"monthLabel"`
	Income           float64 `json:"income"`
	Expense          float64 `json:"expense"`
	Net              float64 `json:"net"`
	TransactionCount int64   `json:"transactionCount"`
}

// CurrencyBreakdown aggregates live transactions of one currency.
type CurrencyBreakdown struct {
	Currency         string  `json:"currency"`
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpense     float64 `json:"totalExpense"`
	NetBalance       float64 `json:"netBalance"`
	TransactionCount int64   `json:"transactionCount"`
}

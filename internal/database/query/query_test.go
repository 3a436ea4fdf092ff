// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package query

import (
	"regexp"
	"strings"
	"testing"
)

func TestAll_UniqueNames(t *testing.T) {
	all := All()
	if len(all) != 9 {
		t.Fatalf("All() returned %d queries, want 9", len(all))
	}

	seen := make(map[string]bool)
	for _, q := range all {
		if q.Name == "" {
			t.Error("query with empty name")
		}
		if seen[q.Name] {
			t.Errorf("duplicate query name %q", q.Name)
		}
		seen[q.Name] = true
		if strings.TrimSpace(q.SQL) == "" {
			t.Errorf("%s: empty SQL", q.Name)
		}
	}
}

func TestByName(t *testing.T) {
	q, ok := ByName("system_health")
	if !ok {
		t.Fatal("ByName(system_health) not found")
	}
	if q.SQL != SystemHealth.SQL {
		t.Error("ByName(system_health) returned a different statement")
	}
	if _, ok := ByName("drop_everything"); ok {
		t.Error("ByName found an unknown query")
	}
	if SystemHealth.String() != "system_health" {
		t.Errorf("String() = %q", SystemHealth.String())
	}
}

var mutatingKeyword = regexp.MustCompile(`(?i)\b(INSERT|UPDATE|DELETE|DROP|ALTER|TRUNCATE|CREATE)\b`)

func TestAll_ReadOnly(t *testing.T) {
	for _, q := range All() {
		if m := mutatingKeyword.FindString(q.SQL); m != "" {
			t.Errorf("%s: contains mutating keyword %q", q.Name, m)
		}
		if strings.Contains(q.SQL, ";") {
			t.Errorf("%s: contains a statement separator", q.Name)
		}
	}
}

func TestAll_SoftDeleteFilter(t *testing.T) {
	for _, q := range All() {
		if !strings.Contains(q.SQL, "FROM transactions") {
			continue
		}
		if !strings.Contains(q.SQL, "deleted_at IS NULL") {
			t.Errorf("%s: reads transactions without excluding soft-deleted rows", q.Name)
		}
	}

	// The deletion count is the only aggregate that looks at deleted rows.
	if !strings.Contains(TransactionMetrics.SQL, "deleted_at IS NOT NULL) AS deleted_count") {
		t.Error("transaction_metrics: deleted_count must count soft-deleted rows")
	}
}

func TestRatiosGuardZeroDenominator(t *testing.T) {
	tests := []struct {
		q     Query
		guard string
	}{
		{UserMetrics, "WHEN uc.total_users - uc.new_users_30d > 0"},
		{UserMetrics, "WHEN uc.total_users > 0"},
		{UserMetrics, "WHEN COUNT(DISTINCT user_id) > 0"},
		{TransactionMetrics, "WHEN tc.users_with_transactions > 0"},
		{TransactionMetrics, "WHEN mc.previous_month > 0"},
	}

	for _, tt := range tests {
		if !strings.Contains(tt.q.SQL, tt.guard) {
			t.Errorf("%s: missing guard %q", tt.q.Name, tt.guard)
		}
	}
}

func TestTimeBucketWindows(t *testing.T) {
	tests := []struct {
		q      Query
		window string
		order  string
	}{
		{DailyActivity, "INTERVAL '30 days'", "ORDER BY ds.date DESC"},
		{PeakUsageDay, "INTERVAL '30 days'", "LIMIT 1"},
		{MonthlyTrend, "INTERVAL '11 months'", "ORDER BY ms.year DESC, ms.month DESC"},
		{MonthlyGrowth, "INTERVAL '11 months'", "ORDER BY ms.year DESC, ms.month DESC"},
	}

	for _, tt := range tests {
		if !strings.Contains(tt.q.SQL, tt.window) {
			t.Errorf("%s: missing window %q", tt.q.Name, tt.window)
		}
		if !strings.Contains(tt.q.SQL, tt.order) {
			t.Errorf("%s: missing ordering %q", tt.q.Name, tt.order)
		}
	}
	for _, q := range []Query{MonthlyTrend, MonthlyGrowth} {
		if !strings.Contains(q.SQL, "LIMIT 12") {
			t.Errorf("%s: missing LIMIT 12", q.Name)
		}
	}
}

func TestSystemHealth_MissingSummariesWalksCalendar(t *testing.T) {
	sql := SystemHealth.SQL
	for _, fragment := range []string{
		"generate_series(",
		"CURRENT_DATE - INTERVAL '30 days'",
		"INTERVAL '1 day'",
		"NOT EXISTS",
		"FROM daily_summaries ds",
	} {
		if !strings.Contains(sql, fragment) {
			t.Errorf("system_health: missing %q", fragment)
		}
	}
}

func TestTimeBucketAggregation(t *testing.T) {
	for _, q := range []Query{DailyActivity, PeakUsageDay} {
		if !regexp.MustCompile(`GROUP BY (ds\.)?date`).MatchString(q.SQL) {
			t.Errorf("%s: rows must be grouped per calendar day across users", q.Name)
		}
	}
	if !strings.Contains(MonthlyGrowth.SQL, "created_at < m + INTERVAL '1 month'") {
		t.Errorf("monthly_growth: total_users must count users as of month end")
	}
}

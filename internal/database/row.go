// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package database

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/tomtom215/dhandiary-stats/internal/models"
)

// Row is one result row keyed by column alias, as produced by pgx.RowToMap.
//
// pgx hands back int64 for COUNT, int32 for ::INT, float64 for FLOAT8,
// pgtype.Numeric for NUMERIC (ROUND, SUM over bigint), time.Time for
// timestamps and dates, and nil for NULL. The accessors below fold all of
// those into the DTO field types with one policy: NULL, missing or
// unparseable values decode to the zero value, and floats are always finite.
type Row map[string]any

// IsNull reports whether the column is missing or NULL.
func (r Row) IsNull(col string) bool {
	v, ok := r[col]
	if !ok || v == nil {
		return true
	}
	switch t := v.(type) {
	case pgtype.Numeric:
		return !t.Valid
	case pgtype.Text:
		return !t.Valid
	case pgtype.Timestamptz:
		return !t.Valid
	case pgtype.Timestamp:
		return !t.Valid
	case pgtype.Date:
		return !t.Valid
	}
	return false
}

// Int decodes an integer column. Fractional values are truncated toward zero.
func (r Row) Int(col string) int64 {
	d, ok := r.decimal(col)
	if !ok {
		return 0
	}
	return d.IntPart()
}

// Float decodes a numeric column.
func (r Row) Float(col string) float64 {
	if f, ok := r[col].(float64); ok {
		return finite(f)
	}
	if f, ok := r[col].(float32); ok {
		return finite(float64(f))
	}
	d, ok := r.decimal(col)
	if !ok {
		return 0
	}
	return finite(d.InexactFloat64())
}

// Text decodes a text column. Timestamps render in models.TimestampLayout.
func (r Row) Text(col string) string {
	switch v := r[col].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case pgtype.Text:
		if !v.Valid {
			return ""
		}
		return v.String
	case time.Time:
		return models.FormatTimestamp(v)
	case pgtype.Numeric:
		d, ok := numericToDecimal(v)
		if !ok {
			return ""
		}
		return d.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Timestamp decodes a timestamp column. ok is false for NULL or
// unparseable values.
func (r Row) Timestamp(col string) (time.Time, bool) {
	switch v := r[col].(type) {
	case time.Time:
		return v, true
	case pgtype.Timestamptz:
		return v.Time, v.Valid
	case pgtype.Timestamp:
		return v.Time, v.Valid
	case pgtype.Date:
		return v.Time, v.Valid
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07", "2006-01-02"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// TimestampString returns the column in models.TimestampLayout, or nil when
// it is NULL or unparseable.
func (r Row) TimestampString(col string) *string {
	t, ok := r.Timestamp(col)
	if !ok {
		return nil
	}
	s := models.FormatTimestamp(t)
	return &s
}

// decimal normalizes any numeric representation to a decimal.
func (r Row) decimal(col string) (decimal.Decimal, bool) {
	switch v := r[col].(type) {
	case nil:
		return decimal.Zero, false
	case int64:
		return decimal.NewFromInt(v), true
	case int32:
		return decimal.NewFromInt32(v), true
	case int16:
		return decimal.NewFromInt(int64(v)), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case uint32:
		return decimal.NewFromInt(int64(v)), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(v), true
	case float32:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(f), true
	case pgtype.Numeric:
		return numericToDecimal(v)
	case string:
		return parseDecimal(v)
	case []byte:
		return parseDecimal(string(v))
	case bool:
		if v {
			return decimal.NewFromInt(1), true
		}
		return decimal.Zero, true
	default:
		return decimal.Zero, false
	}
}

func numericToDecimal(n pgtype.Numeric) (decimal.Decimal, bool) {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite || n.Int == nil {
		return decimal.Zero, false
	}
	return decimal.NewFromBigInt(n.Int, n.Exp), true
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

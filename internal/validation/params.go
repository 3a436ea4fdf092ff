// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package validation

import (
	"net/url"
	"time"
)

const isoDateLayout = "2006-01-02"

// Valid values of the range parameter.
var StatsRanges = []string{"7d", "30d", "90d", "12m", "all"}

// MsgDateOrder is returned when from is after to.
const MsgDateOrder = `"from" date must be before "to" date`

// StatsQueryParams are the optional query parameters of the stats
// endpoints. Empty values mean the parameter is absent.
type StatsQueryParams struct {
	Range string `query:"range" validate:"omitempty,oneof=7d 30d 90d 12m all"`
	From  string `query:"from" validate:"omitempty,isodate"`
	To    string `query:"to" validate:"omitempty,isodate"`
}

// ParseStatsQuery reads the stats parameters from q. Only the first value
// of a repeated parameter is used.
func ParseStatsQuery(q url.Values) StatsQueryParams {
	return StatsQueryParams{
		Range: q.Get("range"),
		From:  q.Get("from"),
		To:    q.Get("to"),
	}
}

// ValidateStatsQuery checks p. Rules apply in order (range, from, to, date
// order) and the first failure is reported first. The order check only
// runs when both dates name real calendar days.
func ValidateStatsQuery(p StatsQueryParams) Errors {
	if err := Struct(&p); err != nil {
		return err
	}

	if p.From == "" || p.To == "" {
		return nil
	}
	from, errFrom := time.Parse(isoDateLayout, p.From)
	to, errTo := time.Parse(isoDateLayout, p.To)
	if errFrom != nil || errTo != nil {
		return nil
	}
	if from.After(to) {
		return Errors{{Field: "from", Tag: "dateorder", Value: p.From, Message: MsgDateOrder}}
	}
	return nil
}

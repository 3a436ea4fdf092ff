// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

/*
Package validation checks the query parameters of the stats endpoints.

# Stats Query Parameters

	range   one of 7d, 30d, 90d, 12m, all
	from    YYYY-MM-DD
	to      YYYY-MM-DD

All three are optional; an empty value counts as absent. When both dates
are given and name real days, from must not be after to. An equal pair is
accepted. A date such as 2024-02-30 has the right shape and passes the format
check, and the order check is then skipped.

# Error Messages

Messages are fixed strings the dashboard shows verbatim:

	Invalid range. Must be one of: 7d, 30d, 90d, 12m, all
	Invalid "from" date format. Use YYYY-MM-DD
	Invalid "to" date format. Use YYYY-MM-DD
	"from" date must be before "to" date

# Usage

	params := validation.ParseStatsQuery(r.URL.Query())
	if err := validation.ValidateStatsQuery(params); err != nil {
	    // 400 with err.First()
	}

Rules live in validate struct tags and run through a package-level
go-playground/validator v10 instance, which also registers the isodate tag.
*/
package validation

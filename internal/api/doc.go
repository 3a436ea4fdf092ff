// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

/*
Package api provides the HTTP layer of the stats service.

Six read-only admin endpoints expose the aggregates computed by the stats
package:

	GET /stats-global        overview of every metric family   (max-age=60)
	GET /stats-users         user growth and activity          (max-age=60)
	GET /stats-transactions  transaction volume and sync state (max-age=60)
	GET /stats-finance       income, expense and trends        (max-age=120)
	GET /stats-timeseries    daily activity and monthly growth (max-age=300)
	GET /stats-health        table counts and freshness        (max-age=30)

The same routes are mounted under /.netlify/functions so clients built
against the old serverless base URL keep working.

# Request Lifecycle

Every stats request goes through the same state machine:

 1. OPTIONS answers 204 with CORS headers and an empty body.
 2. Any method other than GET answers 405.
 3. The admission pipeline runs: rate limit, then admin auth, then (for
    stats-timeseries only) query validation. The first rejecting step
    decides the status (429, 401 or 400).
 4. The stats service runs under the configured request timeout. Its
    result is written as {"success":true,"data":...,"timestamp":...} with
    the endpoint's Cache-Control directive.
 5. A service error or panic is logged in full and answered with 500 and a
    sanitized message.

Every terminal response carries CORS headers.

# Operational Routes

/healthz, /readyz and /metrics sit outside the admission pipeline.
/healthz and /readyz are limited per IP with go-chi/httprate; /readyz pings
the connection pool.

Error sanitization:

In production (ENVIRONMENT or NODE_ENV set to production) service errors are
reported as "An internal error occurred". Otherwise the error message is
returned as is.
*/
package api

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered with the default registry through promauto at
package init and exposed at /metrics:

	curl http://localhost:8888/metrics

# Available Metrics

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}
  - api_auth_failures_total{reason}
  - api_validation_failures_total{endpoint}

Database:
  - db_query_duration_seconds{query}
  - db_query_errors_total{query,error_type}
  - db_pool_acquired_connections, db_pool_total_connections
  - circuit_breaker_state{name}, circuit_breaker_state_transitions_total

Rate limiting:
  - ratelimit_store_errors_total{store}
  - ratelimit_memory_entries

The endpoint label is the chi route pattern (for example "/stats-users"),
never the raw URL, so label cardinality stays bounded.
*/
package metrics

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

/*
Package config loads the stats service configuration with Koanf v2.

# Configuration Sources

Sources are layered, highest priority last:

  - Built-in defaults (defaultConfig)
  - Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/dhandiary-stats/config.yaml)
  - Environment variables, through an explicit mapping table

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT: bind address (default 0.0.0.0:8888)
  - REQUEST_TIMEOUT: per-request service timeout (default 30s)
  - SHUTDOWN_TIMEOUT: graceful shutdown budget (default 10s)
  - ENVIRONMENT or NODE_ENV: "production" enables error sanitization

Database:
  - DATABASE_URL: Postgres connection string (required at query time)
  - DB_MAX_CONNS, DB_IDLE_TIMEOUT, DB_CONNECT_TIMEOUT: pool bounds (10, 30s, 5s)
  - DB_BREAKER_ENABLED, DB_BREAKER_THRESHOLD, DB_BREAKER_TIMEOUT

Security:
  - ADMIN_API_KEY: shared admin bearer secret
  - ALLOWED_ORIGINS: comma-separated CORS allow-list (default *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW: fixed window (100 per 1m)
  - RATE_LIMIT_STORE: memory or redis
  - REDIS_URL, REDIS_KEY_PREFIX: shared rate-limit store

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

DATABASE_URL and ADMIN_API_KEY are deliberately not required at startup:
a missing connection string fails each query with a configuration error and
a missing admin key rejects each request with "Server configuration error".
*/
package config

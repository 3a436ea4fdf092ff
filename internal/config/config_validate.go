// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Accepted bounds and enumerations.
const (
	minPoolConns = 1
	maxPoolConns = 200

	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

var (
	rateLimitStores = []string{"memory", "redis"}
	logLevels       = []string{"trace", "debug", "info", "warn", "error"}
	logFormats      = []string{"json", "console"}

	// Fragments of example secrets copied from docs.
	placeholderFragments = []string{"REPLACE", "CHANGEME", "CHANGE_ME", "YOUR_SECRET", "YOUR_API_KEY", "PLACEHOLDER"}
)

// Validate reports every out-of-range or unknown setting, joined. A missing
// DATABASE_URL or ADMIN_API_KEY is not an error here: the server still
// starts and the affected requests fail individually.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	s := c.Server
	check(s.Port >= 1 && s.Port <= 65535, "HTTP_PORT must be between 1 and 65535")
	check(s.RequestTimeout > 0, "REQUEST_TIMEOUT must be positive")
	check(s.ShutdownTimeout > 0, "SHUTDOWN_TIMEOUT must be positive")

	db := c.Database
	check(db.MaxConns >= minPoolConns && db.MaxConns <= maxPoolConns,
		"DB_MAX_CONNS must be between %d and %d", minPoolConns, maxPoolConns)
	check(db.IdleTimeout > 0, "DB_IDLE_TIMEOUT must be positive")
	check(db.ConnectTimeout > 0, "DB_CONNECT_TIMEOUT must be positive")
	if db.Breaker.Enabled {
		check(db.Breaker.Threshold >= 1, "DB_BREAKER_THRESHOLD must be at least 1")
		check(db.Breaker.Timeout > 0, "DB_BREAKER_TIMEOUT must be positive")
	}

	sec := c.Security
	check(sec.AdminAPIKey == "" || !isPlaceholder(sec.AdminAPIKey),
		"ADMIN_API_KEY contains a placeholder value; generate one with: openssl rand -hex 32")
	check(sec.RateLimitReqs >= minRateLimitRequests && sec.RateLimitReqs <= maxRateLimitRequests,
		"RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	check(sec.RateLimitWindow >= minRateLimitWindow && sec.RateLimitWindow <= maxRateLimitWindow,
		"RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	check(slices.Contains(rateLimitStores, sec.RateLimitStore),
		"RATE_LIMIT_STORE must be one of: %s", strings.Join(rateLimitStores, ", "))
	check(sec.RateLimitStore != "redis" || c.Redis.URL != "",
		"REDIS_URL is required when RATE_LIMIT_STORE=redis")

	check(slices.Contains(logLevels, c.Logging.Level),
		"LOG_LEVEL must be one of: %s", strings.Join(logLevels, ", "))
	check(c.Logging.Format == "" || slices.Contains(logFormats, c.Logging.Format),
		"LOG_FORMAT must be one of: %s", strings.Join(logFormats, ", "))

	return errors.Join(errs...)
}

func isPlaceholder(v string) bool {
	upper := strings.ToUpper(v)
	return slices.ContainsFunc(placeholderFragments, func(f string) bool {
		return strings.Contains(upper, f)
	})
}

// HasWildcardCORS reports whether the allow-list contains "*".
func (c *Config) HasWildcardCORS() bool {
	return slices.Contains(c.Security.AllowedOrigins, "*")
}

// ShouldWarnAboutCORS is true when production still answers any origin.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && (len(c.Security.AllowedOrigins) == 0 || c.HasWildcardCORS())
}

// IsProduction is true when ENVIRONMENT or NODE_ENV says production (or prod).
func (c *Config) IsProduction() bool {
	return isProduction(c.Server.Environment) || isProduction(c.Server.NodeEnv)
}

func isProduction(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "production", "prod":
		return true
	}
	return false
}

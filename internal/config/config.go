// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Loading order (Koanf v2):
//  1. Defaults
//  2. Config file (optional YAML)
//  3. Environment variables
//
// Config is immutable after Load and safe for concurrent reads.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Security SecurityConfig `koanf:"security"`
	Redis    RedisConfig    `koanf:"redis"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// Environment comes from ENVIRONMENT; NodeEnv from NODE_ENV, kept for
	// deployments that still export the frontend's variable. Either one set to
	// production switches on error sanitization.
	Environment string `koanf:"environment"`
	NodeEnv     string `koanf:"node_env"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds the Postgres pool settings.
type DatabaseConfig struct {
	// URL is the Postgres connection string. Empty is allowed at load time.
	URL            string        `koanf:"url"`
	MaxConns       int32         `koanf:"max_conns"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
	Breaker        BreakerConfig `koanf:"breaker"`
}

// BreakerConfig controls the circuit breaker around query execution.
type BreakerConfig struct {
	Enabled bool `koanf:"enabled"`
	// Threshold is the number of consecutive failures that opens the circuit.
	Threshold uint32 `koanf:"threshold"`
	// Timeout is how long the circuit stays open before a trial request.
	Timeout time.Duration `koanf:"timeout"`
}

// SecurityConfig holds authentication, CORS and rate-limit settings.
type SecurityConfig struct {
	AdminAPIKey     string        `koanf:"admin_api_key"`
	AllowedOrigins  []string      `koanf:"allowed_origins"`
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
	// RateLimitStore selects the counter backend: "memory" or "redis".
	RateLimitStore string `koanf:"rate_limit_store"`
	// RateLimitSweep is how often expired in-memory windows are dropped.
	RateLimitSweep time.Duration `koanf:"rate_limit_sweep"`
}

// RedisConfig holds the shared rate-limit store connection.
type RedisConfig struct {
	URL       string `koanf:"url"`
	KeyPrefix string `koanf:"key_prefix"`
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, the optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

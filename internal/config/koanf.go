// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths searched for a config file, in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/dhandiary-stats/config.yaml",
	"/etc/dhandiary-stats/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns the built-in defaults. They are applied first and
// then overridden by the config file and environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8888,
			Host:            "0.0.0.0",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
			NodeEnv:         "",
		},
		Database: DatabaseConfig{
			URL:            "",
			MaxConns:       10,
			IdleTimeout:    30 * time.Second,
			ConnectTimeout: 5 * time.Second,
			Breaker: BreakerConfig{
				Enabled:   true,
				Threshold: 5,
				Timeout:   30 * time.Second,
			},
		},
		Security: SecurityConfig{
			AdminAPIKey:     "",
			AllowedOrigins:  []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			RateLimitStore:  "memory",
			RateLimitSweep:  5 * time.Minute,
		},
		Redis: RedisConfig{
			URL:       "",
			KeyPrefix: "dhandiary:ratelimit:",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf layers built-in defaults, the first config file found and
// the environment, in increasing priority, then validates the result.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}
	if err := k.Load(env.ProviderWithValue("", ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// findConfigFile returns CONFIG_PATH when that file exists, else the first
// existing entry of DefaultConfigPaths, else "".
func findConfigFile() string {
	candidates := DefaultConfigPaths
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		candidates = append([]string{p}, DefaultConfigPaths...)
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// envMappings maps lower-cased environment variable names to config paths.
var envMappings = map[string]string{
	"http_port":        "server.port",
	"http_host":        "server.host",
	"request_timeout":  "server.request_timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",
	"node_env":         "server.node_env",

	"database_url":         "database.url",
	"db_max_conns":         "database.max_conns",
	"db_idle_timeout":      "database.idle_timeout",
	"db_connect_timeout":   "database.connect_timeout",
	"db_breaker_enabled":   "database.breaker.enabled",
	"db_breaker_threshold": "database.breaker.threshold",
	"db_breaker_timeout":   "database.breaker.timeout",

	"admin_api_key":       "security.admin_api_key",
	"allowed_origins":     "security.allowed_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"rate_limit_store":    "security.rate_limit_store",
	"rate_limit_sweep":    "security.rate_limit_sweep",

	"redis_url":        "redis.url",
	"redis_key_prefix": "redis.key_prefix",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// listPaths hold comma-separated lists when set from the environment.
var listPaths = map[string]bool{
	"security.allowed_origins": true,
}

// envTransformFunc maps an environment variable name to its koanf path, or
// "" for variables the service does not read.
//
//	DATABASE_URL    -> database.url
//	ALLOWED_ORIGINS -> security.allowed_origins
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// envValue is the env provider callback. List paths are split on commas;
// a list with no entries is skipped so the default survives.
func envValue(key, value string) (string, any) {
	path := envTransformFunc(key)
	if path == "" || !listPaths[path] {
		return path, value
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return "", nil
	}
	return path, items
}

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"negative request timeout", func(c *Config) { c.Server.RequestTimeout = -time.Second }, "REQUEST_TIMEOUT"},
		{"pool too large", func(c *Config) { c.Database.MaxConns = 500 }, "DB_MAX_CONNS"},
		{"zero connect timeout", func(c *Config) { c.Database.ConnectTimeout = 0 }, "DB_CONNECT_TIMEOUT"},
		{"breaker threshold zero", func(c *Config) { c.Database.Breaker.Threshold = 0 }, "DB_BREAKER_THRESHOLD"},
		{"breaker disabled ignores threshold", func(c *Config) {
			c.Database.Breaker.Enabled = false
			c.Database.Breaker.Threshold = 0
		}, ""},
		{"placeholder key", func(c *Config) { c.Security.AdminAPIKey = "your_api_key_here" }, "ADMIN_API_KEY"},
		{"empty key allowed", func(c *Config) { c.Security.AdminAPIKey = "" }, ""},
		{"rate limit too high", func(c *Config) { c.Security.RateLimitReqs = 100001 }, "RATE_LIMIT_REQUESTS"},
		{"window too short", func(c *Config) { c.Security.RateLimitWindow = time.Millisecond }, "RATE_LIMIT_WINDOW"},
		{"window too long", func(c *Config) { c.Security.RateLimitWindow = 2 * time.Hour }, "RATE_LIMIT_WINDOW"},
		{"unknown store", func(c *Config) { c.Security.RateLimitStore = "etcd" }, "RATE_LIMIT_STORE"},
		{"redis without url", func(c *Config) { c.Security.RateLimitStore = "redis" }, "REDIS_URL"},
		{"redis with url", func(c *Config) {
			c.Security.RateLimitStore = "redis"
			c.Redis.URL = "redis://localhost:6379/0"
		}, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestIsProduction(t *testing.T) {
	tests := []struct {
		environment string
		nodeEnv     string
		want        bool
	}{
		{"development", "", false},
		{"production", "", true},
		{"prod", "", true},
		{"", "production", true},
		{"staging", "Production", true},
		{"staging", "development", false},
		{" PROD ", "", true},
	}

	for _, tt := range tests {
		cfg := defaultConfig()
		cfg.Server.Environment = tt.environment
		cfg.Server.NodeEnv = tt.nodeEnv
		if got := cfg.IsProduction(); got != tt.want {
			t.Errorf("IsProduction(ENVIRONMENT=%q, NODE_ENV=%q) = %v, want %v",
				tt.environment, tt.nodeEnv, got, tt.want)
		}
	}
}

func TestShouldWarnAboutCORS(t *testing.T) {
	cfg := defaultConfig()
	if cfg.ShouldWarnAboutCORS() {
		t.Error("ShouldWarnAboutCORS() = true outside production")
	}

	cfg.Server.Environment = "production"
	if !cfg.ShouldWarnAboutCORS() {
		t.Error("ShouldWarnAboutCORS() = false for wildcard in production")
	}

	cfg.Security.AllowedOrigins = []string{"https://admin.example.com"}
	if cfg.ShouldWarnAboutCORS() {
		t.Error("ShouldWarnAboutCORS() = true for explicit allow-list")
	}
	if cfg.HasWildcardCORS() {
		t.Error("HasWildcardCORS() = true for explicit allow-list")
	}
}

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

//go:build integration

// Package testinfra provides test infrastructure for integration testing with containers.
//
// This package uses testcontainers-go to run the real backing services of the
// stats API: Postgres with the DhanDiary schema, and Redis for the shared
// rate-limit store. Every file is behind the integration build tag:
//
//	go test -tags integration ./...
//
// # Postgres
//
//	func TestUserMetrics(t *testing.T) {
//	    pg := testinfra.NewPostgres(t)
//	    pg.Exec(t, testinfra.SeedFixture)
//
//	    mgr := database.NewManager(&config.DatabaseConfig{URL: pg.DSN, ...})
//	    defer mgr.Shutdown()
//	    // ...
//	}
//
// # Redis
//
//	rc := testinfra.NewRedis(t)
//	client := redis.NewClient(mustParse(rc.URL))
//
// # CI Considerations
//
// These tests require Docker. They are skipped gracefully if Docker is
// unavailable, and containers are terminated through t.Cleanup.
package testinfra

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

//go:build integration

package testinfra

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// DefaultPostgresImage matches the major version of the hosted database.
const DefaultPostgresImage = "postgres:16-alpine"

// PostgresContainer is a running Postgres with the DhanDiary schema applied.
type PostgresContainer struct {
	*postgres.PostgresContainer
	// DSN is a connection string usable as DATABASE_URL.
	DSN string
}

// NewPostgres starts a Postgres container, applies Schema and registers
// cleanup with t. The test is skipped when Docker is unavailable.
//
//	pg := testinfra.NewPostgres(t)
//	pg.Exec(t, testinfra.SeedFixture)
//	mgr := database.NewManager(&config.DatabaseConfig{URL: pg.DSN, ...})
func NewPostgres(t *testing.T) *PostgresContainer {
	t.Helper()
	requireDocker(t)

	ctx := context.Background()
	container, err := postgres.Run(ctx, DefaultPostgresImage,
		postgres.WithDatabase("dhandiary"),
		postgres.WithUsername("stats"),
		postgres.WithPassword("stats"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err, "failed to start postgres container")

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	pg := &PostgresContainer{PostgresContainer: container, DSN: dsn}
	pg.Exec(t, Schema)
	return pg
}

// Exec runs one or more SQL statements against the container.
func (p *PostgresContainer) Exec(t *testing.T, sql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, p.DSN)
	require.NoError(t, err, "failed to connect to postgres")
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx, sql)
	require.NoError(t, err, "failed to execute SQL")
}

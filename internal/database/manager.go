// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/dhandiary-stats/internal/config"
	"github.com/tomtom215/dhandiary-stats/internal/database/query"
	"github.com/tomtom215/dhandiary-stats/internal/logging"
	"github.com/tomtom215/dhandiary-stats/internal/metrics"
)

// Manager owns the process-wide Postgres pool. It is safe for concurrent use.
type Manager struct {
	cfg            config.DatabaseConfig
	acquireTimeout time.Duration
	breaker        *queryBreaker
	tracer         *poolTracer

	mu   sync.Mutex
	pool *pgxpool.Pool
}

// PoolStats is a point-in-time view of pool occupancy.
type PoolStats struct {
	AcquiredConns int32
	IdleConns     int32
	TotalConns    int32
	MaxConns      int32
}

// NewManager creates a Manager. No connection is opened until the first
// Execute or Ping.
func NewManager(cfg *config.DatabaseConfig) *Manager {
	return &Manager{
		cfg:            *cfg,
		acquireTimeout: cfg.ConnectTimeout,
		breaker:        newQueryBreaker(cfg.Breaker),
		tracer:         newPoolTracer(),
	}
}

// Execute runs q with args and returns every row. The pool is created on the
// first call.
func (m *Manager) Execute(ctx context.Context, q query.Query, args ...any) ([]Row, error) {
	start := time.Now()

	var rows []Row
	var err error
	if m.cfg.URL == "" {
		err = ErrMissingDatabaseURL
	} else {
		rows, err = m.breaker.execute(func() ([]Row, error) {
			return m.execute(ctx, q, args...)
		})
	}

	metrics.RecordDBQuery(q.Name, time.Since(start), classifyError(err))
	m.recordPoolStats()

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			logging.Ctx(ctx).Warn().Str("query", q.Name).Msg("[CIRCUIT BREAKER] Query rejected")
		}
		return nil, fmt.Errorf("query %s: %w", q.Name, err)
	}
	return rows, nil
}

func (m *Manager) execute(ctx context.Context, q query.Query, args ...any) ([]Row, error) {
	pool, err := m.getPool()
	if err != nil {
		return nil, err
	}

	conn, err := m.acquire(ctx, pool)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	pgRows, err := conn.Query(ctx, q.SQL, args...)
	if err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}

	rows, err := pgx.CollectRows(pgRows, func(row pgx.CollectableRow) (Row, error) {
		values, err := pgx.RowToMap(row)
		return Row(values), err
	})
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return rows, nil
}

// acquire checks out a connection, waiting at most the acquire timeout.
func (m *Manager) acquire(ctx context.Context, pool *pgxpool.Pool) (*pgxpool.Conn, error) {
	acquireCtx, cancel := context.WithTimeout(ctx, m.acquireTimeout)
	defer cancel()

	conn, err := pool.Acquire(acquireCtx)
	if err != nil {
		// Only our own deadline is an acquire timeout; a caller deadline or
		// cancellation passes through unchanged.
		if ctx.Err() == nil && errors.Is(acquireCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %v: %w", ErrAcquireTimeout, m.acquireTimeout, err)
		}
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	return conn, nil
}

// getPool returns the pool, building it on first use.
func (m *Manager) getPool() (*pgxpool.Pool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pool != nil {
		return m.pool, nil
	}
	if m.cfg.URL == "" {
		return nil, ErrMissingDatabaseURL
	}

	poolCfg, err := pgxpool.ParseConfig(m.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	poolCfg.MaxConns = m.cfg.MaxConns
	poolCfg.MaxConnIdleTime = m.cfg.IdleTimeout
	poolCfg.ConnConfig.ConnectTimeout = m.cfg.ConnectTimeout
	poolCfg.ConnConfig.Tracer = m.tracer

	// NewWithConfig does not dial; connections are opened on demand.
	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}

	logging.Info().
		Int32("max_conns", poolCfg.MaxConns).
		Dur("idle_timeout", poolCfg.MaxConnIdleTime).
		Dur("connect_timeout", poolCfg.ConnConfig.ConnectTimeout).
		Msg("Postgres pool created")

	m.pool = pool
	return pool, nil
}

// Ping checks that a connection can be acquired and used.
func (m *Manager) Ping(ctx context.Context) error {
	pool, err := m.getPool()
	if err != nil {
		return err
	}
	conn, err := m.acquire(ctx, pool)
	if err != nil {
		return err
	}
	defer conn.Release()

	if err := conn.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}

// Stats reports pool occupancy. Counts are zero before the pool exists.
func (m *Manager) Stats() PoolStats {
	m.mu.Lock()
	pool := m.pool
	m.mu.Unlock()

	if pool == nil {
		return PoolStats{MaxConns: m.cfg.MaxConns}
	}
	s := pool.Stat()
	return PoolStats{
		AcquiredConns: s.AcquiredConns(),
		IdleConns:     s.IdleConns(),
		TotalConns:    s.TotalConns(),
		MaxConns:      s.MaxConns(),
	}
}

// BreakerState returns the circuit state ("closed", "half-open", "open").
func (m *Manager) BreakerState() string {
	return m.breaker.state().String()
}

func (m *Manager) recordPoolStats() {
	s := m.Stats()
	metrics.RecordPoolStats(s.AcquiredConns, s.TotalConns)
}

// Shutdown closes the pool and clears it. A later Execute builds a new pool.
// Calling Shutdown more than once is a no-op.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	pool := m.pool
	m.pool = nil
	m.mu.Unlock()

	if pool == nil {
		return
	}
	pool.Close()
	logging.Info().Msg("Postgres pool closed")
}

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package stats

import (
	"context"
	"time"

	"github.com/tomtom215/dhandiary-stats/internal/database"
	"github.com/tomtom215/dhandiary-stats/internal/database/query"
)

// Querier runs a catalog statement. *database.Manager implements it.
type Querier interface {
	Execute(ctx context.Context, q query.Query, args ...any) ([]database.Row, error)
}

// Service computes metric families. It holds no per-request state and is
// safe for concurrent use.
type Service struct {
	db  Querier
	now func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used for snapshot timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a Service backed by db.
func NewService(db Querier, opts ...Option) *Service {
	s := &Service{
		db:  db,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// first runs an aggregate statement and returns its only row.
func (s *Service) first(ctx context.Context, q query.Query, family string) (database.Row, error) {
	rows, err := s.db.Execute(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, unavailable(family)
	}
	return rows[0], nil
}

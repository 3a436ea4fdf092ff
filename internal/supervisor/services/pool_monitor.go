// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package services

import (
	"context"
	"time"

	"github.com/tomtom215/dhandiary-stats/internal/database"
	"github.com/tomtom215/dhandiary-stats/internal/metrics"
)

// DefaultPoolMonitorInterval is the pool gauge refresh period.
const DefaultPoolMonitorInterval = 15 * time.Second

// PoolStatsSource reports connection pool usage. *database.Manager
// implements it.
type PoolStatsSource interface {
	Stats() database.PoolStats
}

// PoolMonitorService refreshes the db_pool_* gauges on a fixed interval so
// they stay current while no queries run.
type PoolMonitorService struct {
	source   PoolStatsSource
	interval time.Duration
}

// NewPoolMonitorService creates a monitor for source.
func NewPoolMonitorService(source PoolStatsSource, interval time.Duration) *PoolMonitorService {
	if interval <= 0 {
		interval = DefaultPoolMonitorInterval
	}
	return &PoolMonitorService{source: source, interval: interval}
}

// Serve implements suture.Service.
func (p *PoolMonitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.record()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.record()
		}
	}
}

func (p *PoolMonitorService) record() {
	s := p.source.Stats()
	metrics.RecordPoolStats(s.AcquiredConns, s.TotalConns)
}

// String implements fmt.Stringer.
func (p *PoolMonitorService) String() string {
	return "pool-monitor"
}

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package database

import (
	"context"
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/dhandiary-stats/internal/config"
	"github.com/tomtom215/dhandiary-stats/internal/logging"
	"github.com/tomtom215/dhandiary-stats/internal/metrics"
)

const breakerName = "postgres"

// queryBreaker trips after Threshold consecutive query failures and lets a
// single trial query through once Timeout has passed. A nil *queryBreaker
// is the disabled breaker.
type queryBreaker struct {
	cb *gobreaker.CircuitBreaker[[]Row]
}

func newQueryBreaker(cfg config.BreakerConfig) *queryBreaker {
	if !cfg.Enabled {
		return nil
	}
	setStateGauge(gobreaker.StateClosed)

	// gobreaker times the open state on the wall clock; tests use a short Timeout.
	return &queryBreaker{cb: gobreaker.NewCircuitBreaker[[]Row](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= cfg.Threshold
		},
		OnStateChange: onStateChange,
		// A caller that went away says nothing about database health. A
		// deadline (REQUEST_TIMEOUT or acquire timeout) still counts: a
		// database too slow to answer in time should trip the breaker.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})}
}

func onStateChange(name string, from, to gobreaker.State) {
	ev := logging.Info()
	if to == gobreaker.StateOpen {
		ev = logging.Warn()
	}
	ev.Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
		Msg("Circuit breaker state changed")

	setStateGauge(to)
	metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
}

// setStateGauge publishes closed=0, half-open=1, open=2, matching
// gobreaker's own State values.
func setStateGauge(s gobreaker.State) {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(float64(s))
}

func (b *queryBreaker) execute(fn func() ([]Row, error)) ([]Row, error) {
	if b == nil {
		return fn()
	}
	return b.cb.Execute(fn)
}

func (b *queryBreaker) state() gobreaker.State {
	if b == nil {
		return gobreaker.StateClosed
	}
	return b.cb.State()
}

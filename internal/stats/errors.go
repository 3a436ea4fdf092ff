// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package stats

import "errors"

// ErrMetricsUnavailable is wrapped by every error caused by an aggregate
// statement returning no row.
var ErrMetricsUnavailable = errors.New("metrics unavailable")

// UnavailableError names the metric family that could not be computed.
type UnavailableError struct {
	Family string
}

// Error returns the message shown to clients outside production.
func (e *UnavailableError) Error() string {
	return "Failed to fetch " + e.Family + " metrics"
}

// Unwrap lets errors.Is match ErrMetricsUnavailable.
func (e *UnavailableError) Unwrap() error {
	return ErrMetricsUnavailable
}

func unavailable(family string) error {
	return &UnavailableError{Family: family}
}

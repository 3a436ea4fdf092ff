// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	gobreaker "github.com/sony/gobreaker/v2"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"missing url", fmt.Errorf("query x: %w", ErrMissingDatabaseURL), errorTypeConfig},
		{"open circuit", fmt.Errorf("query x: %w", gobreaker.ErrOpenState), errorTypeCircuitOpen},
		{"half-open saturation", gobreaker.ErrTooManyRequests, errorTypeCircuitOpen},
		{"canceled", fmt.Errorf("execute: %w", context.Canceled), errorTypeCanceled},
		{"acquire timeout", fmt.Errorf("%w after 5s", ErrAcquireTimeout), errorTypeTimeout},
		{"deadline", context.DeadlineExceeded, errorTypeTimeout},
		{"other", errors.New("relation \"users\" does not exist"), errorTypeQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyError(tt.err); got != tt.want {
				t.Errorf("classifyError() = %q, want %q", got, tt.want)
			}
		})
	}
}

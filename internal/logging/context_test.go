// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNewCorrelationID(t *testing.T) {
	a, b := NewCorrelationID(), NewCorrelationID()
	if len(a) != 8 {
		t.Errorf("len = %d, want 8", len(a))
	}
	if a == b {
		t.Error("correlation IDs repeated")
	}
}

func TestContextIDs(t *testing.T) {
	ctx := context.Background()
	if RequestID(ctx) != "" || CorrelationID(ctx) != "" {
		t.Fatal("bare context should carry no IDs")
	}

	ctx = WithCorrelationID(WithRequestID(ctx, "req-1"), "abc12345")
	if got := RequestID(ctx); got != "req-1" {
		t.Errorf("RequestID = %q", got)
	}
	if got := CorrelationID(ctx); got != "abc12345" {
		t.Errorf("CorrelationID = %q", got)
	}
}

func TestCtx_UsesStoredLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = WithRequestID(ctx, "req-42")
	ctx = WithCorrelationID(ctx, "corr0001")

	Ctx(ctx).Info().Msg("handled")

	out := buf.String()
	for _, want := range []string{`"request_id":"req-42"`, `"correlation_id":"corr0001"`, "handled"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in %s", want, out)
		}
	}
}

func TestCtx_FallsBackToGlobal(t *testing.T) {
	buf := captureGlobal(t, Config{})

	Ctx(context.Background()).Info().Msg("global")

	out := buf.String()
	if !strings.Contains(out, `"service":"dhandiary-stats"`) {
		t.Errorf("expected the global logger, got: %s", out)
	}
	if strings.Contains(out, "request_id") {
		t.Errorf("unexpected request_id: %s", out)
	}
}

func TestCtxErr(t *testing.T) {
	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))

	CtxErr(ctx, errors.New("query failed")).Msg("Error fetching user stats")

	out := buf.String()
	if !strings.Contains(out, `"error":"query failed"`) || !strings.Contains(out, `"level":"error"`) {
		t.Errorf("unexpected output: %s", out)
	}
}

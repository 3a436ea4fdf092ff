// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSanitizeToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  string
	}{
		{"", ""},
		{"short", "[REDACTED]"},
		{"12345678", "[REDACTED]"},
		{"sk_live_abcdef", "sk_l...[14]"},
	}

	for _, tt := range tests {
		if got := SanitizeToken(tt.token); got != tt.want {
			t.Errorf("SanitizeToken(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestLogSecurityEvent_MasksToken(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), zerolog.New(&buf))

	LogSecurityEvent(ctx, &SecurityEvent{
		Event:    "auth_failed",
		Reason:   "Invalid credentials",
		ClientID: "203.0.113.7",
		Token:    "super-secret-admin-token",
		Path:     "/stats-global",
	})

	output := buf.String()
	if strings.Contains(output, "super-secret-admin-token") {
		t.Fatalf("token leaked into log: %s", output)
	}
	for _, want := range []string{`"event":"auth_failed"`, `"client_id":"203.0.113.7"`, `"token":"supe...[24]"`, `"path":"/stats-global"`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in %s", want, output)
		}
	}
}

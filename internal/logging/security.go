// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package logging

import (
	"context"
	"strconv"
)

// SecurityEvent describes an access-control decision worth auditing:
// a rejected admin token, a rate-limit rejection, a misconfigured secret.
type SecurityEvent struct {
	// Event is the event type, e.g. "auth_failed" or "rate_limited".
	Event string
	// Reason is the client-facing reason string.
	Reason string
	// ClientID is the rate-limit identifier (forwarded IP or "unknown").
	ClientID string
	// Token is the presented credential. It is never logged verbatim.
	Token string
	// Path is the request path.
	Path string
}

// LogSecurityEvent writes a warn-level audit line for the event, with the
// token masked by SanitizeToken.
func LogSecurityEvent(ctx context.Context, event *SecurityEvent) {
	e := Ctx(ctx).Warn().
		Str("component", "security").
		Str("event", event.Event)

	if event.Reason != "" {
		e = e.Str("reason", event.Reason)
	}
	if event.ClientID != "" {
		e = e.Str("client_id", event.ClientID)
	}
	if event.Path != "" {
		e = e.Str("path", event.Path)
	}
	if event.Token != "" {
		e = e.Str("token", SanitizeToken(event.Token))
	}
	e.Msg("Security event")
}

// SanitizeToken masks a credential for logging, keeping at most the first
// four characters and the length.
//
//	SanitizeToken("sk_live_abcdef") // "sk_l...[14]"
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 8 {
		return "[REDACTED]"
	}
	return token[:4] + "...[" + strconv.Itoa(len(token)) + "]"
}

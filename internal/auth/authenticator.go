// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/tomtom215/dhandiary-stats/internal/logging"
	"github.com/tomtom215/dhandiary-stats/internal/metrics"
)

// RoleAdmin is the only role the stats API grants.
const RoleAdmin = "admin"

// Client-facing rejection messages.
const (
	MsgMissingHeader      = "Missing authorization header"
	MsgServerConfig       = "Server configuration error"
	MsgInvalidCredentials = "Invalid credentials"
)

// Failure reasons used as the api_auth_failures_total label.
const (
	ReasonMissingHeader      = "missing_header"
	ReasonNotConfigured      = "not_configured"
	ReasonInvalidCredentials = "invalid_credentials"
)

const bearerPrefix = "Bearer "

// Result is the outcome of Validate.
type Result struct {
	Authorized bool
	Role       string
	// Error is the client-facing message when Authorized is false.
	Error string
	// Reason is the metrics label when Authorized is false.
	Reason string
}

// Authenticator checks the admin secret.
type Authenticator struct {
	secret []byte
}

// NewAuthenticator creates an Authenticator for secret. An empty secret is
// accepted; every request is then rejected with MsgServerConfig.
func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// Validate authenticates r.
func (a *Authenticator) Validate(r *http.Request) Result {
	header := r.Header.Get("Authorization")
	if header == "" {
		return a.reject(r, MsgMissingHeader, ReasonMissingHeader, "")
	}

	if len(a.secret) == 0 {
		logging.Ctx(r.Context()).Error().
			Str("component", "auth").
			Msg("ADMIN_API_KEY is not configured; rejecting admin request")
		return a.reject(r, MsgServerConfig, ReasonNotConfigured, "")
	}

	token := strings.TrimPrefix(header, bearerPrefix)
	if subtle.ConstantTimeCompare([]byte(token), a.secret) != 1 {
		return a.reject(r, MsgInvalidCredentials, ReasonInvalidCredentials, token)
	}

	return Result{Authorized: true, Role: RoleAdmin}
}

func (a *Authenticator) reject(r *http.Request, msg, reason, token string) Result {
	metrics.APIAuthFailures.WithLabelValues(reason).Inc()
	logging.LogSecurityEvent(r.Context(), &logging.SecurityEvent{
		Event:  "auth_failed",
		Reason: msg,
		Token:  token,
		Path:   r.URL.Path,
	})
	return Result{Authorized: false, Error: msg, Reason: reason}
}
